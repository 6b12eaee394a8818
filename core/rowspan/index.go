/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Easyreport Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rowspan

import (
	"github.com/google/easyreport/core/tree"
)

// PathIndex maps a node path to its node. It is built once per render and
// read only afterwards.
type PathIndex map[string]*tree.Node

// BuildPathIndex visits the tree level by level and indexes every node by
// its path. When two nodes share a path the later one wins.
func BuildPathIndex(t *tree.ColumnTree) PathIndex {
	index := make(PathIndex, t.Len())
	for level := 0; level < t.Depth(); level++ {
		for _, node := range t.NodesByLevel(level) {
			index[node.Path] = node
		}
	}
	return index
}

// DuplicatePaths returns, in first-seen order, every path carried by more
// than one node. BuildPathIndex keeps only the last of those nodes.
func DuplicatePaths(t *tree.ColumnTree) []string {
	seen := make(map[string]int)
	var dups []string
	for level := 0; level < t.Depth(); level++ {
		for _, node := range t.NodesByLevel(level) {
			seen[node.Path]++
			if seen[node.Path] == 2 {
				dups = append(dups, node.Path)
			}
		}
	}
	return dups
}
