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
	"strings"
	"unicode/utf8"

	"github.com/google/easyreport/core/tree"
)

// AncestorPaths holds, for one rendered row, the cumulative path prefix at
// each ancestor level. A nil snapshot means no row was rendered yet.
type AncestorPaths []string

// Cell is one grouping cell emitted for a row. Node is nil for a placeholder,
// i.e. a prefix that has no indexed node.
type Cell struct {
	Level int
	Path  string
	Node  *tree.Node
}

// Spans returns the number of rows covered by the cell.
func (c Cell) Spans() int {
	if c.Node == nil || c.Node.Spans < 1 {
		return 1
	}
	return c.Node.Spans
}

// SplitPath splits path on any of the separator characters and keeps empty
// tokens, so "a//b/" yields ["a", "", "b", ""]. An empty separator set never
// splits. An empty path yields a single empty segment.
func SplitPath(path, separatorChars string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(path); {
		r, size := utf8.DecodeRuneInString(path[i:])
		if strings.ContainsRune(separatorChars, r) {
			segments = append(segments, path[start:i])
			start = i + size
		}
		i += size
	}
	return append(segments, path[start:])
}

// PlanRow decides which grouping cells the row of node needs. For every
// ancestor level it computes the cumulative prefix; a level whose prefix
// equals the previous row's is skipped because that row's cell already spans
// over this one. The returned snapshot must be passed to the next row.
//
// The number of ancestor levels is the segment count minus one, but never
// less than one.
func PlanRow(index PathIndex, last AncestorPaths, node *tree.Node, separatorChars string) ([]Cell, AncestorPaths) {
	segments := SplitPath(node.Path, separatorChars)
	level := len(segments) - 1
	if level < 1 {
		level = 1
	}

	var cells []Cell
	next := make(AncestorPaths, level)
	for i := 0; i < level; i++ {
		prefix := segments[i] + separatorChars
		if i > 0 {
			prefix = next[i-1] + prefix
		}
		next[i] = prefix
		if last != nil && i < len(last) && last[i] == prefix {
			continue
		}
		cells = append(cells, Cell{Level: i, Path: prefix, Node: index[prefix]})
	}
	return cells, next
}

// Fold plans every row in order, threading the ancestor snapshot from one
// row to the next. fn receives the row number, the row's leaf and its cells.
func Fold(index PathIndex, leaves []*tree.Node, separatorChars string, fn func(row int, leaf *tree.Node, cells []Cell)) AncestorPaths {
	var last AncestorPaths
	for row, leaf := range leaves {
		var cells []Cell
		cells, last = PlanRow(index, last, leaf, separatorChars)
		fn(row, leaf, cells)
	}
	return last
}
