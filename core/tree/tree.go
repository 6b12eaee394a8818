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

package tree

// A column tree holds the grouping columns of a report. Level 0 is the
// outermost grouping column, the last level holds one leaf per table row.
//
// Terminology:
// * a node's path is the concatenation of its ancestors' labels and its own,
//   each followed by the separator
// * a node's spans is the number of table rows its cell covers
// * the leaves of the tree are the row span nodes, one per rendered row

// Node is a single grouping value in the column tree.
type Node struct {
	Path     string
	Value    string
	Spans    int
	Level    int
	Parent   *Node
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Height returns the number of leaves below n, or 1 for a leaf.
func (n *Node) Height() int {
	if n.IsLeaf() {
		return 1
	}
	height := 0
	for _, child := range n.Children {
		height += child.Height()
	}
	return height
}

// ColumnTree is an immutable, level indexed view over grouping nodes.
type ColumnTree struct {
	levels [][]*Node
}

// NewColumnTree wraps nodes that were computed elsewhere. levels[i] holds the
// nodes at depth i in document order. Leaves walks the Parent and Children
// links, so callers that need it must link the nodes; unlinked nodes are each
// reported as a leaf.
func NewColumnTree(levels [][]*Node) *ColumnTree {
	return &ColumnTree{levels: levels}
}

// Depth returns the number of levels in the tree.
func (t *ColumnTree) Depth() int {
	return len(t.levels)
}

// NodesByLevel returns the nodes at the given level, or nil when the level
// is out of range.
func (t *ColumnTree) NodesByLevel(level int) []*Node {
	if level < 0 || level >= len(t.levels) {
		return nil
	}
	return t.levels[level]
}

// Len returns the total number of nodes.
func (t *ColumnTree) Len() int {
	n := 0
	for _, nodes := range t.levels {
		n += len(nodes)
	}
	return n
}

// Leaves returns the row span nodes in document order. Nodes are walked
// through their Children links starting from the roots.
func (t *ColumnTree) Leaves() []*Node {
	var leaves []*Node
	for _, nodes := range t.levels {
		for _, node := range nodes {
			if node.Parent == nil {
				leaves = appendLeaves(leaves, node)
			}
		}
	}
	return leaves
}

func appendLeaves(leaves []*Node, n *Node) []*Node {
	if n.IsLeaf() {
		return append(leaves, n)
	}
	for _, child := range n.Children {
		leaves = appendLeaves(leaves, child)
	}
	return leaves
}
