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

// Builder assembles a ColumnTree from grouping tuples. Each tuple holds the
// grouping values of one data record, outermost column first. Tuples that are
// equal collapse into the same leaf; children keep the order in which they
// were first seen. Nodes are identified by their parent and label, so labels
// containing the separator may yield two nodes with the same path.
type Builder struct {
	separator string
	depth     int
	roots     []*Node
	children  map[childKey]*Node
	counts    map[*Node]int
}

type childKey struct {
	parent *Node
	label  string
}

// NewBuilder returns a builder joining labels with separator.
func NewBuilder(separator string, depth int) *Builder {
	return &Builder{
		separator: separator,
		depth:     depth,
		children:  make(map[childKey]*Node),
		counts:    make(map[*Node]int),
	}
}

// Add inserts one tuple and returns its leaf. Tuples shorter than the
// builder's depth are padded with empty labels, longer ones are truncated.
func (b *Builder) Add(values []string) *Node {
	var parent *Node
	path := ""
	for level := 0; level < b.depth; level++ {
		label := ""
		if level < len(values) {
			label = values[level]
		}
		path += label + b.separator
		key := childKey{parent: parent, label: label}
		node, ok := b.children[key]
		if !ok {
			node = &Node{Path: path, Value: label, Level: level, Parent: parent}
			b.children[key] = node
			if parent == nil {
				b.roots = append(b.roots, node)
			} else {
				parent.Children = append(parent.Children, node)
			}
		}
		parent = node
	}
	if parent != nil {
		b.counts[parent]++
	}
	return parent
}

// Records returns how many tuples were added for the given leaf.
func (b *Builder) Records(leaf *Node) int {
	return b.counts[leaf]
}

// Build computes spans and returns the level indexed tree.
func (b *Builder) Build() *ColumnTree {
	levels := make([][]*Node, b.depth)
	var walk func(n *Node)
	walk = func(n *Node) {
		n.Spans = n.Height()
		levels[n.Level] = append(levels[n.Level], n)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range b.roots {
		walk(root)
	}
	return NewColumnTree(levels)
}
