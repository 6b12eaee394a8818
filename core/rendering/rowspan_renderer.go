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

package rendering

import (
	"fmt"

	"github.com/google/easyreport/core/rowspan"
	"github.com/google/easyreport/core/tree"
	"github.com/google/safehtml"
)

// FixedColumnClass marks the grouping cells on the left of a report.
const FixedColumnClass = "easyreport-fixed-column"

// RowSpanRenderer writes the grouping cells of a row. It holds no state
// between rows; the ancestor snapshot travels through the caller.
type RowSpanRenderer struct {
	separator string
}

// NewRowSpanRenderer returns a renderer splitting paths on separator.
func NewRowSpanRenderer(separator string) *RowSpanRenderer {
	return &RowSpanRenderer{separator: separator}
}

// Render appends the grouping cells of node's row to buf and returns the
// snapshot to pass in for the next row. last is nil for the first row.
func (r *RowSpanRenderer) Render(buf *TableRowBuffer, index rowspan.PathIndex, last rowspan.AncestorPaths, node *tree.Node) rowspan.AncestorPaths {
	cells, next := rowspan.PlanRow(index, last, node, r.separator)
	writeCells(buf, cells)
	return next
}

func writeCells(buf *TableRowBuffer, cells []rowspan.Cell) {
	for _, c := range cells {
		if c.Node == nil {
			fmt.Fprintf(buf, `<td class="%s"></td>`, FixedColumnClass)
			continue
		}
		rowspanAttr := ""
		if c.Node.Spans > 1 {
			rowspanAttr = fmt.Sprintf(` rowspan="%d"`, c.Node.Spans)
		}
		fmt.Fprintf(buf, `<td class="%s"%s>%s</td>`, FixedColumnClass, rowspanAttr, safehtml.HTMLEscaped(c.Node.Value))
	}
}
