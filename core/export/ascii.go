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

package export

import (
	"io"

	"github.com/google/easyreport/core/rowspan"
	"github.com/google/easyreport/core/tree"
	"github.com/olekukonko/tablewriter"
)

// WriteASCII writes the report as a bordered text table. A grouping cell is
// printed on the first row it covers and left blank below.
func WriteASCII(w io.Writer, r Report) error {
	ds := r.DataSet()
	depth := len(ds.GroupColumns())

	var rows [][]string
	rowspan.Fold(r.Index(), ds.ColumnTree().Leaves(), ds.Separator(), func(_ int, leaf *tree.Node, cells []rowspan.Cell) {
		row := make([]string, depth)
		for _, c := range cells {
			if c.Level < depth && c.Node != nil {
				row[c.Level] = c.Node.Value
			}
		}
		rows = append(rows, append(row, ds.Values(leaf)...))
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers(ds))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
