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
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/google/easyreport/core/rowspan"
	"github.com/google/easyreport/core/tree"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the report.
const SheetName = "Report"

// WriteXLSX writes the report as a workbook. Every grouping cell covering
// more than one row becomes a merged range.
func WriteXLSX(w io.Writer, r Report) (err error) {
	ds := r.DataSet()
	depth := len(ds.GroupColumns())

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	for i, h := range headers(ds) {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}

	rowspan.Fold(r.Index(), ds.ColumnTree().Leaves(), ds.Separator(), func(row int, leaf *tree.Node, cells []rowspan.Cell) {
		if err != nil {
			return
		}
		excelRow := row + 2
		for _, c := range cells {
			if c.Node == nil || c.Level >= depth {
				continue
			}
			if err = setCell(f, c.Level+1, excelRow, c.Node.Value); err != nil {
				return
			}
			if c.Spans() > 1 {
				if err = mergeCells(f, c.Level+1, excelRow, excelRow+c.Spans()-1); err != nil {
					return
				}
			}
		}
		for j, v := range ds.Values(leaf) {
			if err = setCell(f, depth+j+1, excelRow, v); err != nil {
				return
			}
		}
	})
	if err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrapf(err, "cell (%d, %d)", col, row)
	}
	var v interface{} = value
	if n, perr := strconv.ParseFloat(value, 64); perr == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		v = n
	}
	return errors.Wrapf(f.SetCellValue(SheetName, cell, v), "setting %s", cell)
}

func mergeCells(f *excelize.File, col, top, bottom int) error {
	from, err := excelize.CoordinatesToCellName(col, top)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(col, bottom)
	if err != nil {
		return err
	}
	return errors.Wrapf(f.MergeCell(SheetName, from, to), "merging %s:%s", from, to)
}
