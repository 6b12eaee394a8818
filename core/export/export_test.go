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

package export_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/easyreport/core/csvimport"
	"github.com/google/easyreport/core/dataset"
	"github.com/google/easyreport/core/export"
	"github.com/google/easyreport/core/rendering"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const salesCSV = `region,city,sales
North,Oslo,10
North,Bergen,7
South,Rome,12
North,Oslo,5
`

func salesSession(t *testing.T) *rendering.Session {
	t.Helper()
	table, err := csvimport.ImportFromReader(strings.NewReader(salesCSV), csvimport.DefaultOptions())
	require.NoError(t, err)
	ds, err := dataset.New(&dataset.Definition{
		GroupBy: []string{"region", "city"},
		Values:  []string{"sales"},
	}, table)
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return rendering.NewSession(ds, log)
}

func TestWriteASCII(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, export.WriteASCII(&out, salesSession(t)))

	text := out.String()
	require.Contains(t, text, "region")
	require.Contains(t, text, "sales")
	require.Equal(t, 1, strings.Count(text, "North"), "North is printed once:\n%s", text)
	require.Contains(t, text, "Bergen")
	require.Contains(t, text, "15")
}

func TestWriteXLSXMergesSpannedCells(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, export.WriteXLSX(&out, salesSession(t)))

	f, err := excelize.OpenReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	cell := func(axis string) string {
		v, err := f.GetCellValue(export.SheetName, axis)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, "region", cell("A1"))
	require.Equal(t, "sales", cell("C1"))
	require.Equal(t, "North", cell("A2"))
	require.Equal(t, "Oslo", cell("B2"))
	require.Equal(t, "15", cell("C2"))
	require.Equal(t, "Bergen", cell("B3"))
	require.Equal(t, "South", cell("A4"))
	require.Equal(t, "12", cell("C4"))

	merged, err := f.GetMergeCells(export.SheetName)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	require.Equal(t, "A2", merged[0].GetStartAxis())
	require.Equal(t, "A3", merged[0].GetEndAxis())
	require.Equal(t, "North", merged[0].GetCellValue())
}
