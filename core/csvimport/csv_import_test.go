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

package csvimport

import (
	"strings"
	"testing"
)

func TestImportBasicCSV(t *testing.T) {
	csvData := `region,city,sales
North,Oslo,10
North,Bergen,7
South,Rome,12`

	reader := strings.NewReader(csvData)
	table, err := ImportFromReader(reader, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}

	if table.Length() != 3 {
		t.Errorf("expected 3 rows, got %d", table.Length())
	}
	if len(table.Header) != 3 {
		t.Errorf("expected 3 columns, got %d", len(table.Header))
	}
	if idx := table.ColumnIndex("city"); idx != 1 {
		t.Errorf("expected city at index 1, got %d", idx)
	}
	if idx := table.ColumnIndex("missing"); idx != -1 {
		t.Errorf("expected -1 for unknown column, got %d", idx)
	}
	if got := table.Records[2][1]; got != "Rome" {
		t.Errorf("expected 'Rome', got '%s'", got)
	}
}

func TestImportWithoutHeader(t *testing.T) {
	csvData := `a,b
c,d`

	opts := DefaultOptions()
	opts.HasHeader = false
	table, err := ImportFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if table.Length() != 2 {
		t.Errorf("expected 2 rows, got %d", table.Length())
	}
	if table.Header[0] != "column_1" || table.Header[1] != "column_2" {
		t.Errorf("unexpected generated header %v", table.Header)
	}
}

func TestImportCustomDelimiter(t *testing.T) {
	csvData := `name;value
 x ;1`

	opts := DefaultOptions()
	opts.Delimiter = ';'
	table, err := ImportFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if table.Records[0][0] != "x" {
		t.Errorf("expected trimmed 'x', got '%s'", table.Records[0][0])
	}
}

func TestImportPadsShortRecords(t *testing.T) {
	csvData := `a,b,c
1,2`

	table, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if len(table.Records[0]) != 3 || table.Records[0][2] != "" {
		t.Errorf("expected padded record, got %v", table.Records[0])
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"header only", "a,b\n"},
		{"bad quoting", "a,b\n\"x,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportFromReader(strings.NewReader(tt.data), DefaultOptions()); err == nil {
				t.Errorf("expected error for %s input", tt.name)
			}
		})
	}
}

func TestImportFromFileMissing(t *testing.T) {
	if _, err := ImportFromFile("/nonexistent/report.csv", DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}
