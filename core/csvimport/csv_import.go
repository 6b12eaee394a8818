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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// TrimSpace strips leading and trailing white space from every field
	TrimSpace bool
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader: true,
		Delimiter: ',',
		TrimSpace: true,
	}
}

// Table holds the records of a CSV file. Every record has exactly
// len(Header) fields.
type Table struct {
	Header  []string
	Records [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Length returns the number of records.
func (t *Table) Length() int {
	return len(t.Records)
}

// ImportFromFile imports a CSV file and returns its Table
func ImportFromFile(filepath string, options ImportOptions) (*Table, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filepath)
	}
	defer file.Close()

	table, err := ImportFromReader(file, options)
	if err != nil {
		return nil, errors.Wrapf(err, "importing %s", filepath)
	}
	return table, nil
}

// ImportFromReader imports CSV data from an io.Reader and returns its Table
func ImportFromReader(reader io.Reader, options ImportOptions) (*Table, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	// Short records are padded below
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}

	if len(records) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	var headers []string
	var dataRows [][]string

	if options.HasHeader {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate column names if no header
		numCols := len(records[0])
		headers = make([]string, numCols)
		for i := 0; i < numCols; i++ {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = records
	}

	if len(dataRows) == 0 {
		return nil, errors.New("CSV file has no data rows")
	}

	table := &Table{Header: make([]string, len(headers))}
	for i, h := range headers {
		table.Header[i] = strings.TrimSpace(h)
	}
	for _, row := range dataRows {
		record := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				record[i] = row[i]
			}
			if options.TrimSpace {
				record[i] = strings.TrimSpace(record[i])
			}
		}
		table.Records = append(table.Records, record)
	}
	return table, nil
}
