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

package dataset

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/google/easyreport/core/csvimport"
	"github.com/google/easyreport/core/tree"
)

// ReportDataSet binds a definition to its records. It is read only once
// built and exposes the separator shared by path construction and path
// splitting.
type ReportDataSet struct {
	def      Definition
	table    *csvimport.Table
	groupIdx []int
	valueIdx []int
	tree     *tree.ColumnTree
	records  map[*tree.Node][][]string
}

// New groups the table's records according to def.
func New(def *Definition, table *csvimport.Table) (*ReportDataSet, error) {
	ds := &ReportDataSet{
		def:     *def,
		table:   table,
		records: make(map[*tree.Node][][]string),
	}
	if ds.def.Separator == "" {
		ds.def.Separator = DefaultSeparator
	}
	if n := utf8.RuneCountInString(ds.def.Separator); n > 1 {
		return nil, errors.WithHint(
			errors.Newf("separator %q has %d characters", ds.def.Separator, n),
			"paths built from records are split on every separator character; use a single one")
	}

	var err error
	if ds.groupIdx, err = columnIndexes(table, def.GroupBy); err != nil {
		return nil, errors.Wrap(err, "group_by")
	}
	if ds.valueIdx, err = columnIndexes(table, def.Values); err != nil {
		return nil, errors.Wrap(err, "values")
	}

	b := tree.NewBuilder(ds.def.Separator, len(ds.groupIdx))
	for _, record := range table.Records {
		tuple := make([]string, len(ds.groupIdx))
		for i, idx := range ds.groupIdx {
			tuple[i] = record[idx]
			if strings.Contains(tuple[i], ds.def.Separator) {
				return nil, errors.WithHint(
					errors.Newf("column %q: label %q contains separator %q", def.GroupBy[i], tuple[i], ds.def.Separator),
					"choose another separator")
			}
		}
		leaf := b.Add(tuple)
		ds.records[leaf] = append(ds.records[leaf], record)
	}
	ds.tree = b.Build()
	return ds, nil
}

// Open loads the CSV named by def.Source. Relative sources resolve against
// baseDir.
func Open(def *Definition, baseDir string) (*ReportDataSet, error) {
	if def.Source == "" {
		return nil, errors.WithHint(
			errors.New("report definition has no source"),
			"set source to the path of a CSV file")
	}
	source := def.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(baseDir, source)
	}
	opts := csvimport.DefaultOptions()
	if def.Delimiter != "" {
		opts.Delimiter = []rune(def.Delimiter)[0]
	}
	table, err := csvimport.ImportFromFile(source, opts)
	if err != nil {
		return nil, err
	}
	return New(def, table)
}

func columnIndexes(table *csvimport.Table, names []string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = table.ColumnIndex(name)
		if idx[i] < 0 {
			return nil, errors.WithHintf(
				errors.Newf("unknown column %q", name),
				"available columns: %s", strings.Join(table.Header, ", "))
		}
	}
	return idx, nil
}

// Title returns the report title.
func (ds *ReportDataSet) Title() string {
	return ds.def.Title
}

// Separator returns the separator characters used in node paths.
func (ds *ReportDataSet) Separator() string {
	return ds.def.Separator
}

// GroupColumns returns the grouping column names, outermost first.
func (ds *ReportDataSet) GroupColumns() []string {
	return ds.def.GroupBy
}

// ValueColumns returns the data column names.
func (ds *ReportDataSet) ValueColumns() []string {
	return ds.def.Values
}

// ColumnTree returns the grouping tree of the records.
func (ds *ReportDataSet) ColumnTree() *tree.ColumnTree {
	return ds.tree
}

// Records returns how many records were grouped into leaf.
func (ds *ReportDataSet) Records(leaf *tree.Node) int {
	return len(ds.records[leaf])
}

// Values returns the data cells of the row rendered for leaf. Records that
// collapsed into the same leaf are summed when every value is numeric and
// otherwise joined.
func (ds *ReportDataSet) Values(leaf *tree.Node) []string {
	records := ds.records[leaf]
	values := make([]string, len(ds.valueIdx))
	for i, idx := range ds.valueIdx {
		values[i] = combine(records, idx)
	}
	return values
}

func combine(records [][]string, idx int) string {
	if len(records) == 1 {
		return records[0][idx]
	}

	sum := 0.0
	numeric := true
	var distinct []string
	seen := make(map[string]bool)
	for _, record := range records {
		v := record[idx]
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sum += f
		} else {
			numeric = false
		}
		if v != "" && !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	if numeric && len(records) > 0 {
		return strconv.FormatFloat(sum, 'f', -1, 64)
	}
	return strings.Join(distinct, ", ")
}
