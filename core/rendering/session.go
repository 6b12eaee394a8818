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
	"github.com/google/easyreport/core/dataset"
	"github.com/google/easyreport/core/rowspan"
	"github.com/google/easyreport/core/tree"
	"github.com/google/safehtml"
	"github.com/sirupsen/logrus"
)

// Session is one report render. It owns the path index built from the data
// set's tree; rows are rendered top to bottom by a single caller.
type Session struct {
	ds       *dataset.ReportDataSet
	index    rowspan.PathIndex
	renderer *RowSpanRenderer
	log      logrus.FieldLogger
}

// NewSession indexes the data set's column tree. Paths carried by more than
// one node are logged; the last such node is the one rendered.
func NewSession(ds *dataset.ReportDataSet, log logrus.FieldLogger) *Session {
	columnTree := ds.ColumnTree()
	warnDuplicatePaths(log, columnTree)
	return &Session{
		ds:       ds,
		index:    rowspan.BuildPathIndex(columnTree),
		renderer: NewRowSpanRenderer(ds.Separator()),
		log:      log,
	}
}

func warnDuplicatePaths(log logrus.FieldLogger, columnTree *tree.ColumnTree) int {
	dups := rowspan.DuplicatePaths(columnTree)
	for _, path := range dups {
		log.WithField("path", path).Warn("duplicate node path, last node wins")
	}
	return len(dups)
}

// DataSet returns the rendered data set.
func (s *Session) DataSet() *dataset.ReportDataSet {
	return s.ds
}

// Index returns the path index of the session's tree.
func (s *Session) Index() rowspan.PathIndex {
	return s.index
}

// RenderBody appends one <tr> per leaf of the column tree: the grouping
// cells still open at that row followed by the data cells.
func (s *Session) RenderBody(buf *TableRowBuffer) int {
	leaves := s.ds.ColumnTree().Leaves()
	var last rowspan.AncestorPaths
	for _, leaf := range leaves {
		buf.WriteString(`<tr>`)
		last = s.renderer.Render(buf, s.index, last, leaf)
		s.renderValues(buf, leaf)
		buf.WriteString(`</tr>`)
	}
	s.log.WithFields(logrus.Fields{
		"rows":  len(leaves),
		"nodes": len(s.index),
		"bytes": buf.Len(),
	}).Debug("rendered report body")
	return len(leaves)
}

func (s *Session) renderValues(buf *TableRowBuffer, leaf *tree.Node) {
	for _, v := range s.ds.Values(leaf) {
		buf.WriteString(`<td>`)
		buf.WriteString(safehtml.HTMLEscaped(v).String())
		buf.WriteString(`</td>`)
	}
}
