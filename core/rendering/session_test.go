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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/easyreport/core/csvimport"
	"github.com/google/easyreport/core/dataset"
	"github.com/google/easyreport/core/tree"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const salesCSV = `region,city,sales
North,Oslo,10
North,Bergen,7
South,Rome,12
North,Oslo,5
`

func newSalesSession(t *testing.T, log logrus.FieldLogger) *Session {
	t.Helper()
	table, err := csvimport.ImportFromReader(strings.NewReader(salesCSV), csvimport.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	ds, err := dataset.New(&dataset.Definition{
		Title:   "Sales <2024>",
		GroupBy: []string{"region", "city"},
		Values:  []string{"sales"},
	}, table)
	if err != nil {
		t.Fatalf("failed to build data set: %v", err)
	}
	return NewSession(ds, log)
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSessionRenderBody(t *testing.T) {
	s := newSalesSession(t, quietLogger())

	var buf TableRowBuffer
	rows := s.RenderBody(&buf)
	if rows != 3 {
		t.Errorf("expected 3 rows, got %d", rows)
	}

	want := `<tr><td class="easyreport-fixed-column" rowspan="2">North</td><td class="easyreport-fixed-column">Oslo</td><td>15</td></tr>` +
		`<tr><td class="easyreport-fixed-column">Bergen</td><td>7</td></tr>` +
		`<tr><td class="easyreport-fixed-column">South</td><td class="easyreport-fixed-column">Rome</td><td>12</td></tr>`
	if got := buf.String(); got != want {
		t.Errorf("unexpected body\nwant: %s\ngot:  %s", want, got)
	}
}

func TestSessionBufferIsAppendOnly(t *testing.T) {
	s := newSalesSession(t, quietLogger())

	var buf TableRowBuffer
	buf.WriteString("<!-- header -->")
	s.RenderBody(&buf)
	if !strings.HasPrefix(buf.String(), "<!-- header -->") {
		t.Error("expected existing buffer content to be kept")
	}
}

func TestWarnDuplicatePaths(t *testing.T) {
	log, hook := test.NewNullLogger()
	first := &tree.Node{Path: "x|y|", Value: "y"}
	second := &tree.Node{Path: "x|y|", Value: "y"}
	columnTree := tree.NewColumnTree([][]*tree.Node{{first}, {second}})

	if n := warnDuplicatePaths(log, columnTree); n != 1 {
		t.Errorf("expected 1 duplicate, got %d", n)
	}

	var warned []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = append(warned, entry.Data["path"].(string))
		}
	}
	if len(warned) != 1 || warned[0] != "x|y|" {
		t.Errorf("expected one warning for x|y|, got %v", warned)
	}
}

func TestNewSessionWithoutDuplicates(t *testing.T) {
	log, hook := test.NewNullLogger()
	newSalesSession(t, log)
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			t.Errorf("unexpected warning: %s", entry.Message)
		}
	}
}

func TestReportRendererRender(t *testing.T) {
	renderer, err := NewReportRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	s := newSalesSession(t, quietLogger())

	var out bytes.Buffer
	if err := renderer.Render(&out, s); err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	html := out.String()

	if !strings.Contains(html, "<title>Sales &lt;2024&gt;</title>") {
		t.Error("Expected escaped title")
	}
	if !strings.Contains(html, "<th>region</th><th>city</th><th>sales</th>") {
		t.Error("Expected header cells for grouping and value columns")
	}
	if !strings.Contains(html, `<td class="easyreport-fixed-column" rowspan="2">North</td>`) {
		t.Error("Expected rowspan=2 for North")
	}
	if strings.Contains(html, "&lt;tr&gt;") {
		t.Error("Expected table rows not to be escaped")
	}
	if !strings.Contains(html, "<p>3 rows</p>") {
		t.Error("Expected row count")
	}
}

func TestReportRendererViewModel(t *testing.T) {
	renderer, err := NewReportRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	vm := renderer.ViewModel(newSalesSession(t, quietLogger()))
	if vm.Rows != 3 {
		t.Errorf("expected 3 rows, got %d", vm.Rows)
	}
	if vm.Title != "Sales <2024>" {
		t.Errorf("unexpected title %q", vm.Title)
	}
	if strings.Count(vm.Body.String(), "<tr>") != 3 {
		t.Errorf("expected 3 table rows in %s", vm.Body)
	}
}
