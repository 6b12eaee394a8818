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
	"embed"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

//go:embed templates/*
var templateFS embed.FS

// ReportViewModel contains a rendered report formatted for template
// consumption
type ReportViewModel struct {
	Title        string
	GroupHeaders []string      // Grouping column names, outermost first
	ValueHeaders []string      // Data column names
	Body         safehtml.HTML // Table rows
	Rows         int
}

// ReportRenderer handles rendering of reports to HTML documents
type ReportRenderer struct {
	reportTemplate *template.Template
}

// NewReportRenderer creates a new report renderer
func NewReportRenderer() (*ReportRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	reportTemplate, err := template.New("report.html").ParseFS(trustedFS, "templates/report.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing report template")
	}

	return &ReportRenderer{
		reportTemplate: reportTemplate,
	}, nil
}

// ViewModel renders the session's rows and wraps them for the template.
func (r *ReportRenderer) ViewModel(s *Session) ReportViewModel {
	var buf TableRowBuffer
	rows := s.RenderBody(&buf)
	ds := s.DataSet()
	return ReportViewModel{
		Title:        ds.Title(),
		GroupHeaders: ds.GroupColumns(),
		ValueHeaders: ds.ValueColumns(),
		// Every value in the buffer went through safehtml.HTMLEscaped.
		Body: uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(buf.String()),
		Rows: rows,
	}
}

// Render renders the session's report as an HTML document to w
func (r *ReportRenderer) Render(w io.Writer, s *Session) error {
	if err := r.reportTemplate.Execute(w, r.ViewModel(s)); err != nil {
		return errors.Wrap(err, "rendering report")
	}
	return nil
}
