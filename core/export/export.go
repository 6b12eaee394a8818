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

// Package export writes reports in formats other than HTML. The grouping
// cells follow the same row span decisions as the HTML table.
package export

import (
	"github.com/google/easyreport/core/dataset"
	"github.com/google/easyreport/core/rowspan"
)

// Report is a rendered data set together with its path index.
type Report interface {
	DataSet() *dataset.ReportDataSet
	Index() rowspan.PathIndex
}

func headers(ds *dataset.ReportDataSet) []string {
	var h []string
	h = append(h, ds.GroupColumns()...)
	return append(h, ds.ValueColumns()...)
}
