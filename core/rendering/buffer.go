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
	"strings"
)

// TableRowBuffer accumulates the markup of one table. It only grows; a
// render that fails half way is discarded by its owner.
type TableRowBuffer struct {
	sb strings.Builder
}

// WriteString appends s.
func (b *TableRowBuffer) WriteString(s string) (int, error) {
	return b.sb.WriteString(s)
}

// Write appends p.
func (b *TableRowBuffer) Write(p []byte) (int, error) {
	return b.sb.Write(p)
}

// Len returns the number of bytes written so far.
func (b *TableRowBuffer) Len() int {
	return b.sb.Len()
}

func (b *TableRowBuffer) String() string {
	return b.sb.String()
}
