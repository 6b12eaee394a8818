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
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DefaultSeparator joins grouping labels into node paths when a definition
// does not name one.
const DefaultSeparator = "|"

// Definition describes a report: where its records come from and which
// columns group the rows.
type Definition struct {
	Title     string   `yaml:"title"`
	Source    string   `yaml:"source"`
	Delimiter string   `yaml:"delimiter"`
	Separator string   `yaml:"separator"`
	GroupBy   []string `yaml:"group_by"`
	Values    []string `yaml:"values"`
}

// ParseDefinition decodes a YAML report definition and applies defaults.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "parsing report definition")
	}
	if def.Separator == "" {
		def.Separator = DefaultSeparator
	}
	if len(def.GroupBy) == 0 {
		return nil, errors.WithHint(
			errors.New("report definition has no group_by columns"),
			"list the grouping columns outermost first under group_by")
	}
	if len([]rune(def.Delimiter)) > 1 {
		return nil, errors.Newf("delimiter %q must be a single character", def.Delimiter)
	}
	return &def, nil
}

// LoadDefinition reads and parses a definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading report definition %s", path)
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return def, nil
}
