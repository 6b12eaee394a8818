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

package cmd

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/easyreport/core/rendering"
	"github.com/spf13/cobra"
)

type renderParams struct {
	definition string
	format     string
	out        string
}

func init() {
	var params renderParams

	renderCommand := &cobra.Command{
		Use:   "render",
		Short: "Render a report to a file or stdout",
		Long: `Render the report described by a YAML definition.

The definition names the CSV source, the grouping columns (outermost first)
and the data columns:

	title: Sales
	source: sales.csv
	separator: "|"
	group_by: [region, city]
	values: [sales]
`,
		PreRunE: func(*cobra.Command, []string) error {
			if params.definition == "" {
				return errors.New("--definition is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(params, cmd.OutOrStdout())
		},
	}

	renderCommand.Flags().StringVarP(&params.definition, "definition", "d", "", "path to the report definition")
	renderCommand.Flags().StringVarP(&params.format, "format", "f", "html", usageFormats())
	renderCommand.Flags().StringVarP(&params.out, "out", "o", "", "output file (default stdout)")
	RootCommand.AddCommand(renderCommand)
}

func runRender(params renderParams, stdout io.Writer) (err error) {
	s, err := openSession(params.definition)
	if err != nil {
		return err
	}
	renderer, err := rendering.NewReportRenderer()
	if err != nil {
		return err
	}

	w := stdout
	if params.out != "" {
		f, ferr := os.Create(params.out)
		if ferr != nil {
			return errors.Wrapf(ferr, "creating %s", params.out)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "closing %s", params.out)
			}
		}()
		w = f
	}

	if err := writeReport(w, s, params.format, renderer); err != nil {
		return err
	}
	logger.WithField("format", params.format).Info("report rendered")
	return nil
}
