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

// Package cmd implements the easyreport command line.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/easyreport/core/dataset"
	"github.com/google/easyreport/core/export"
	"github.com/google/easyreport/core/rendering"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCommand is the base command all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:          path.Base(os.Args[0]),
	Short:        "Render grouped reports",
	Long:         "Renders CSV records grouped by a column hierarchy as HTML, text or XLSX tables with merged grouping cells.",
	SilenceUsage: true,
}

var logLevel string

func init() {
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	RootCommand.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := CheckEnvironmentVariables(cmd); err != nil {
			return err
		}
		return configureLogger(logLevel)
	}
}

// logger is shared by all commands.
var logger = logrus.New()

func configureLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	logger.SetLevel(lvl)
	logger.SetOutput(os.Stderr)
	return nil
}

// Formats lists the supported output formats.
var Formats = []string{"html", "ascii", "xlsx"}

// openSession loads a definition, its records and indexes the column tree.
func openSession(definitionPath string) (*rendering.Session, error) {
	def, err := dataset.LoadDefinition(definitionPath)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Open(def, filepath.Dir(definitionPath))
	if err != nil {
		return nil, err
	}
	log := logger.WithField("definition", definitionPath)
	log.WithFields(logrus.Fields{
		"groups": len(ds.GroupColumns()),
		"rows":   len(ds.ColumnTree().Leaves()),
	}).Debug("loaded data set")
	return rendering.NewSession(ds, log), nil
}

// writeReport writes the session in the given format.
func writeReport(w io.Writer, s *rendering.Session, format string, renderer *rendering.ReportRenderer) error {
	switch strings.ToLower(format) {
	case "html":
		return renderer.Render(w, s)
	case "ascii":
		return export.WriteASCII(w, s)
	case "xlsx":
		return export.WriteXLSX(w, s)
	default:
		return errors.WithHintf(errors.Newf("unknown format %q", format),
			"supported formats: %s", strings.Join(Formats, ", "))
	}
}

// contentType returns the HTTP content type of a format.
func contentType(format string) string {
	switch strings.ToLower(format) {
	case "ascii":
		return "text/plain; charset=utf-8"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/html; charset=utf-8"
	}
}

func usageFormats() string {
	return fmt.Sprintf("output format (%s)", strings.Join(Formats, ", "))
}
