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
	"bytes"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/google/easyreport/core/rendering"
	"github.com/spf13/cobra"
)

type serveParams struct {
	definition string
	addr       string
}

func init() {
	var params serveParams

	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serve a report over HTTP",
		Long: `Serve the report described by a YAML definition at /report.

The definition and its CSV source are reloaded on every request. The format
query parameter selects html (default), ascii or xlsx.`,
		PreRunE: func(*cobra.Command, []string) error {
			if params.definition == "" {
				return errors.New("--definition is required")
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			renderer, err := rendering.NewReportRenderer()
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.Handle("/report", reportHandler(params.definition, renderer))
			logger.WithField("addr", params.addr).Info("serving report")
			return http.ListenAndServe(params.addr, mux)
		},
	}

	serveCommand.Flags().StringVarP(&params.definition, "definition", "d", "", "path to the report definition")
	serveCommand.Flags().StringVar(&params.addr, "addr", "127.0.0.1:8097", "listen address")
	RootCommand.AddCommand(serveCommand)
}

// reportHandler renders the report into memory first so a failing render
// still produces a clean error response.
func reportHandler(definitionPath string, renderer *rendering.ReportRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = "html"
		}

		s, err := openSession(definitionPath)
		if err != nil {
			logger.WithError(err).Error("loading report")
			http.Error(w, "failed to load report", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := writeReport(&buf, s, format, renderer); err != nil {
			logger.WithError(err).WithField("format", format).Warn("rendering report")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", contentType(format))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Debug("writing response")
		}
	})
}
