// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/formatters"
	"burocrata-scan/internal/suppressions"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// response is the JSON envelope. Findings embed the report order, so the
// output is byte-stable for identical inputs.
type response struct {
	Source        string                           `json:"source,omitempty"`
	DocumentClass catalog.DocumentClass            `json:"document_class"`
	Findings      []engine.Finding                 `json:"findings"`
	Suppressed    []suppressions.SuppressedFinding `json:"suppressed,omitempty"`
	Scorecard     engine.Scorecard                 `json:"scorecard"`
}

func (f *Formatter) Format(report *engine.Report, suppressed []suppressions.SuppressedFinding, options formatters.Options) (string, error) {
	findings := formatters.FilterBySeverity(report.Findings, options.MinSeverity)
	if findings == nil {
		findings = []engine.Finding{}
	}

	out := response{
		Source:        options.Source,
		DocumentClass: report.DocumentClass,
		Findings:      findings,
		Suppressed:    suppressed,
		Scorecard:     report.Scorecard,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
