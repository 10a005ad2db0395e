// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/formatters"
	"burocrata-scan/internal/suppressions"
)

// Formatter implements CSV output formatting, one row per finding
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheets"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(report *engine.Report, suppressed []suppressions.SuppressedFinding, options formatters.Options) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"source", "document_class", "rule_id", "severity", "citation", "match_count", "score", "risk_tier"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, finding := range formatters.FilterBySeverity(report.Findings, options.MinSeverity) {
		row := []string{
			options.Source,
			string(report.DocumentClass),
			finding.ID,
			string(finding.Severity),
			finding.Citation,
			strconv.Itoa(finding.MatchCount),
			strconv.Itoa(report.Scorecard.Score),
			string(report.Scorecard.RiskTier),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
