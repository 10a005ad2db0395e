// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import "burocrata-scan/internal/catalog"

// Finding is one fired rule, enriched with context from the original text.
type Finding struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Severity    catalog.Severity `json:"severity"`
	Citation    string           `json:"citation"`
	Description string           `json:"description"`
	Detail      string           `json:"detail"`
	Remedy      string           `json:"remedy"`
	// Context is an excerpt of the ORIGINAL (non-normalized) text around
	// the first match, empty when the position could not be projected.
	Context string `json:"context,omitempty"`
	// MatchCount is the total number of non-overlapping matches across all
	// of the rule's patterns.
	MatchCount int `json:"match_count"`
}

// RiskTier is the overall verdict band of a scorecard.
type RiskTier string

const (
	RiskNone     RiskTier = "NONE"
	RiskLow      RiskTier = "LOW"
	RiskModerate RiskTier = "MODERATE"
	RiskHigh     RiskTier = "HIGH"
	RiskMaximum  RiskTier = "MAXIMUM"
	RiskExtreme  RiskTier = "EXTREME"
)

// Scorecard aggregates findings into per-severity counts, a 0-100 score
// and a risk verdict.
type Scorecard struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`

	// Score starts at 100 and is docked per finding by severity weight,
	// clamped to zero.
	Score int `json:"score"`

	RiskTier    RiskTier `json:"risk_tier"`
	StatusLabel string   `json:"status_label"`
	// ColorHint is a terminal-agnostic rendering hint (a hex color for the
	// extreme tier, a named color otherwise).
	ColorHint string `json:"color_hint"`
}

// Report is the complete result of analyzing one document.
type Report struct {
	DocumentClass catalog.DocumentClass `json:"document_class"`
	Findings      []Finding             `json:"findings"`
	Scorecard     Scorecard             `json:"scorecard"`
}
