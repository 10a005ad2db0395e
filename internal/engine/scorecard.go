// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import "burocrata-scan/internal/catalog"

// Severity weights docked from the starting score of 100. Informational
// findings carry no weight.
const (
	weightCritical = 20
	weightHigh     = 10
	weightMedium   = 5
	weightLow      = 2
)

// BuildScorecard aggregates findings into counts, a clamped 0-100 score and
// the risk verdict ladder. The ladder is evaluated top down; the first
// matching band wins.
func BuildScorecard(findings []Finding) Scorecard {
	sc := Scorecard{Total: len(findings)}
	for i := range findings {
		switch findings[i].Severity {
		case catalog.SeverityCritical:
			sc.Critical++
		case catalog.SeverityHigh:
			sc.High++
		case catalog.SeverityMedium:
			sc.Medium++
		case catalog.SeverityLow:
			sc.Low++
		case catalog.SeverityInfo:
			sc.Info++
		}
	}

	score := 100 -
		sc.Critical*weightCritical -
		sc.High*weightHigh -
		sc.Medium*weightMedium -
		sc.Low*weightLow
	if score < 0 {
		score = 0
	}
	sc.Score = score

	actionable := sc.Total - sc.Info

	switch {
	case sc.Critical >= 5:
		sc.RiskTier = RiskExtreme
		sc.StatusLabel = "DOCUMENTO CRIMINAL"
		sc.ColorHint = "#8B0000"
	case sc.Critical >= 3:
		sc.RiskTier = RiskMaximum
		sc.StatusLabel = "DOCUMENTO CRIMINOSO - NÃO ASSINE"
		sc.ColorHint = "red"
	case sc.Critical >= 1:
		sc.RiskTier = RiskHigh
		sc.StatusLabel = "MÚLTIPLAS VIOLAÇÕES GRAVES"
		sc.ColorHint = "red"
	case sc.High >= 2:
		sc.RiskTier = RiskHigh
		sc.StatusLabel = "VIOLAÇÕES SÉRIAS"
		sc.ColorHint = "red"
	case actionable > 0:
		sc.RiskTier = RiskModerate
		sc.StatusLabel = "PROBLEMAS DETECTADOS"
		sc.ColorHint = "yellow"
	default:
		// Informational findings alone leave the document regular.
		sc.RiskTier = RiskNone
		sc.StatusLabel = "DOCUMENTO APARENTEMENTE REGULAR"
		sc.ColorHint = "green"
	}

	return sc
}
