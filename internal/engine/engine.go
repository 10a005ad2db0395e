// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine runs the rule catalog against a document and produces the
// analysis report: classification, findings with original-text context, and
// the aggregated scorecard.
package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/classifier"
	"burocrata-scan/internal/normalizer"
	"burocrata-scan/internal/observability"
)

// minDocumentLength is the normalized-byte threshold below which a document
// is considered too short to analyze meaningfully.
const minDocumentLength = 50

// contextRadius is how many original-text bytes of context are kept on each
// side of the first match.
const contextRadius = 100

// Options tune a single analysis run.
type Options struct {
	// Permissive evaluates every rule regardless of the detected document
	// class, for exploratory runs against mixed or unusual documents.
	Permissive bool

	// ForceClass overrides the classifier when non-empty.
	ForceClass catalog.DocumentClass
}

type compiledRule struct {
	rule     *catalog.Rule
	patterns []*regexp.Regexp
}

// Engine is an immutable compiled catalog. Construction validates and
// compiles everything up front; a built engine is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	rules    []compiledRule
	observer *observability.StandardObserver
}

// New validates the catalog, compiles its patterns and returns a ready
// engine. A structurally invalid catalog is a hard error. A pattern that
// fails to compile is logged and skipped; the rule stays active as long as
// at least one of its patterns compiled.
func New(cat *catalog.Catalog, observer *observability.StandardObserver) (*Engine, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}

	e := &Engine{catalog: cat, observer: observer}
	for i := range cat.Rules {
		r := &cat.Rules[i]
		cr := compiledRule{rule: r}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				observer.LogOperation(observability.AnalysisObservabilityData{
					Component: "engine",
					Operation: "compile_pattern",
					Success:   false,
					Error:     fmt.Sprintf("rule %s: %v", r.ID, err),
				})
				continue
			}
			cr.patterns = append(cr.patterns, re)
		}
		if len(cr.patterns) == 0 {
			observer.LogOperation(observability.AnalysisObservabilityData{
				Component: "engine",
				Operation: "disable_rule",
				Success:   false,
				Error:     fmt.Sprintf("rule %s: no compilable patterns", r.ID),
			})
			continue
		}
		e.rules = append(e.rules, cr)
	}
	return e, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// RuleIDs returns the ids of the rules that compiled, sorted.
func (e *Engine) RuleIDs() []string {
	ids := make([]string, 0, len(e.rules))
	for _, cr := range e.rules {
		ids = append(ids, cr.rule.ID)
	}
	sort.Strings(ids)
	return ids
}

// Analyze runs the full pipeline on raw document text with default options.
func (e *Engine) Analyze(text string) *Report {
	return e.AnalyzeWithOptions(text, Options{})
}

// AnalyzeWithOptions normalizes the text, classifies it, evaluates every
// applicable rule and assembles the report. Findings are sorted by severity
// (highest first), then match count (highest first), then rule id. The same
// input always produces the same report.
func (e *Engine) AnalyzeWithOptions(text string, opts Options) *Report {
	done := e.observer.StartTiming("engine", "analyze", "")

	norm := normalizer.Normalize(text)
	if norm.Len() < minDocumentLength {
		done(true, map[string]interface{}{"short_document": true})
		return &Report{
			DocumentClass: catalog.ClassUnknown,
			Findings:      []Finding{},
			Scorecard:     BuildScorecard(nil),
		}
	}

	class := opts.ForceClass
	if class == "" {
		class = classifier.Classify(norm.Text)
	}

	findings := make([]Finding, 0, 8)
	for i := range e.rules {
		cr := &e.rules[i]
		if !opts.Permissive && !cr.rule.AppliesToClass(class) {
			continue
		}
		if f, ok := e.evaluate(cr, text, norm); ok {
			findings = append(findings, f)
		}
	}

	sort.SliceStable(findings, func(a, b int) bool {
		ra, rb := findings[a].Severity.Rank(), findings[b].Severity.Rank()
		if ra != rb {
			return ra > rb
		}
		if findings[a].MatchCount != findings[b].MatchCount {
			return findings[a].MatchCount > findings[b].MatchCount
		}
		return findings[a].ID < findings[b].ID
	})

	report := &Report{
		DocumentClass: class,
		Findings:      findings,
		Scorecard:     BuildScorecard(findings),
	}

	done(true, map[string]interface{}{
		"document_class": string(class),
		"finding_count":  len(findings),
		"rules_checked":  len(e.rules),
	})
	return report
}

// evaluate runs one compiled rule against the normalized text. A panic in
// pattern evaluation is contained to the rule: it is logged and the rule
// simply does not fire.
func (e *Engine) evaluate(cr *compiledRule, original string, norm *normalizer.Result) (f Finding, fired bool) {
	defer func() {
		if r := recover(); r != nil {
			fired = false
			e.observer.LogOperation(observability.AnalysisObservabilityData{
				Component: "engine",
				Operation: "evaluate_rule",
				Success:   false,
				Error:     fmt.Sprintf("rule %s panicked: %v", cr.rule.ID, r),
			})
		}
	}()

	matchCount := 0
	firstStart := -1
	for _, re := range cr.patterns {
		locs := re.FindAllStringIndex(norm.Text, -1)
		matchCount += len(locs)
		if len(locs) > 0 && (firstStart < 0 || locs[0][0] < firstStart) {
			firstStart = locs[0][0]
		}
	}
	if matchCount == 0 {
		return Finding{}, false
	}

	r := cr.rule
	return Finding{
		ID:          r.ID,
		Name:        r.Name,
		Severity:    r.Severity,
		Citation:    r.Citation,
		Description: r.Description,
		Detail:      r.Detail,
		Remedy:      r.Remedy,
		Context:     excerpt(original, norm, firstStart),
		MatchCount:  matchCount,
	}, true
}

// excerpt projects a normalized match offset back onto the original text
// and cuts a window of contextRadius bytes on each side, widened inward to
// UTF-8 rune boundaries. An unprojectable offset yields an empty excerpt.
func excerpt(original string, norm *normalizer.Result, normStart int) string {
	if normStart < 0 {
		return ""
	}
	at := norm.OriginalOffset(normStart)
	if at < 0 || at > len(original) {
		return ""
	}

	start := at - contextRadius
	if start < 0 {
		start = 0
	}
	end := at + contextRadius
	if end > len(original) {
		end = len(original)
	}

	for start < end && !utf8.RuneStart(original[start]) {
		start++
	}
	for end > start && end < len(original) && !utf8.RuneStart(original[end]) {
		end--
	}

	return strings.TrimSpace(original[start:end])
}
