// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the analysis pipeline together: extraction, the rule
// engine, suppressions, history and output formatting. The CLI and the web
// server both drive this package instead of assembling the pieces themselves.
package core

import (
	"fmt"
	"os"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/config"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/extractor"
	"burocrata-scan/internal/formatters"
	"burocrata-scan/internal/history"
	"burocrata-scan/internal/observability"
	"burocrata-scan/internal/suppressions"
)

// Analyzer holds a compiled engine plus the optional side services
// (suppressions, history) configured for it. Build one per process and
// reuse it across documents.
type Analyzer struct {
	settings config.Settings
	engine   *engine.Engine
	waivers  *suppressions.Manager
	history  *history.Store
	observer *observability.StandardObserver
}

// Result is one analyzed document.
type Result struct {
	Source     string
	Document   *extractor.Document
	Report     *engine.Report
	Suppressed []suppressions.SuppressedFinding

	// HistoryID is the row id the analysis was recorded under, 0 when
	// history is disabled.
	HistoryID int64
}

// NewAnalyzer builds the pipeline from effective settings. The builtin rule
// catalog is always loaded; a configured catalog file extends or overrides
// it. Suppressions and history are attached only when configured.
func NewAnalyzer(settings config.Settings) (*Analyzer, error) {
	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if settings.Debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}

	cat := catalog.Builtin()
	if settings.CatalogFile != "" {
		extra, err := catalog.Load(settings.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule catalog: %w", err)
		}
		cat, err = catalog.Merge(cat, extra)
		if err != nil {
			return nil, fmt.Errorf("failed to merge rule catalog: %w", err)
		}
	}

	eng, err := engine.New(cat, observer)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		settings: settings,
		engine:   eng,
		observer: observer,
	}
	if settings.SuppressionsFile != "" {
		a.waivers = suppressions.NewManager(settings.SuppressionsFile)
	}
	if settings.HistoryFile != "" {
		store, err := history.Open(settings.HistoryFile)
		if err != nil {
			return nil, err
		}
		a.history = store
	}
	return a, nil
}

// Close releases the history database, when one is open.
func (a *Analyzer) Close() error {
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

// Engine exposes the compiled rule engine.
func (a *Analyzer) Engine() *engine.Engine {
	return a.engine
}

// History exposes the history store, nil when history is disabled.
func (a *Analyzer) History() *history.Store {
	return a.history
}

// Waivers exposes the suppression manager, nil when suppressions are not
// configured.
func (a *Analyzer) Waivers() *suppressions.Manager {
	return a.waivers
}

// AnalyzeFile extracts the file's text and runs the full pipeline on it.
func (a *Analyzer) AnalyzeFile(path string, opts engine.Options) (*Result, error) {
	var endStep func(success bool, details string)
	if a.observer.DebugObserver != nil {
		endStep = a.observer.DebugObserver.StartStep("extractor", "extract", path)
	}

	doc, err := extractor.Extract(path)
	if endStep != nil {
		if err != nil {
			endStep(false, err.Error())
		} else {
			endStep(true, fmt.Sprintf("%d pages, %d words", doc.PageCount, doc.WordCount))
		}
	}
	if err != nil {
		return nil, err
	}

	result, err := a.analyze(path, doc.Text, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	return result, nil
}

// AnalyzeText runs the pipeline on already-extracted text. The source name
// is used for reporting and history only.
func (a *Analyzer) AnalyzeText(source, text string, opts engine.Options) (*Result, error) {
	return a.analyze(source, text, opts)
}

func (a *Analyzer) analyze(source, text string, opts engine.Options) (*Result, error) {
	opts.Permissive = opts.Permissive || a.settings.Permissive

	report := a.engine.AnalyzeWithOptions(text, opts)
	if a.observer.DebugObserver != nil {
		a.observer.DebugObserver.LogMetric("engine", "document_class", string(report.DocumentClass))
		a.observer.DebugObserver.LogMetric("engine", "findings", len(report.Findings))
	}

	var suppressed []suppressions.SuppressedFinding
	if a.waivers != nil {
		report, suppressed = a.waivers.Apply(report)
		if a.observer.DebugObserver != nil && len(suppressed) > 0 {
			a.observer.DebugObserver.LogDetail("suppressions", fmt.Sprintf("%d finding(s) waived", len(suppressed)))
		}
	}

	result := &Result{
		Source:     source,
		Report:     report,
		Suppressed: suppressed,
	}

	if a.history != nil {
		id, err := a.history.SaveAnalysis(source, report, len(suppressed))
		if err != nil {
			return nil, fmt.Errorf("failed to record analysis: %w", err)
		}
		result.HistoryID = id
	}
	return result, nil
}

// Render formats a result with the configured output format.
func (a *Analyzer) Render(result *Result) (string, error) {
	return formatters.Export(a.settings.Format, result.Report, result.Suppressed, formatters.Options{
		Verbose:     a.settings.Verbose,
		NoColor:     a.settings.NoColor,
		MinSeverity: catalog.Severity(a.settings.MinSeverity),
		Source:      result.Source,
	})
}
