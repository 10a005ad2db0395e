// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver traces the analysis pipeline step by step. Each stage of a
// document's run (extraction, rule evaluation, suppression, persistence)
// opens a step; output produced before the step's closer runs prints
// indented under it.
type DebugObserver struct {
	*StandardObserver
	depth int
}

// NewDebugObserver builds a pipeline tracer writing to the given stream.
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
}

func (d *DebugObserver) pad() string {
	return strings.Repeat("  ", d.depth)
}

// StartStep opens a pipeline step over a subject (usually the document being
// analyzed) and returns its closer. The closer reports the outcome and the
// elapsed time at the step's own indentation level.
func (d *DebugObserver) StartStep(stage, step, subject string) func(success bool, details string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s→ %s: %s (%s)\n", d.pad(), stage, step, subject)
	d.depth++

	return func(success bool, details string) {
		d.depth--
		elapsed := time.Since(start).Milliseconds()
		if success {
			fmt.Fprintf(d.writer, "%s✓ %s: %s done in %dms %s\n", d.pad(), stage, step, elapsed, details)
		} else {
			fmt.Fprintf(d.writer, "%s✗ %s: %s failed after %dms %s\n", d.pad(), stage, step, elapsed, details)
		}
	}
}

// LogDetail prints a free-form note under the current step.
func (d *DebugObserver) LogDetail(stage, detail string) {
	fmt.Fprintf(d.writer, "%s  · %s: %s\n", d.pad(), stage, detail)
}

// LogMetric prints a named value observed during the current step.
func (d *DebugObserver) LogMetric(stage, metric string, value interface{}) {
	fmt.Fprintf(d.writer, "%s  · %s: %s = %v\n", d.pad(), stage, metric, value)
}
