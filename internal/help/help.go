// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"burocrata-scan/internal/catalog"
)

// System renders CLI help and rule documentation.
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"critical": color.New(color.FgRed, color.Bold),
			"high":     color.New(color.FgRed),
			"medium":   color.New(color.FgYellow),
			"low":      color.New(color.FgWhite),
			"info":     color.New(color.FgGreen),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Burocrata Scan - Análise de documentos jurídicos brasileiros")
	fmt.Println("============================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  burocrata-scan --file <path-to-document> [options]")
	fmt.Println("  burocrata-scan --web [--port <port>]  # API server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the PDF or text document to analyze (required)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv (default: text)")
	fmt.Fprintln(w, "  --class\t<class>\tForce the document class: EMPLOYMENT, RESIDENTIAL_LEASE, COMMERCIAL_LEASE, INVOICE")
	fmt.Fprintln(w, "  --permissive\t\tEvaluate every rule regardless of the detected document class")
	fmt.Fprintln(w, "  --min-severity\t<level>\tHide findings below this severity: CRITICAL, HIGH, MEDIUM, LOW, INFO")
	fmt.Fprintln(w, "  --fail-on\t<level>\tExit with code 2 when a finding at or above this severity remains")
	fmt.Fprintln(w, "  --catalog\t<path>\tYAML rule catalog that extends or overrides the builtin rules")
	fmt.Fprintln(w, "  --list-rules\t\tList the active rule catalog and exit")
	fmt.Fprintln(w, "  --explain\t<rule-id>\tShow detailed help for one rule and exit")
	fmt.Fprintln(w, "  --suppressions\t<path>\tPath to the reviewed-waiver file")
	fmt.Fprintln(w, "  --history\t<path>\tSQLite database to record analyses in")
	fmt.Fprintln(w, "  --history-list\t\tList recorded analyses and exit (requires --history)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detail and remedy for each finding")
	fmt.Fprintln(w, "  --debug\t\tEnable step-by-step debug logging of the pipeline")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --web\t\tStart the JSON API server instead of analyzing a file")
	fmt.Fprintln(w, "  --port\t<port>\tPort for the API server (default: 8080, only used with --web)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic usage:")
	h.colors["example"].Println("    burocrata-scan --file contrato.pdf")
	h.colors["example"].Println("    burocrata-scan --file contrato.pdf --verbose --min-severity HIGH")
	fmt.Println("  Machine output for pipelines:")
	h.colors["example"].Println("    burocrata-scan --file nota-fiscal.pdf --format json --no-color")
	fmt.Println("  Configuration and profiles:")
	h.colors["example"].Println("    burocrata-scan --file contrato.pdf --config burocrata.yaml --profile triage")
	h.colors["example"].Println("    burocrata-scan --list-profiles --config burocrata.yaml")
	fmt.Println("  Rule catalog:")
	h.colors["example"].Println("    burocrata-scan --list-rules")
	h.colors["example"].Println("    burocrata-scan --explain RENUNCIA_FGTS")
	fmt.Println()
}

// ShowRules prints the catalog as a table, grouped by severity.
func (h *System) ShowRules(cat *catalog.Catalog) {
	h.colors["title"].Printf("Rule catalog %s (%d rules)\n", cat.Version, len(cat.Rules))
	fmt.Println()

	rules := make([]catalog.Rule, len(cat.Rules))
	copy(rules, cat.Rules)
	sort.SliceStable(rules, func(a, b int) bool {
		if rules[a].Severity.Rank() != rules[b].Severity.Rank() {
			return rules[a].Severity.Rank() > rules[b].Severity.Rank()
		}
		return rules[a].ID < rules[b].ID
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tSEVERITY\tCLASSES\tNAME")
	for _, r := range rules {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.ID, h.severityLabel(r.Severity), classList(r.AppliesTo), r.Name)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("Use --explain <rule-id> for patterns, legal citation and remedy.")
}

// ShowRule prints everything known about one rule.
func (h *System) ShowRule(cat *catalog.Catalog, id string) error {
	rule, ok := cat.Get(strings.ToUpper(strings.TrimSpace(id)))
	if !ok {
		return fmt.Errorf("unknown rule %q, use --list-rules to see the catalog", id)
	}

	h.colors["title"].Printf("%s: %s\n", rule.ID, rule.Name)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Severity:\t%s\n", h.severityLabel(rule.Severity))
	fmt.Fprintf(w, "  Applies to:\t%s\n", classList(rule.AppliesTo))
	if rule.Citation != "" {
		fmt.Fprintf(w, "  Legal basis:\t%s\n", rule.Citation)
	}
	w.Flush()

	if rule.Description != "" {
		fmt.Println()
		fmt.Println("  " + rule.Description)
	}
	if rule.Detail != "" {
		fmt.Println()
		h.colors["header"].Println("DETAIL:")
		fmt.Println("  " + rule.Detail)
	}
	if rule.Remedy != "" {
		fmt.Println()
		h.colors["header"].Println("WHAT TO DO:")
		fmt.Println("  " + rule.Remedy)
	}

	fmt.Println()
	h.colors["header"].Println("PATTERNS (matched against normalized text):")
	for _, p := range rule.Patterns {
		h.colors["item"].Println("  " + p)
	}
	return nil
}

func (h *System) severityLabel(s catalog.Severity) string {
	c, ok := h.colors[strings.ToLower(string(s))]
	if !ok || h.noColor {
		return string(s)
	}
	return c.Sprint(string(s))
}

func classList(classes []catalog.DocumentClass) string {
	if len(classes) == 0 {
		return "all"
	}
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
