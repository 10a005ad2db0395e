// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/formatters"
	"burocrata-scan/internal/suppressions"
)

// Formatter implements human-readable terminal output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable report for the terminal"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

var classLabels = map[catalog.DocumentClass]string{
	catalog.ClassEmployment:       "Contrato de trabalho",
	catalog.ClassResidentialLease: "Locação residencial",
	catalog.ClassCommercialLease:  "Locação comercial",
	catalog.ClassInvoice:          "Nota fiscal de serviço",
	catalog.ClassUnknown:          "Documento não classificado",
}

func (f *Formatter) Format(report *engine.Report, suppressed []suppressions.SuppressedFinding, options formatters.Options) (string, error) {
	paint := newPalette(options.NoColor)
	findings := formatters.FilterBySeverity(report.Findings, options.MinSeverity)

	var b strings.Builder

	b.WriteString(strings.Repeat("=", 64) + "\n")
	if options.Source != "" {
		fmt.Fprintf(&b, "Documento: %s\n", options.Source)
	}
	fmt.Fprintf(&b, "Tipo: %s\n", classLabels[report.DocumentClass])
	b.WriteString(strings.Repeat("=", 64) + "\n\n")

	if len(findings) == 0 {
		b.WriteString(paint.green("Nenhum problema encontrado.") + "\n\n")
	}

	for i, finding := range findings {
		sevPaint := paint.forSeverity(finding.Severity)
		fmt.Fprintf(&b, "%d. %s\n", i+1, sevPaint(finding.Description))
		fmt.Fprintf(&b, "   Regra: %s  Severidade: %s  Ocorrências: %d\n",
			finding.ID, sevPaint(string(finding.Severity)), finding.MatchCount)
		fmt.Fprintf(&b, "   Base legal: %s\n", finding.Citation)
		if finding.Context != "" {
			fmt.Fprintf(&b, "   Trecho: %s\n", excerptLine(finding.Context))
		}
		if options.Verbose {
			if finding.Detail != "" {
				fmt.Fprintf(&b, "   Detalhe: %s\n", finding.Detail)
			}
			if finding.Remedy != "" {
				fmt.Fprintf(&b, "   O que fazer: %s\n", finding.Remedy)
			}
		}
		b.WriteString("\n")
	}

	if len(suppressed) > 0 {
		fmt.Fprintf(&b, "Achados dispensados (%d):\n", len(suppressed))
		for _, s := range suppressed {
			fmt.Fprintf(&b, "   - %s: %s\n", s.Finding.ID, s.Reason)
		}
		b.WriteString("\n")
	}

	f.writeScorecard(&b, report.Scorecard, paint)
	return b.String(), nil
}

func (f *Formatter) writeScorecard(b *strings.Builder, sc engine.Scorecard, paint palette) {
	verdict := paint.forHint(sc.ColorHint)

	b.WriteString(strings.Repeat("-", 64) + "\n")
	fmt.Fprintf(b, "Problemas: %d  (críticos %d | altos %d | médios %d | baixos %d | info %d)\n",
		sc.Total, sc.Critical, sc.High, sc.Medium, sc.Low, sc.Info)
	fmt.Fprintf(b, "Pontuação: %d/100\n", sc.Score)
	fmt.Fprintf(b, "Veredito:  %s\n", verdict(sc.StatusLabel))
	b.WriteString(strings.Repeat("-", 64) + "\n")
}

// excerptLine flattens a context excerpt to a single display line.
func excerptLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// palette bundles the color functions, or identity functions when color is
// disabled.
type palette struct {
	red     func(a ...interface{}) string
	boldRed func(a ...interface{}) string
	yellow  func(a ...interface{}) string
	green   func(a ...interface{}) string
	plain   func(a ...interface{}) string
}

func newPalette(noColor bool) palette {
	if noColor {
		id := fmt.Sprint
		return palette{red: id, boldRed: id, yellow: id, green: id, plain: id}
	}
	return palette{
		red:     color.New(color.FgRed).SprintFunc(),
		boldRed: color.New(color.FgRed, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		green:   color.New(color.FgGreen).SprintFunc(),
		plain:   fmt.Sprint,
	}
}

func (p palette) forSeverity(s catalog.Severity) func(a ...interface{}) string {
	switch s {
	case catalog.SeverityCritical:
		return p.boldRed
	case catalog.SeverityHigh:
		return p.red
	case catalog.SeverityMedium, catalog.SeverityLow:
		return p.yellow
	default:
		return p.plain
	}
}

// forHint maps a scorecard color hint to a terminal color. The dark-red hex
// hint of the extreme tier renders as bold red on a 16-color terminal.
func (p palette) forHint(hint string) func(a ...interface{}) string {
	switch hint {
	case "#8B0000":
		return p.boldRed
	case "red":
		return p.red
	case "yellow":
		return p.yellow
	case "green":
		return p.green
	default:
		return p.plain
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
