// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/config"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/suppressions"

	_ "burocrata-scan/internal/formatters/json"
	_ "burocrata-scan/internal/formatters/text"
)

const abusiveContract = `CONTRATO DE TRABALHO

O EMPREGADOR admite o EMPREGADO mediante as cláusulas seguintes.
O empregado renuncia ao FGTS e a todos os depósitos do fundo de garantia.
A jornada de trabalho será de 12 horas diárias, de segunda a sábado.
O salário mensal será de R$ 800,00 (oitocentos reais).
`

func writeContract(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contrato.txt")
	if err := os.WriteFile(path, []byte(abusiveContract), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeFile(t *testing.T) {
	a, err := NewAnalyzer(config.Settings{Format: "json"})
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	defer a.Close()

	result, err := a.AnalyzeFile(writeContract(t), engine.Options{})
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}

	if result.Document == nil || result.Document.WordCount == 0 {
		t.Error("extraction metadata missing")
	}
	if result.Report.DocumentClass != catalog.ClassEmployment {
		t.Errorf("class = %s, want EMPLOYMENT", result.Report.DocumentClass)
	}
	ids := make(map[string]bool)
	for _, f := range result.Report.Findings {
		ids[f.ID] = true
	}
	for _, want := range []string{"RENUNCIA_FGTS", "JORNADA_12H"} {
		if !ids[want] {
			t.Errorf("expected finding %s, got %v", want, ids)
		}
	}

	out, err := a.Render(result)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Error("json render is not valid JSON")
	}
}

func TestAnalyzeFileUnreadable(t *testing.T) {
	a, err := NewAnalyzer(config.Settings{Format: "text"})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if _, err := a.AnalyzeFile(filepath.Join(t.TempDir(), "nao-existe.pdf"), engine.Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalyzerAppliesSuppressions(t *testing.T) {
	dir := t.TempDir()
	waiverPath := filepath.Join(dir, "waivers.yaml")

	m := suppressions.NewManager(waiverPath)
	if err := m.Add(suppressions.Waiver{
		RuleID:  "JORNADA_12H",
		Reason:  "escala de plantão acordada em convenção coletiva",
		Enabled: true,
	}); err != nil {
		t.Fatal(err)
	}

	a, err := NewAnalyzer(config.Settings{Format: "text", SuppressionsFile: waiverPath})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	result, err := a.AnalyzeText("contrato.txt", abusiveContract, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range result.Report.Findings {
		if f.ID == "JORNADA_12H" {
			t.Error("waived finding still present in report")
		}
	}
	if len(result.Suppressed) != 1 || result.Suppressed[0].Finding.ID != "JORNADA_12H" {
		t.Errorf("suppressed = %+v", result.Suppressed)
	}
}

func TestAnalyzerRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAnalyzer(config.Settings{
		Format:      "text",
		HistoryFile: filepath.Join(dir, "history.db"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	result, err := a.AnalyzeText("contrato.txt", abusiveContract, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if result.HistoryID == 0 {
		t.Fatal("expected a history row id")
	}

	entries, err := a.History().ListRecent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Source != "contrato.txt" {
		t.Errorf("history entries = %+v", entries)
	}
	if entries[0].Score != result.Report.Scorecard.Score {
		t.Error("stored score does not match report")
	}
}

func TestAnalyzerLoadsCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "regras.yaml")
	extra := `
version: "local-1"
rules:
  - id: CLAUSULA_DA_CASA
    name: Cláusula proibida pela política interna
    severity: HIGH
    description: texto vetado pelo jurídico
    patterns:
      - "foro de eleicao exclusivo"
`
	if err := os.WriteFile(catalogPath, []byte(extra), 0o600); err != nil {
		t.Fatal(err)
	}

	a, err := NewAnalyzer(config.Settings{Format: "text", CatalogFile: catalogPath})
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	defer a.Close()

	found := false
	for _, id := range a.Engine().RuleIDs() {
		if id == "CLAUSULA_DA_CASA" {
			found = true
		}
	}
	if !found {
		t.Error("custom rule not merged into the catalog")
	}

	if _, err := NewAnalyzer(config.Settings{Format: "text", CatalogFile: filepath.Join(dir, "absent.yaml")}); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestRenderTextOutput(t *testing.T) {
	a, err := NewAnalyzer(config.Settings{Format: "text", NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	result, err := a.AnalyzeText("contrato.txt", abusiveContract, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := a.Render(result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "contrato.txt") || !strings.Contains(out, "RENUNCIA_FGTS") {
		t.Errorf("text output incomplete:\n%s", out)
	}
}
