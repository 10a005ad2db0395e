// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinValidates(t *testing.T) {
	cat := Builtin()
	if err := cat.Validate(); err != nil {
		t.Fatalf("builtin catalog failed validation: %v", err)
	}
	if len(cat.Rules) < 60 {
		t.Errorf("builtin catalog unexpectedly small: %d rules", len(cat.Rules))
	}
}

func TestBuiltinContainsCoreRules(t *testing.T) {
	cat := Builtin()
	wanted := []string{
		"JORNADA_12H",
		"SALARIO_ABAIXO_MINIMO",
		"RENUNCIA_FGTS",
		"INTERVALO_INTERJORNADAS_INSUF",
		"EXPERIENCIA_ACIMA_90D",
		"MULTA_ACIMA_2_MESES",
		"MULTA_12_MESES",
		"CAUCAO_ACIMA_1_MES",
		"REAJUSTE_INFRA_ANUAL",
		"GARANTIAS_CUMULADAS",
		"VISITA_SEM_AVISO",
		"NOTA_FISCAL_PRESENTE",
	}
	for _, id := range wanted {
		if _, ok := cat.Get(id); !ok {
			t.Errorf("builtin catalog missing rule %s", id)
		}
	}
}

func TestRenunciaFGTSCitesLaw(t *testing.T) {
	r, ok := Builtin().Get("RENUNCIA_FGTS")
	if !ok {
		t.Fatal("RENUNCIA_FGTS not found")
	}
	if r.Severity != SeverityCritical {
		t.Errorf("RENUNCIA_FGTS severity = %s, want CRITICAL", r.Severity)
	}
	if !strings.Contains(r.Citation, "8.036") {
		t.Errorf("RENUNCIA_FGTS citation %q does not reference Lei 8.036", r.Citation)
	}
}

func TestWildcardRulesApplyEverywhere(t *testing.T) {
	cat := Builtin()
	r, ok := cat.Get("CLAUSULA_ABUSIVA_DECLARADA")
	if !ok {
		t.Fatal("CLAUSULA_ABUSIVA_DECLARADA not found")
	}
	for _, dc := range DocumentClasses {
		if !r.AppliesToClass(dc) {
			t.Errorf("wildcard rule should apply to %s", dc)
		}
	}

	emp, _ := cat.Get("JORNADA_12H")
	if emp.AppliesToClass(ClassInvoice) {
		t.Error("employment rule should not apply to invoices")
	}
	if !emp.AppliesToClass(ClassEmployment) {
		t.Error("employment rule should apply to employment contracts")
	}
}

func TestSeverityOrdering(t *testing.T) {
	order := []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() <= order[i].Rank() {
			t.Errorf("%s should rank above %s", order[i-1], order[i])
		}
	}
	if Severity("BOGUS").Valid() {
		t.Error("unknown severity reported valid")
	}
}

func TestValidateRejectsMalformedCatalogs(t *testing.T) {
	cases := []struct {
		name string
		cat  Catalog
	}{
		{"empty", Catalog{}},
		{"missing id", Catalog{Rules: []Rule{{Severity: SeverityHigh, Patterns: []string{`x`}}}}},
		{"duplicate id", Catalog{Rules: []Rule{
			{ID: "A", Severity: SeverityHigh, Patterns: []string{`x`}},
			{ID: "A", Severity: SeverityLow, Patterns: []string{`y`}},
		}}},
		{"bad severity", Catalog{Rules: []Rule{{ID: "A", Severity: "URGENT", Patterns: []string{`x`}}}}},
		{"no patterns", Catalog{Rules: []Rule{{ID: "A", Severity: SeverityHigh}}}},
		{"empty pattern", Catalog{Rules: []Rule{{ID: "A", Severity: SeverityHigh, Patterns: []string{""}}}}},
		{"unknown class", Catalog{Rules: []Rule{{ID: "A", Severity: SeverityHigh, Patterns: []string{`x`}, AppliesTo: []DocumentClass{"LOAN"}}}}},
		{"unknown class target", Catalog{Rules: []Rule{{ID: "A", Severity: SeverityHigh, Patterns: []string{`x`}, AppliesTo: []DocumentClass{ClassUnknown}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cat.Validate(); err == nil {
				t.Errorf("expected validation error for %s catalog", tc.name)
			}
		})
	}
}

func TestWithoutRemovesRule(t *testing.T) {
	cat := Builtin()
	reduced := cat.Without("JORNADA_12H")
	if _, ok := reduced.Get("JORNADA_12H"); ok {
		t.Error("rule still present after Without")
	}
	if len(reduced.Rules) != len(cat.Rules)-1 {
		t.Errorf("Without removed %d rules, want 1", len(cat.Rules)-len(reduced.Rules))
	}
}

func TestLoadAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `version: "site-1"
rules:
  - id: LOCAL_RULE
    name: Local rule
    severity: LOW
    citation: Portaria interna
    description: local check
    detail: detail text
    remedy: remedy text
    patterns:
      - "frase local"
  - id: JORNADA_12H
    name: Overridden
    applies_to: [EMPLOYMENT]
    severity: HIGH
    citation: CLT Art. 58
    description: override
    detail: override detail
    remedy: override remedy
    patterns:
      - "12 horas"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Rules) != 2 {
		t.Fatalf("loaded %d rules, want 2", len(loaded.Rules))
	}

	merged, err := Merge(Builtin(), loaded)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.Version != "site-1" {
		t.Errorf("merged version = %q, want site-1", merged.Version)
	}
	if _, ok := merged.Get("LOCAL_RULE"); !ok {
		t.Error("merged catalog missing LOCAL_RULE")
	}
	over, _ := merged.Get("JORNADA_12H")
	if over.Severity != SeverityHigh {
		t.Errorf("override not applied: severity = %s", over.Severity)
	}
	if len(merged.Rules) != len(Builtin().Rules)+1 {
		t.Errorf("merge changed rule count unexpectedly: %d", len(merged.Rules))
	}
}

func TestLoadRejectsMissingAndInvalid(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [{id: X}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for incomplete rule")
	}
}
