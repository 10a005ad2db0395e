// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"strings"
	"testing"
)

func TestCleanFoldsAccentsAndCase(t *testing.T) {
	cases := map[string]string{
		"MULTA RESCISÓRIA":          "multa rescisoria",
		"Caução de três meses":      "caucao de tres meses",
		"Férias  e   13º  salário":  "ferias e 13o salario",
		"  espaços \t nas\nbordas ": "espacos nas bordas",
		"ALÍQUOTA DE 5%":            "aliquota de 5%",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Contrato de LOCAÇÃO\ncom   cláusulas ABUSIVAS",
		"texto já normalizado sem acentos",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in).Text
		twice := Normalize(once).Text
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestControlCharactersCollapse(t *testing.T) {
	in := "multa\x00de\x1f12\x7fmeses"
	if got := Clean(in); got != "multa de 12 meses" {
		t.Errorf("Clean(%q) = %q", in, got)
	}
}

func TestOriginalOffsetProjectsBack(t *testing.T) {
	original := "A  MULTA Rescisória será de 12 meses."
	r := Normalize(original)

	idx := strings.Index(r.Text, "multa")
	if idx < 0 {
		t.Fatalf("normalized text missing token: %q", r.Text)
	}
	at := r.OriginalOffset(idx)
	if !strings.HasPrefix(original[at:], "MULTA") {
		t.Errorf("offset %d points at %q, want start of MULTA", at, original[at:])
	}

	idx = strings.Index(r.Text, "rescisoria")
	at = r.OriginalOffset(idx)
	if !strings.HasPrefix(original[at:], "Rescisória") {
		t.Errorf("offset %d points at %q, want start of Rescisória", at, original[at:])
	}
}

func TestOriginalOffsetBounds(t *testing.T) {
	original := "  texto  "
	r := Normalize(original)

	if got := r.OriginalOffset(-1); got != 0 {
		t.Errorf("negative offset = %d, want 0", got)
	}
	if got := r.OriginalOffset(r.Len() + 10); got != len(original) {
		t.Errorf("past-end offset = %d, want %d", got, len(original))
	}

	start, end := r.OriginalRange(0, r.Len())
	if start > end || start < 0 || end > len(original) {
		t.Errorf("range [%d, %d) out of bounds", start, end)
	}
}

func TestEmptyAndWhitespaceOnly(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n\r"} {
		r := Normalize(in)
		if r.Len() != 0 {
			t.Errorf("Normalize(%q).Len() = %d, want 0", in, r.Len())
		}
	}
}
