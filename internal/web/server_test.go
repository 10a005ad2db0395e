// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"burocrata-scan/internal/config"
	"burocrata-scan/internal/core"

	_ "burocrata-scan/internal/formatters/json"
	_ "burocrata-scan/internal/formatters/text"
)

const abusiveLeaseText = `CONTRATO DE LOCAÇÃO RESIDENCIAL

O LOCADOR aluga ao LOCATÁRIO o imóvel residencial descrito abaixo.
Em caso de rescisão antecipada, o locatário pagará multa de 12 meses de aluguel.
O locatário depositará caução de 6 meses de aluguel como garantia.
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	analyzer, err := core.NewAnalyzer(config.Settings{Format: "json"})
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	t.Cleanup(func() { analyzer.Close() })
	return NewServer("8080", analyzer)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "burocrata-scan" {
		t.Errorf("health body = %v", body)
	}
}

func TestRulesEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rules", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
		Rules []struct {
			ID       string `json:"id"`
			Severity string `json:"severity"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Count == 0 || len(body.Rules) != body.Count {
		t.Errorf("rule listing inconsistent: count=%d len=%d", body.Count, len(body.Rules))
	}
}

func TestAnalyzeTextForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("text", abusiveLeaseText)
	form.Set("source", "contrato.txt")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success || resp.Source != "contrato.txt" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.DocumentClass != "RESIDENTIAL_LEASE" {
		t.Errorf("class = %s", resp.DocumentClass)
	}
	ids := make(map[string]bool)
	for _, f := range resp.Findings {
		ids[f.ID] = true
	}
	if !ids["MULTA_12_MESES"] || !ids["CAUCAO_ACIMA_1_MES"] {
		t.Errorf("expected lease findings, got %v", ids)
	}
	if resp.Scorecard == nil || resp.Scorecard.Critical == 0 {
		t.Errorf("scorecard = %+v", resp.Scorecard)
	}
}

func TestAnalyzeFileUpload(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "contrato.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(abusiveLeaseText)); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Source != "contrato.txt" {
		t.Errorf("envelope = %+v", resp)
	}
	if len(resp.Findings) == 0 {
		t.Error("expected findings from uploaded document")
	}
}

func TestAnalyzeForceClass(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("text", abusiveLeaseText)
	form.Set("class", "commercial_lease")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.DocumentClass != "COMMERCIAL_LEASE" {
		t.Errorf("class override ignored: %s", resp.DocumentClass)
	}
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	s := newTestServer(t)

	// Missing document.
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty request: status = %d", rec.Code)
	}

	// Unknown class.
	form := url.Values{}
	form.Set("text", abusiveLeaseText)
	form.Set("class", "DIVORCE")
	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad class: status = %d", rec.Code)
	}

	// Wrong method.
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET analyze: status = %d", rec.Code)
	}
}
