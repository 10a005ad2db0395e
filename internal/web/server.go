// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis pipeline as a small JSON API so the
// engine can run as a service next to the CLI.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/core"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/suppressions"
	"burocrata-scan/internal/version"
)

// maxUploadSize caps uploaded documents at 32MB, well above any plausible
// contract or invoice PDF.
const maxUploadSize = 32 << 20

// Server wraps an http.Server around a shared analyzer.
type Server struct {
	port     string
	analyzer *core.Analyzer
	mux      *http.ServeMux
	server   *http.Server
}

// AnalyzeResponse is the envelope returned by the analyze endpoint.
type AnalyzeResponse struct {
	Success       bool                              `json:"success"`
	Source        string                            `json:"source,omitempty"`
	DocumentClass catalog.DocumentClass             `json:"document_class,omitempty"`
	Findings      []engine.Finding                  `json:"findings,omitempty"`
	Suppressed    []suppressions.SuppressedFinding  `json:"suppressed,omitempty"`
	Scorecard     *engine.Scorecard                 `json:"scorecard,omitempty"`
	Error         string                            `json:"error,omitempty"`
}

// NewServer creates a server that analyzes documents with the given
// analyzer. The analyzer is shared across requests; it is safe for
// concurrent use.
func NewServer(port string, analyzer *core.Analyzer) *Server {
	s := &Server{
		port:     port,
		analyzer: analyzer,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/api/rules", s.handleRules)
	return s
}

// Handler returns the route multiplexer, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start binds the server and serves until Stop or failure. When the
// requested port is busy, the next ports in sequence are tried.
func (s *Server) Start() error {
	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := s.port
		if i > 0 {
			currentPort = fmt.Sprintf("%d", basePort(s.port)+i)
		}

		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			continue
		}

		s.server = s.createSecureServer(currentPort)
		fmt.Printf("burocrata-scan API listening on http://localhost:%s\n", currentPort)

		err = s.server.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			lastError = err
			continue
		}
		return nil
	}
	return fmt.Errorf("could not bind a port starting at %s: %v", s.port, lastError)
}

// Stop closes the server.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

// createSecureServer creates an HTTP server with security timeouts
func (s *Server) createSecureServer(port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           s.mux,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func basePort(port string) int {
	var n int
	if _, err := fmt.Sscanf(port, "%d", &n); err != nil || n <= 0 {
		return 8080
	}
	return n
}

// handleHealth reports service status and build information.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "burocrata-scan",
		"version":   versionInfo["version"],
		"build_info": map[string]interface{}{
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthData)
}

// handleRules lists the active rule catalog.
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cat := s.analyzer.Engine().Catalog()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"version": cat.Version,
		"count":   len(cat.Rules),
		"rules":   cat.Rules,
	})
}

// handleAnalyze runs one document through the pipeline. The document comes
// either as a multipart upload under the "file" field or as a "text" form
// value. Optional form values: "permissive" ("true" evaluates every rule)
// and "class" (overrides the classifier).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		if err := r.ParseForm(); err != nil {
			s.sendError(w, "failed to parse request")
			return
		}
	}

	opts := engine.Options{Permissive: r.FormValue("permissive") == "true"}
	if class := strings.ToUpper(strings.TrimSpace(r.FormValue("class"))); class != "" {
		dc := catalog.DocumentClass(class)
		if !dc.Valid() {
			s.sendError(w, fmt.Sprintf("unknown document class %q", class))
			return
		}
		opts.ForceClass = dc
	}

	var result *core.Result
	var err error
	switch {
	case r.MultipartForm != nil && len(r.MultipartForm.File["file"]) > 0:
		result, err = s.analyzeUpload(r, opts)
	case r.FormValue("text") != "":
		source := r.FormValue("source")
		if source == "" {
			source = "request-body"
		}
		result, err = s.analyzer.AnalyzeText(source, r.FormValue("text"), opts)
	default:
		s.sendError(w, "no document provided: upload a \"file\" or send \"text\"")
		return
	}
	if err != nil {
		s.sendError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success:       true,
		Source:        result.Source,
		DocumentClass: result.Report.DocumentClass,
		Findings:      result.Report.Findings,
		Suppressed:    result.Suppressed,
		Scorecard:     &result.Report.Scorecard,
	})
}

// analyzeUpload spools the uploaded file to a temp path so the extractor
// can sniff its type by extension, then analyzes it.
func (s *Server) analyzeUpload(r *http.Request, opts engine.Options) (*core.Result, error) {
	header := r.MultipartForm.File["file"][0]
	upload, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer upload.Close()

	ext := filepath.Ext(header.Filename)
	tempFile, err := os.CreateTemp("", "burocrata_upload_*"+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, io.LimitReader(upload, maxUploadSize)); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, err
	}

	result, err := s.analyzer.AnalyzeFile(tempFile.Name(), opts)
	if err != nil {
		return nil, err
	}
	// Report the client's filename, not the server-side temp path.
	result.Source = header.Filename
	return result, nil
}

func (s *Server) sendError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(AnalyzeResponse{Success: false, Error: message})
}
