// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package suppressions implements reviewed waivers: findings a user has
// examined and accepted, keyed by rule id, optionally scoped to a document
// class and optionally expiring.
package suppressions

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/engine"
)

// Waiver suppresses one rule. An empty DocumentClass applies to every
// class; an expired waiver is ignored.
type Waiver struct {
	RuleID        string                `yaml:"rule_id"`
	DocumentClass catalog.DocumentClass `yaml:"document_class,omitempty"`
	Reason        string                `yaml:"reason"`
	Enabled       bool                  `yaml:"enabled"`
	CreatedBy     string                `yaml:"created_by,omitempty"`
	CreatedAt     time.Time             `yaml:"created_at,omitempty"`
	ExpiresAt     *time.Time            `yaml:"expires_at,omitempty"`
}

// Config is the waiver file layout.
type Config struct {
	Version string   `yaml:"version"`
	Waivers []Waiver `yaml:"waivers"`
}

// SuppressedFinding pairs a filtered-out finding with the waiver that
// removed it, so reports can still account for it.
type SuppressedFinding struct {
	Finding engine.Finding `json:"finding"`
	Reason  string         `json:"reason"`
}

// Manager filters reports against a waiver file. A missing or unreadable
// file behaves as an empty waiver set; analysis never fails because the
// waiver file is absent.
type Manager struct {
	configPath string
	config     *Config
	now        func() time.Time
}

// NewManager loads waivers from configPath. An empty path means no file.
func NewManager(configPath string) *Manager {
	m := &Manager{configPath: configPath, now: time.Now}
	m.loadConfig()
	return m
}

func (m *Manager) loadConfig() {
	m.config = &Config{Version: "1.0"}
	if m.configPath == "" {
		return
	}

	data, err := os.ReadFile(filepath.Clean(m.configPath))
	if err != nil {
		return
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	m.config = &cfg
}

// WaiverCount reports how many waivers are loaded.
func (m *Manager) WaiverCount() int {
	return len(m.config.Waivers)
}

// match finds the active waiver covering a finding, if any.
func (m *Manager) match(f engine.Finding, class catalog.DocumentClass) (Waiver, bool) {
	for _, w := range m.config.Waivers {
		if !w.Enabled || w.RuleID != f.ID {
			continue
		}
		if w.DocumentClass != "" && w.DocumentClass != class {
			continue
		}
		if w.ExpiresAt != nil && m.now().After(*w.ExpiresAt) {
			continue
		}
		return w, true
	}
	return Waiver{}, false
}

// Apply splits a report's findings into kept and suppressed and recomputes
// the scorecard over the kept set. The input report is not modified.
func (m *Manager) Apply(report *engine.Report) (*engine.Report, []SuppressedFinding) {
	if len(m.config.Waivers) == 0 {
		return report, nil
	}

	kept := make([]engine.Finding, 0, len(report.Findings))
	var suppressed []SuppressedFinding
	for _, f := range report.Findings {
		if w, ok := m.match(f, report.DocumentClass); ok {
			suppressed = append(suppressed, SuppressedFinding{Finding: f, Reason: w.Reason})
			continue
		}
		kept = append(kept, f)
	}

	if len(suppressed) == 0 {
		return report, nil
	}

	return &engine.Report{
		DocumentClass: report.DocumentClass,
		Findings:      kept,
		Scorecard:     engine.BuildScorecard(kept),
	}, suppressed
}

// Save writes the waiver config back to its file.
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	return os.WriteFile(m.configPath, data, 0o600)
}

// Add appends a waiver and persists the file.
func (m *Manager) Add(w Waiver) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = m.now()
	}
	m.config.Waivers = append(m.config.Waivers, w)
	return m.Save()
}
