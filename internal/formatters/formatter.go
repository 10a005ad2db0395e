// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/suppressions"
)

// Options defines configuration options for formatters
type Options struct {
	Verbose     bool             // Whether to display detail and remedy text
	NoColor     bool             // Whether to disable colored output
	MinSeverity catalog.Severity // Lowest severity to display (empty shows all)
	Source      string           // Name of the analyzed file, for headers
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders an analysis report in the formatter's output format
	Format(report *engine.Report, suppressed []suppressions.SuppressedFinding, options Options) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders a report in the named format, for both CLI and web use
func Export(format string, report *engine.Report, suppressed []suppressions.SuppressedFinding, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(report, suppressed, options)
}

// FormatInfo provides metadata about a formatter for web integration
type FormatInfo struct {
	Name        string
	Description string
	Extension   string
	MimeType    string
}

// GetFormatInfo returns metadata about a specific formatter
func GetFormatInfo(name string) FormatInfo {
	formatter, exists := Get(name)
	if !exists {
		return FormatInfo{}
	}

	info := FormatInfo{
		Name:        formatter.Name(),
		Description: formatter.Description(),
		Extension:   formatter.FileExtension(),
	}

	switch name {
	case "json":
		info.MimeType = "application/json"
	case "csv":
		info.MimeType = "text/csv"
	case "text":
		info.MimeType = "text/plain"
	default:
		info.MimeType = "application/octet-stream"
	}

	return info
}

// FilterBySeverity keeps only the findings at or above the minimum severity.
// An empty minimum keeps everything.
func FilterBySeverity(findings []engine.Finding, min catalog.Severity) []engine.Finding {
	if min == "" {
		return findings
	}
	out := make([]engine.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Severity.Rank() >= min.Rank() {
			out = append(out, f)
		}
	}
	return out
}
