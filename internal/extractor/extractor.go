// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extract reads any supported input file and returns its text. PDFs are
// validated and parsed; everything else is treated as plain text as long
// as it is valid UTF-8.
func Extract(filePath string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		if err := ValidatePDF(filePath); err != nil {
			return nil, err
		}
		return ExtractPDF(filePath)
	default:
		return extractPlainText(filePath)
	}
}

func extractPlainText(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not a text file (invalid UTF-8)", filePath)
	}
	text := string(data)
	return &Document{
		Filename:  filepath.Base(filePath),
		Text:      text,
		PageCount: 1,
		WordCount: len(strings.Fields(text)),
	}, nil
}
