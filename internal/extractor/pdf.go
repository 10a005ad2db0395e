// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor turns input files into plain text for analysis. PDF is
// the primary format; plain text and UTF-8 byte streams pass through.
package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages caps how many pages of a PDF are processed. Contracts and
// invoices fit comfortably; anything longer is truncated.
const maxPages = 50

// Document is the extracted text of one input file.
type Document struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	Truncated bool
}

// ExtractPDF pulls the text out of a PDF file, pages in parallel, pages
// reassembled in order. Individual unreadable pages are skipped; the
// extraction fails only when the file itself cannot be opened.
func ExtractPDF(filePath string) (*Document, error) {
	doc := &Document{Filename: filepath.Base(filePath)}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", filePath, err)
	}
	defer f.Close()

	doc.PageCount = r.NumPage()
	pages := doc.PageCount
	if pages > maxPages {
		pages = maxPages
		doc.Truncated = true
	}

	type pageResult struct {
		pageNum int
		text    string
		err     error
	}

	results := make(chan pageResult, pages)
	for i := 1; i <= pages; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				results <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := pageText(p)
			results <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string, pages)
	for i := 0; i < pages; i++ {
		res := <-results
		if res.err != nil {
			continue
		}
		pageTexts[res.pageNum] = res.text
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		text, ok := pageTexts[i]
		if !ok {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	if formText := formFields(r); formText != "" {
		buf.WriteString("\n")
		buf.WriteString(formText)
	}

	doc.Text = tidy(buf.String())
	doc.WordCount = len(strings.Fields(doc.Text))

	if doc.Text == "" {
		return doc, fmt.Errorf("no text extracted from %s (scanned image PDF?)", filePath)
	}
	return doc, nil
}

// pageText extracts one page using row positions so words keep their
// spacing; it falls back to plain extraction when row data is missing.
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := joinRow(row.Content)
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// joinRow orders the text elements of a row left to right and inserts a
// space wherever the horizontal gap between neighbors exceeds 20% of the
// font size.
func joinRow(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (e.X + e.W)
		fontSize := e.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// formFields collects AcroForm field values. Filled-in contract forms carry
// the negotiated terms in the fields rather than the page text.
func formFields(r *pdf.Reader) string {
	root := r.Trailer().Key("Root")
	if root.IsNull() {
		return ""
	}
	acroForm := root.Key("AcroForm")
	if acroForm.IsNull() {
		return ""
	}
	fields := acroForm.Key("Fields")
	if fields.IsNull() || fields.Kind() != pdf.Array {
		return ""
	}

	var buf bytes.Buffer
	for i := 0; i < fields.Len(); i++ {
		field := fields.Index(i)
		if field.IsNull() || field.Kind() != pdf.Dict {
			continue
		}
		name := stringValue(field.Key("T"))
		value := stringValue(field.Key("V"))
		if value == "" {
			value = stringValue(field.Key("DV"))
		}
		if name != "" && value != "" {
			fmt.Fprintf(&buf, "%s: %s\n", name, value)
		}
	}
	return buf.String()
}

func stringValue(v pdf.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	}
	return ""
}

// tidy drops blank lines and collapses intra-line runs of spaces. The
// engine's normalizer does the heavy lifting later; this only keeps the
// intermediate text readable in excerpts.
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
