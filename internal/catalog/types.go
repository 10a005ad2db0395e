// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// DocumentClass is the coarse category assigned to a document. It filters
// which rules apply and is reported in the output.
type DocumentClass string

const (
	ClassEmployment       DocumentClass = "EMPLOYMENT"
	ClassResidentialLease DocumentClass = "RESIDENTIAL_LEASE"
	ClassCommercialLease  DocumentClass = "COMMERCIAL_LEASE"
	ClassInvoice          DocumentClass = "INVOICE"
	ClassUnknown          DocumentClass = "UNKNOWN"
)

// DocumentClasses lists every valid class, in classifier tie-break order.
var DocumentClasses = []DocumentClass{
	ClassEmployment,
	ClassResidentialLease,
	ClassCommercialLease,
	ClassInvoice,
	ClassUnknown,
}

// Valid reports whether dc is a member of the closed class set.
func (dc DocumentClass) Valid() bool {
	switch dc {
	case ClassEmployment, ClassResidentialLease, ClassCommercialLease, ClassInvoice, ClassUnknown:
		return true
	}
	return false
}

// Severity is the ordered severity enumeration. Ordering is total and
// drives sorting, scoring, and the report status.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

var severityRank = map[Severity]int{
	SeverityCritical: 5,
	SeverityHigh:     4,
	SeverityMedium:   3,
	SeverityLow:      2,
	SeverityInfo:     1,
}

// Rank returns the numeric ordering of the severity (CRITICAL highest).
// Unknown severities rank below INFO.
func (s Severity) Rank() int {
	return severityRank[s]
}

// Valid reports whether s is a known severity value.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Rule is a single catalog entry: one named, pattern-driven test for one
// violation. Patterns are authored against normalized text (lowercase, no
// diacritics, collapsed whitespace); a rule fires when any pattern matches.
//
// An empty AppliesTo set marks a wildcard rule that is evaluated for every
// document class.
type Rule struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	AppliesTo   []DocumentClass `yaml:"applies_to,omitempty" json:"applies_to,omitempty"`
	Severity    Severity        `yaml:"severity" json:"severity"`
	Citation    string          `yaml:"citation" json:"citation"`
	Description string          `yaml:"description" json:"description"`
	Detail      string          `yaml:"detail" json:"detail"`
	Remedy      string          `yaml:"remedy" json:"remedy"`
	Patterns    []string        `yaml:"patterns" json:"patterns"`
}

// AppliesToClass reports whether the rule is a candidate for the given
// document class. Wildcard rules apply to every class.
func (r *Rule) AppliesToClass(dc DocumentClass) bool {
	if len(r.AppliesTo) == 0 {
		return true
	}
	for _, c := range r.AppliesTo {
		if c == dc {
			return true
		}
	}
	return false
}
