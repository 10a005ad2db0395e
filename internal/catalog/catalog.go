// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"sort"
)

// Catalog is the full set of detectable violations. It is loaded once at
// engine construction and must not be mutated afterwards; a validated
// catalog may be shared freely across parallel analyses.
type Catalog struct {
	Version string `yaml:"version" json:"version"`
	Rules   []Rule `yaml:"rules" json:"rules"`
}

// Validate checks the structural invariants of the catalog: unique ids,
// known severities, non-empty pattern lists, and known document classes.
// Catalog construction fails loudly; the process should not start with a
// malformed catalog.
func (c *Catalog) Validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("catalog has no rules")
	}

	seen := make(map[string]struct{}, len(c.Rules))
	for i := range c.Rules {
		r := &c.Rules[i]
		if r.ID == "" {
			return fmt.Errorf("rule at index %d has no id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}

		if !r.Severity.Valid() {
			return fmt.Errorf("rule %s: unknown severity %q", r.ID, r.Severity)
		}
		if len(r.Patterns) == 0 {
			return fmt.Errorf("rule %s: no patterns", r.ID)
		}
		for j, p := range r.Patterns {
			if p == "" {
				return fmt.Errorf("rule %s: pattern %d is empty", r.ID, j)
			}
		}
		for _, dc := range r.AppliesTo {
			if !dc.Valid() || dc == ClassUnknown {
				return fmt.Errorf("rule %s: invalid document class %q in applies_to", r.ID, dc)
			}
		}
	}
	return nil
}

// RuleIDs returns every rule id in the catalog, sorted.
func (c *Catalog) RuleIDs() []string {
	ids := make([]string, 0, len(c.Rules))
	for i := range c.Rules {
		ids = append(ids, c.Rules[i].ID)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the rule with the given id, if present.
func (c *Catalog) Get(id string) (*Rule, bool) {
	for i := range c.Rules {
		if c.Rules[i].ID == id {
			return &c.Rules[i], true
		}
	}
	return nil, false
}

// Without returns a copy of the catalog with the named rule removed.
// Useful for building reduced catalogs in tests.
func (c *Catalog) Without(id string) *Catalog {
	out := &Catalog{Version: c.Version}
	for i := range c.Rules {
		if c.Rules[i].ID == id {
			continue
		}
		out.Rules = append(out.Rules, c.Rules[i])
	}
	return out
}
