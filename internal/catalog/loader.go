// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rule catalog from a YAML file and validates it. The file
// replaces the builtin corpus entirely; callers that want to extend the
// builtin rules should use Merge.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &cat, nil
}

// Merge returns a catalog containing every rule of base plus the rules of
// extra. A rule in extra with an id already present in base replaces the
// base rule, so site-local files can override individual builtin entries.
func Merge(base, extra *Catalog) (*Catalog, error) {
	out := &Catalog{Version: base.Version}
	if extra.Version != "" {
		out.Version = extra.Version
	}

	replaced := make(map[string]int)
	for i := range base.Rules {
		replaced[base.Rules[i].ID] = len(out.Rules)
		out.Rules = append(out.Rules, base.Rules[i])
	}
	for i := range extra.Rules {
		if at, ok := replaced[extra.Rules[i].ID]; ok {
			out.Rules[at] = extra.Rules[i]
			continue
		}
		out.Rules = append(out.Rules, extra.Rules[i])
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("merged catalog is invalid: %w", err)
	}
	return out, nil
}
