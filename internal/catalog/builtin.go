// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// BuiltinVersion identifies the embedded rule corpus.
const BuiltinVersion = "2025.08"

// Builtin assembles the embedded rule catalog: employment, lease and
// invoice families plus the wildcard rules. The returned catalog is
// freshly allocated and safe to mutate.
func Builtin() *Catalog {
	var rules []Rule
	rules = append(rules, employmentRules()...)
	rules = append(rules, leaseRules()...)
	rules = append(rules, invoiceRules()...)
	rules = append(rules, genericRules()...)
	return &Catalog{
		Version: BuiltinVersion,
		Rules:   rules,
	}
}
