// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier assigns a document class to normalized text. The
// decision is keyword driven: strong markers decide directly, and when no
// marker is present a per-class keyword count breaks the tie.
package classifier

import (
	"strings"

	"burocrata-scan/internal/catalog"
)

// Strong markers. A hit on any of these decides the class without counting.
var (
	invoiceMarkers = []string{
		"nota fiscal",
		"nfs-e",
		"nfse",
		"nf-e",
		"nfe ",
	}

	employmentMarkers = []string{
		"contrato de trabalho",
		"contrato individual de trabalho",
	}

	leaseMarkers = []string{
		"contrato de locacao",
		"locacao de imovel",
	}

	// Within a lease, these push the class to commercial.
	commercialMarkers = []string{
		"estabelecimento comercial",
		"ponto comercial",
		"fins comerciais",
		"atividade comercial",
		"fachada",
		"placa",
		"fundo de comercio",
	}
)

// Per-class keyword vocabularies, used when no strong marker decides.
var classKeywords = map[catalog.DocumentClass][]string{
	catalog.ClassEmployment: {
		"empregado", "empregador", "salario", "jornada", "clt",
		"ctps", "fgts", "horas extras", "aviso previo", "ferias",
		"decimo terceiro", "13o salario", "vale transporte", "rescisao trabalhista",
	},
	catalog.ClassResidentialLease: {
		"locador", "locatario", "aluguel", "imovel", "inquilino",
		"caucao", "fiador", "locacao", "residencial", "moradia",
		"condominio", "iptu", "vistoria", "benfeitorias",
	},
	catalog.ClassCommercialLease: {
		"locador", "locatario", "aluguel", "locacao",
		"comercial", "loja", "estabelecimento", "cnpj",
		"luvas", "fundo de comercio", "ponto",
	},
	catalog.ClassInvoice: {
		"prestador", "tomador", "iss", "aliquota", "cnpj",
		"valor do servico", "base de calculo", "codigo de verificacao",
		"competencia", "discriminacao dos servicos", "inscricao municipal",
	},
}

// Classify assigns a document class to normalized text.
//
// Strong markers are checked first, in fixed precedence: invoice markers win
// over everything (invoices frequently quote contract vocabulary in their
// service description), then employment, then lease. Without a marker the
// per-class keyword counts decide, ties broken by the fixed class order.
// A document that matches nothing is UNKNOWN.
func Classify(normalized string) catalog.DocumentClass {
	if containsAny(normalized, invoiceMarkers) {
		return catalog.ClassInvoice
	}
	if containsAny(normalized, employmentMarkers) {
		return catalog.ClassEmployment
	}
	if strings.Contains(normalized, "empregador") && strings.Contains(normalized, "empregado") {
		return catalog.ClassEmployment
	}
	if containsAny(normalized, leaseMarkers) ||
		(strings.Contains(normalized, "locador") && strings.Contains(normalized, "locatario")) {
		return leaseKind(normalized)
	}

	best := catalog.ClassUnknown
	bestScore := 0
	for _, dc := range catalog.DocumentClasses {
		words, ok := classKeywords[dc]
		if !ok {
			continue
		}
		score := 0
		for _, w := range words {
			if strings.Contains(normalized, w) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = dc, score
		}
	}
	if bestScore == 0 {
		return catalog.ClassUnknown
	}
	if best == catalog.ClassResidentialLease || best == catalog.ClassCommercialLease {
		return leaseKind(normalized)
	}
	return best
}

// leaseKind splits a lease into residential or commercial based on
// commercial-use markers; the residential class is the default.
func leaseKind(normalized string) catalog.DocumentClass {
	if containsAny(normalized, commercialMarkers) {
		return catalog.ClassCommercialLease
	}
	return catalog.ClassResidentialLease
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
