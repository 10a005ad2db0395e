// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Wildcard rules: empty AppliesTo, so they run against every document class,
// including UNKNOWN. They catch clauses that announce their own abusiveness
// regardless of contract type.

func genericRules() []Rule {
	return []Rule{
		{
			ID:       "CLAUSULA_ABUSIVA_DECLARADA",
			Name:     "Cláusula declaradamente abusiva",
			Severity: SeverityHigh,
			Citation: "Código Civil Art. 122 + CDC Art. 51",
			Description: "⚠️ CLÁUSULA DECLARADAMENTE ABUSIVA",
			Detail:      "O próprio texto qualifica a obrigação como abusiva, o que dispensa maior análise.",
			Remedy:      "Exija a revisão da cláusula antes de assinar.",
			Patterns: []string{
				`clausula abusiva`,
				`condicao abusiva`,
				`(?:obrigacao|exigencia) abusiva`,
			},
		},
		{
			ID:       "CLAUSULA_ILEGAL_DECLARADA",
			Name:     "Cláusula declaradamente ilegal",
			Severity: SeverityHigh,
			Citation: "Código Civil Art. 166",
			Description: "⚠️ CLÁUSULA DECLARADAMENTE ILEGAL",
			Detail:      "O texto admite contrariar a lei; negócio com objeto ilícito é nulo.",
			Remedy:      "Não assine; cláusula ilegal é nula de pleno direito.",
			Patterns: []string{
				`clausula ilegal`,
				`(?:ainda que|mesmo que|embora) ilegal`,
				`(?:disposicao|condicao) ilegal`,
			},
		},
		{
			ID:       "CLAUSULA_NULA_DECLARADA",
			Name:     "Cláusula declaradamente nula",
			Severity: SeverityMedium,
			Citation: "Código Civil Art. 166 e 169",
			Description: "⚠️ CLÁUSULA QUE SE DECLARA NULA",
			Detail:      "Cláusula que o próprio contrato reconhece como nula não produz efeitos, mas sua presença indica má-fé na redação.",
			Remedy:      "Exija a remoção da cláusula do texto final.",
			Patterns: []string{
				`clausula nula`,
				`nula de pleno direito`,
			},
		},
		{
			ID:       "CONTRARIO_LEI",
			Name:     "Disposição contrária à lei",
			Severity: SeverityHigh,
			Citation: "Lei de Introdução às Normas do Direito Brasileiro Art. 2º",
			Description: "⚠️ DISPOSIÇÃO CONTRÁRIA À LEI",
			Detail:      "O texto afasta expressamente a aplicação da legislação vigente.",
			Remedy:      "Exija a adequação do contrato à legislação aplicável.",
			Patterns: []string{
				`contrari[oa].{0,10}(?:a |ao )?(?:lei|legislacao)`,
				`independente(?:mente)? (?:do que diz|da) (?:a )?(?:lei|legislacao)`,
				`renuncia.{0,30}(?:a |aos )?direitos? (?:legais|previstos em lei)`,
			},
		},
		{
			ID:       "ONUS_EXCESSIVO",
			Name:     "Ônus excessivo",
			Severity: SeverityMedium,
			Citation: "CDC Art. 51 IV",
			Description: "⚠️ ÔNUS EXCESSIVO PARA UMA DAS PARTES",
			Detail:      "Obrigações que o texto qualifica como excessivamente onerosas colocam uma parte em desvantagem exagerada.",
			Remedy:      "Negocie o reequilíbrio da obrigação.",
			Patterns: []string{
				`onus excessivo`,
				`excessivamente oneros`,
				`onerosidade excessiva`,
			},
		},
		{
			ID:       "DESVANTAGEM_EXCESSIVA",
			Name:     "Desvantagem exagerada",
			Severity: SeverityMedium,
			Citation: "CDC Art. 51 IV e § 1º",
			Description: "⚠️ DESVANTAGEM EXAGERADA",
			Detail:      "Cláusula que coloca uma parte em desvantagem exagerada é nula segundo o CDC.",
			Remedy:      "Exija o reequilíbrio das obrigações entre as partes.",
			Patterns: []string{
				`desvantagem (?:exagerada|excessiva)`,
				`manifestamente desvantajos`,
			},
		},
		{
			ID:       "VIOLACAO_DIREITO_DECLARADA",
			Name:     "Violação de direito declarada",
			Severity: SeverityHigh,
			Citation: "Constituição Federal Art. 5º",
			Description: "⚠️ VIOLAÇÃO DE DIREITO DECLARADA NO TEXTO",
			Detail:      "O texto admite violar direito garantido; a renúncia antecipada a direitos fundamentais não tem validade.",
			Remedy:      "Exija a supressão da cláusula violadora.",
			Patterns: []string{
				`violacao.{0,20}(?:de |do |dos )?direitos?`,
				`\bviola(?:ra?|m)?\b.{0,20}(?:o |os )?direitos?`,
				`em prejuizo.{0,20}(?:de |dos )?direitos?`,
			},
		},
		{
			ID:       "PREJUDICA_DIREITO",
			Name:     "Prejuízo a direito garantido",
			Severity: SeverityMedium,
			Citation: "Código Civil Art. 187",
			Description: "⚠️ CLÁUSULA QUE PREJUDICA DIREITO GARANTIDO",
			Detail:      "Cláusula redigida para limitar ou esvaziar direito garantido por lei.",
			Remedy:      "Negocie a preservação integral do direito afetado.",
			Patterns: []string{
				`prejudica.{0,30}direitos?`,
				`limita.{0,20}(?:o exercicio d[eo]s? )?direitos?`,
				`impede o exercicio.{0,20}(?:de |do )?direitos?`,
			},
		},
		{
			ID:       "RISCO_EXCESSIVO",
			Name:     "Assunção de risco excessivo",
			Severity: SeverityMedium,
			Citation: "Código Civil Art. 157",
			Description: "⚠️ ASSUNÇÃO DE RISCO EXCESSIVO",
			Detail:      "Transferência integral dos riscos do negócio a uma das partes caracteriza lesão.",
			Remedy:      "Negocie a repartição equilibrada dos riscos.",
			Patterns: []string{
				`assume.{0,30}(?:todos os |integralmente os )?riscos`,
				`risco excessivo`,
				`por sua conta e risco.{0,40}(?:integral|exclusiv)`,
			},
		},
		{
			ID:       "SALARIO_EXTREMO_BAIXO",
			Name:     "Contraprestação vil",
			Severity: SeverityCritical,
			Citation: "Constituição Federal Art. 7º IV + Código Penal Art. 149",
			Description: "🚨🚨 CONTRAPRESTAÇÃO VIL - INDÍCIO DE TRABALHO ANÁLOGO À ESCRAVIDÃO!",
			Detail:      "Pagamento mensal de algumas centenas de reais por trabalho em regime integral é indício de condição análoga à de escravo, em qualquer tipo de instrumento.",
			Remedy:      "Denuncie ao Ministério Público do Trabalho pelo canal de denúncias.",
			Patterns: []string{
				`r\$ ?[1-3]\d{2}(?:[.,]00)? (?:mensais|por mes|ao mes)`,
				`(?:trezentos|duzentos|cem) reais (?:mensais|por mes|ao mes)`,
			},
		},
	}
}
