// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Service invoice (NFS-e) rules. These target the textual rendering of an
// invoice, so dates, amounts and status markers are matched as printed text.

var invoiceClasses = []DocumentClass{ClassInvoice}

func invoiceRules() []Rule {
	return []Rule{
		{
			ID:        "NOTA_FISCAL_PRESENTE",
			Name:      "Nota fiscal identificada",
			AppliesTo: invoiceClasses,
			Severity:  SeverityInfo,
			Citation:  "Lei Complementar 116/2003",
			Description: "ℹ️ NOTA FISCAL DE SERVIÇO IDENTIFICADA",
			Detail:      "Documento reconhecido como nota fiscal de serviço; verificações fiscais específicas foram aplicadas.",
			Remedy:      "Confira o documento no portal da prefeitura emissora usando o código de verificação.",
			Patterns: []string{
				`nota fiscal (?:de servicos?|eletronica)`,
				`\bnfs-?e\b`,
				`\bnf-?e\b`,
			},
		},
		{
			ID:        "NF_DATA_FUTURA",
			Name:      "Data de emissão futura",
			AppliesTo: invoiceClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.137/1990 Art. 1º: Fraude fiscal",
			Description: "🚨🚨 NOTA FISCAL COM DATA FUTURA - FRAUDE!",
			Detail:      "Nota emitida com data posterior à real configura adulteração de documento fiscal.",
			Remedy:      "Recuse a nota e exija reemissão com a data correta; guarde evidências.",
			Patterns: []string{
				`data.{0,30}emissao.{0,30}futura`,
				`emitida.{0,30}(?:com )?data futura`,
				`emissao.{0,20}(?:em |no ano de )?20(?:2[7-9]|[3-9]\d)`,
			},
		},
		{
			ID:        "NF_DATA_RETROATIVA",
			Name:      "Emissão retroativa",
			AppliesTo: invoiceClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.137/1990 Art. 1º",
			Description: "🚨 NOTA FISCAL RETROATIVA - FRAUDE!",
			Detail:      "Emissão retroativa para encobrir a competência real do serviço é crime contra a ordem tributária.",
			Remedy:      "Recuse a nota retroativa e exija emissão na competência correta.",
			Patterns: []string{
				`emissao retroativa`,
				`emitida retroativamente`,
				`data.{0,30}retroativa`,
			},
		},
		{
			ID:        "NF_CANCELADA",
			Name:      "Nota fiscal cancelada",
			AppliesTo: invoiceClasses,
			Severity:  SeverityCritical,
			Citation:  "Legislação municipal do ISS",
			Description: "🚨 NOTA FISCAL CANCELADA EM USO - FRAUDE!",
			Detail:      "Uma nota cancelada não tem validade fiscal; apresentá-la como comprovante é fraude.",
			Remedy:      "Exija nota fiscal válida e confirme o status no portal da prefeitura.",
			Patterns: []string{
				`nota.{0,30}cancelada`,
				`\bnfs-?e cancelada`,
				`status.{0,20}cancelad`,
				`documento cancelado`,
			},
		},
		{
			ID:        "NF_CANCELAMENTO_FORA_PRAZO",
			Name:      "Cancelamento fora do prazo",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ CANCELAMENTO FORA DO PRAZO LEGAL",
			Detail:      "O cancelamento de NFS-e tem prazo regulamentar; cancelamentos tardios exigem processo administrativo.",
			Remedy:      "Verifique junto à prefeitura se o cancelamento foi homologado.",
			Patterns: []string{
				`cancelamento.{0,40}fora do prazo`,
				`cancelad.{0,40}apos o prazo`,
			},
		},
		{
			ID:        "NF_EMITENTE_IRREGULAR",
			Name:      "Emitente em situação irregular",
			AppliesTo: invoiceClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei Complementar 116/2003",
			Description: "🚨 EMITENTE EM SITUAÇÃO IRREGULAR!",
			Detail:      "CNPJ baixado, inapto ou suspenso não pode emitir nota fiscal válida.",
			Remedy:      "Consulte a situação cadastral do CNPJ antes de aceitar o documento.",
			Patterns: []string{
				`cnpj.{0,30}(?:baixado|inapto|suspenso|irregular)`,
				`situacao cadastral.{0,30}(?:baixada|inapta|suspensa|irregular)`,
				`emitente.{0,30}irregular`,
			},
		},
		{
			ID:        "NF_EMITENTE_DIVERGENTE",
			Name:      "Emitente divergente do prestador",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003",
			Description: "⚠️ EMITENTE DIVERGE DO PRESTADOR CONTRATADO",
			Detail:      "A nota deve ser emitida pelo CNPJ que efetivamente prestou o serviço; emissão cruzada entre empresas é irregular.",
			Remedy:      "Exija nota emitida pelo prestador contratado.",
			Patterns: []string{
				`emitente.{0,40}(?:divergente|diferente).{0,30}prestador`,
				`cnpj.{0,30}divergente`,
				`emitida por (?:empresa|cnpj) divers[oa]`,
			},
		},
		{
			ID:        "NF_VALOR_ZERO",
			Name:      "Valor do serviço zerado",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003 Art. 7º",
			Description: "⚠️ NOTA FISCAL COM VALOR ZERADO",
			Detail:      "Valor de serviço igual a zero em nota de serviço efetivamente prestado indica omissão de receita.",
			Remedy:      "Exija nota com o valor real do serviço.",
			Patterns: []string{
				`valor.{0,30}(?:do servico|total).{0,20}(?:de )?r\$ ?0[.,]00`,
				`valor.{0,20}zerado`,
				`r\$ ?0[.,]00.{0,30}(?:valor )?(?:do )?servico`,
			},
		},
		{
			ID:        "NF_VALOR_DIVERGENTE",
			Name:      "Valor divergente do contratado",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.137/1990",
			Description: "⚠️ VALOR DA NOTA DIVERGE DO CONTRATADO",
			Detail:      "Nota com valor inferior ao efetivamente pago (meia-nota) é sonegação fiscal.",
			Remedy:      "Exija nota pelo valor integral da operação.",
			Patterns: []string{
				`valor.{0,40}(?:divergente|inferior).{0,30}(?:ao )?(?:contratado|pago|acordado)`,
				`meia[- ]nota`,
				`nota.{0,30}valor parcial`,
			},
		},
		{
			ID:        "NF_BASE_CALCULO_ZERO",
			Name:      "Base de cálculo zerada",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003 Art. 7º",
			Description: "⚠️ BASE DE CÁLCULO DO ISS ZERADA",
			Detail:      "Base de cálculo zerada com serviço de valor positivo elimina o ISS devido indevidamente.",
			Remedy:      "Exija base de cálculo compatível com o valor do serviço.",
			Patterns: []string{
				`base de calculo.{0,30}(?:de )?r\$ ?0[.,]00`,
				`base de calculo.{0,20}zerada`,
				`base de calculo.{0,20}zero`,
			},
		},
		{
			ID:        "NF_ALIQUOTA_ILEGAL",
			Name:      "Alíquota de ISS fora da faixa legal",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003 Art. 8º e 8º-A: ISS entre 2% e 5%",
			Description: "⚠️ ALÍQUOTA DE ISS FORA DA FAIXA LEGAL",
			Detail:      "A alíquota do ISS varia de 2% a 5%; valores fora dessa faixa são ilegais.",
			Remedy:      "Confirme a alíquota correta na legislação do município de incidência.",
			Patterns: []string{
				`aliquota.{0,30}\b(?:0|1|1[.,]5)%`,
				`aliquota.{0,30}\b(?:[6-9]|1\d)(?:[.,]\d+)?%`,
				`\biss\b.{0,30}\b(?:0|1)%`,
				`\biss\b.{0,30}\b(?:[6-9]|1\d)%`,
			},
		},
		{
			ID:        "NF_ISS_NAO_RECOLHIDO",
			Name:      "ISS não recolhido",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003",
			Description: "⚠️ ISS NÃO RECOLHIDO",
			Detail:      "Nota emitida sem destaque ou recolhimento do ISS devido.",
			Remedy:      "Verifique a guia de recolhimento correspondente à nota.",
			Patterns: []string{
				`\biss\b.{0,30}nao recolhido`,
				`sem recolhimento.{0,20}(?:de |do )?iss\b`,
				`\biss\b.{0,30}(?:pendente|em aberto)`,
			},
		},
		{
			ID:        "NF_ISS_MUNICIPIO_ERRADO",
			Name:      "ISS recolhido no município errado",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003 Art. 3º",
			Description: "⚠️ ISS RECOLHIDO NO MUNICÍPIO ERRADO",
			Detail:      "O ISS é devido, em regra, no município do estabelecimento prestador; recolher em município de alíquota menor é guerra fiscal ilegal.",
			Remedy:      "Confirme o município de incidência correto para o tipo de serviço.",
			Patterns: []string{
				`\biss\b.{0,40}municipio.{0,30}(?:errado|diverso|divergente)`,
				`recolhido.{0,30}(?:em )?outro municipio`,
				`municipio.{0,30}(?:de )?incidencia.{0,30}divergente`,
			},
		},
		{
			ID:        "NF_DESCRICAO_INSUFICIENTE",
			Name:      "Descrição do serviço insuficiente",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ DESCRIÇÃO DO SERVIÇO INSUFICIENTE",
			Detail:      "A descrição deve permitir identificar o serviço prestado; descrições vazias impedem a verificação fiscal.",
			Remedy:      "Exija descrição detalhada do serviço na nota.",
			Patterns: []string{
				`descricao.{0,30}(?:do servico )?(?:vazia|ausente|em branco)`,
				`sem descricao.{0,20}(?:do |de )?servico`,
			},
		},
		{
			ID:        "NF_DESCRICAO_GENERICA",
			Name:      "Descrição genérica do serviço",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ DESCRIÇÃO GENÉRICA DO SERVIÇO",
			Detail:      "Descrições como 'serviços diversos' ou 'serviços prestados' não identificam a operação.",
			Remedy:      "Exija a especificação do serviço efetivamente prestado.",
			Patterns: []string{
				`servicos diversos`,
				`descricao.{0,10}servicos prestados\b`,
				`descricao generica`,
			},
		},
		{
			ID:        "NF_CODIGO_SERVICO_INCORRETO",
			Name:      "Código de serviço incorreto",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei Complementar 116/2003 Lista anexa",
			Description: "⚠️ CÓDIGO DE SERVIÇO INCOMPATÍVEL",
			Detail:      "Código de serviço incompatível com a descrição costuma visar alíquota menor.",
			Remedy:      "Confira o item da lista da LC 116 correspondente ao serviço.",
			Patterns: []string{
				`codigo (?:de |do )?servico.{0,40}(?:incorreto|incompativel|divergente)`,
				`item.{0,20}(?:da )?lista.{0,30}(?:incorreto|incompativel)`,
			},
		},
		{
			ID:        "NF_NUMERO_DUPLICADO",
			Name:      "Numeração duplicada",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.137/1990",
			Description: "⚠️ NUMERAÇÃO DE NOTA DUPLICADA",
			Detail:      "Duas notas com o mesmo número indicam nota calçada ou paralela.",
			Remedy:      "Confronte a numeração no portal da prefeitura emissora.",
			Patterns: []string{
				`numero.{0,30}duplicad`,
				`numeracao.{0,30}(?:duplicada|repetida)`,
				`nota calcada`,
			},
		},
		{
			ID:        "NF_NAO_VERIFICADA",
			Name:      "Nota sem verificação no portal",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ NOTA NÃO LOCALIZADA NO PORTAL",
			Detail:      "Nota que não consta no portal da prefeitura pode ser falsa.",
			Remedy:      "Valide o código de verificação no portal da prefeitura emissora.",
			Patterns: []string{
				`nao (?:localizada|encontrada|consta).{0,30}(?:no )?portal`,
				`codigo de verificacao.{0,30}invalido`,
				`nota nao verificada`,
			},
		},
		{
			ID:        "NF_EMISSAO_MANUAL",
			Name:      "Emissão manual onde a eletrônica é obrigatória",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ NOTA MANUAL ONDE A ELETRÔNICA É OBRIGATÓRIA",
			Detail:      "Municípios com NFS-e obrigatória não aceitam talão manual como documento fiscal.",
			Remedy:      "Exija a NFS-e eletrônica correspondente.",
			Patterns: []string{
				`nota.{0,20}manual`,
				`talao.{0,20}(?:de )?notas?`,
				`recibo.{0,30}(?:no lugar|em vez|substituindo).{0,20}(?:de |da )?nota`,
			},
		},
		{
			ID:        "NF_SEM_AUTENTICACAO",
			Name:      "Nota sem código de autenticação",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ NOTA SEM CÓDIGO DE AUTENTICAÇÃO",
			Detail:      "NFS-e válida carrega código de verificação; a ausência impede a conferência.",
			Remedy:      "Exija via com código de verificação legível.",
			Patterns: []string{
				`sem codigo de (?:verificacao|autenticacao)`,
				`codigo de verificacao.{0,20}ausente`,
			},
		},
		{
			ID:        "NF_EMITENTE_DEBITO_FISCAL",
			Name:      "Emitente com débitos fiscais",
			AppliesTo: invoiceClasses,
			Severity:  SeverityLow,
			Citation:  "Código Tributário Nacional",
			Description: "ℹ️ EMITENTE COM DÉBITOS FISCAIS",
			Detail:      "Débitos do emitente não invalidam a nota, mas elevam o risco da contratação.",
			Remedy:      "Considere exigir certidões negativas do prestador.",
			Patterns: []string{
				`debitos? (?:fiscais|tributarios)`,
				`pendencias? fisca(?:l|is)`,
				`divida ativa`,
			},
		},
		{
			ID:        "NF_INSCRICAO_CANCELADA",
			Name:      "Inscrição municipal cancelada",
			AppliesTo: invoiceClasses,
			Severity:  SeverityHigh,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ INSCRIÇÃO MUNICIPAL CANCELADA",
			Detail:      "Prestador com inscrição municipal cancelada não está habilitado a emitir NFS-e.",
			Remedy:      "Consulte a inscrição municipal do prestador antes de aceitar a nota.",
			Patterns: []string{
				`inscricao municipal.{0,30}(?:cancelada|baixada|suspensa)`,
				`\bim\b[: ]{0,3}cancelada`,
			},
		},
		{
			ID:        "NF_COMPETENCIA_INCORRETA",
			Name:      "Competência incorreta",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Legislação municipal do ISS",
			Description: "⚠️ COMPETÊNCIA DIVERGENTE DA PRESTAÇÃO",
			Detail:      "A competência da nota deve corresponder ao mês da prestação do serviço.",
			Remedy:      "Exija correção da competência para o mês da prestação.",
			Patterns: []string{
				`competencia.{0,30}(?:incorreta|divergente|errada)`,
				`competencia.{0,40}(?:diversa|diferente).{0,30}prestacao`,
			},
		},
		{
			ID:        "NF_RETENCAO_INDEVIDA",
			Name:      "Retenção de ISS indevida",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Lei Complementar 116/2003 Art. 6º",
			Description: "⚠️ RETENÇÃO DE ISS INDEVIDA",
			Detail:      "Retenção na fonte só cabe nas hipóteses legais; reter fora delas gera bitributação.",
			Remedy:      "Confirme se o serviço está entre as hipóteses de retenção obrigatória.",
			Patterns: []string{
				`retencao.{0,30}(?:de |do )?iss\b.{0,30}indevida`,
				`retencao indevida`,
				`retido indevidamente`,
			},
		},
		{
			ID:        "NF_ALIQUOTA_RETENCAO_ERRADA",
			Name:      "Alíquota de retenção incorreta",
			AppliesTo: invoiceClasses,
			Severity:  SeverityMedium,
			Citation:  "Lei Complementar 116/2003",
			Description: "⚠️ ALÍQUOTA DE RETENÇÃO INCORRETA",
			Detail:      "A alíquota retida deve ser a do município de incidência; divergências geram recolhimento a menor ou a maior.",
			Remedy:      "Recalcule a retenção com a alíquota do município de incidência.",
			Patterns: []string{
				`aliquota.{0,30}(?:de )?retencao.{0,30}(?:incorreta|errada|divergente)`,
				`retencao.{0,30}aliquota.{0,20}(?:incorreta|errada)`,
			},
		},
	}
}
