// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Lease contract rules. Most apply to residential and commercial leases
// alike; the handful that only make sense for one of them narrow AppliesTo.

var leaseClasses = []DocumentClass{ClassResidentialLease, ClassCommercialLease}

func leaseRules() []Rule {
	return []Rule{
		{
			ID:        "MULTA_ACIMA_2_MESES",
			Name:      "Multa rescisória acima de 2 meses",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 4º: Máximo 2 meses de multa",
			Description: "🚨 MULTA RESCISÓRIA ACIMA DO PERMITIDO - ILEGAL!",
			Detail:      "A multa por rescisão antecipada é limitada a 2 aluguéis e deve ser proporcional ao período restante do contrato.",
			Remedy:      "Exija a redução da multa para no máximo 2 aluguéis, com proporcionalidade ao tempo cumprido.",
			Patterns: []string{
				`multa.{0,60}\b(?:[4-9]|1[01]) (?:meses|alugueis)`,
				`multa.{0,60}(?:superior|acima|excedente|maior).{0,20}(?:a |de )?2 (?:meses|alugueis)`,
				`multa.{0,40}\b(?:quatro|cinco|seis|oito|dez) (?:meses|alugueis)`,
				`penalidade.{0,40}\b(?:[4-9]|1[01]) (?:meses|alugueis)`,
			},
		},
		{
			ID:        "MULTA_12_MESES",
			Name:      "Multa rescisória de 12 meses",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 4º",
			Description: "🚨🚨 MULTA RESCISÓRIA DE 12 MESES - ABSURDO ILEGAL!",
			Detail:      "Multa equivalente a um ano de aluguel é seis vezes o teto legal e configura abuso manifesto.",
			Remedy:      "Recuse a cláusula; o teto legal é de 2 aluguéis proporcionais.",
			Patterns: []string{
				`multa.{0,60}\b12 (?:meses|alugueis)`,
				`multa.{0,60}\bdoze (?:meses|alugueis)`,
				`multa.{0,40}um ano de aluguel`,
			},
		},
		{
			ID:        "MULTA_SEM_PROPORCIONALIDADE",
			Name:      "Multa sem proporcionalidade",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 4º + Código Civil Art. 413",
			Description: "⚠️ MULTA SEM PROPORCIONALIDADE - ABUSIVA",
			Detail:      "A multa rescisória deve ser reduzida proporcionalmente ao período já cumprido do contrato.",
			Remedy:      "Exija cláusula expressa de proporcionalidade da multa.",
			Patterns: []string{
				`multa.{0,40}integral.{0,40}independente`,
				`multa.{0,60}sem (?:reducao|proporcionalidade|abatimento)`,
				`multa.{0,40}integral.{0,40}qualquer (?:tempo|momento|periodo)`,
			},
		},
		{
			ID:        "CAUCAO_ACIMA_1_MES",
			Name:      "Caução acima de 1 mês",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 37 e 38: Caução superior a 1 aluguel é abusiva",
			Description: "🚨 CAUÇÃO ABUSIVA - ILEGAL!",
			Detail:      "Caução acima de 1 mês de aluguel onera o inquilino além do razoável; exigências de 2, 3 ou 6 meses de depósito são abusivas.",
			Remedy:      "Exija caução de no máximo 1 aluguel depositada em caderneta de poupança.",
			Patterns: []string{
				`caucao.{0,50}\b(?:[2-9]|1[0-2]) (?:meses|alugueis)`,
				`deposito.{0,40}\b(?:[2-9]|1[0-2]) (?:meses|alugueis)`,
				`caucao.{0,40}\b(?:dois|tres|seis|oito|dez|doze) (?:meses|alugueis)`,
				`caucao.{0,40}(?:superior|acima|maior).{0,20}(?:a |de )?(?:um|1) mes\b`,
			},
		},
		{
			ID:        "GARANTIAS_CUMULADAS",
			Name:      "Garantias cumuladas",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 37 parágrafo único: Vedada mais de uma garantia",
			Description: "🚨 GARANTIAS CUMULADAS - ILEGAL!",
			Detail:      "É vedado exigir mais de uma modalidade de garantia no mesmo contrato (caução + fiador, fiador + seguro fiança etc.).",
			Remedy:      "Exija a escolha de uma única modalidade de garantia.",
			Patterns: []string{
				`caucao.{0,80}fiador`,
				`fiador.{0,80}caucao`,
				`caucao.{0,80}seguro[- ]fianca`,
				`fiador.{0,80}seguro[- ]fianca`,
				`seguro[- ]fianca.{0,80}(?:caucao|fiador)`,
			},
		},
		{
			ID:        "PAGAMENTO_ANTECIPADO",
			Name:      "Aluguel antecipado com garantia",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 42",
			Description: "⚠️ ALUGUEL ANTECIPADO COM GARANTIA - ILEGAL",
			Detail:      "Havendo garantia no contrato, o locador não pode exigir o pagamento antecipado do aluguel.",
			Remedy:      "Exija pagamento do aluguel no mês vencido quando houver garantia contratada.",
			Patterns: []string{
				`aluguel.{0,40}antecipad.{0,80}(?:caucao|fiador|garantia)`,
				`(?:caucao|fiador|garantia).{0,80}aluguel.{0,30}antecipad`,
				`pagamento antecipado.{0,40}(?:do )?aluguel`,
			},
		},
		{
			ID:        "REAJUSTE_INFRA_ANUAL",
			Name:      "Reajuste em período inferior a 1 ano",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 10.192/2001 Art. 2º: Reajuste mínimo anual",
			Description: "🚨 REAJUSTE EM PERÍODO INFERIOR A 1 ANO - ILEGAL!",
			Detail:      "A periodicidade mínima de reajuste de aluguel é de 12 meses; reajustes trimestrais ou semestrais são nulos.",
			Remedy:      "Exija periodicidade anual de reajuste.",
			Patterns: []string{
				`reajust.{0,40}(?:a cada )?(?:tr(?:es|imestral)|semestr|mensal)`,
				`reajust.{0,40}\b(?:[1-9]|1[01]) meses`,
				`reajust.{0,40}\b(?:tres|seis) meses`,
			},
		},
		{
			ID:        "REAJUSTE_SEM_INDICE",
			Name:      "Reajuste sem índice definido",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 + Lei 10.192/2001",
			Description: "⚠️ REAJUSTE SEM ÍNDICE OFICIAL - ABUSIVO",
			Detail:      "Reajuste a critério exclusivo do locador, sem índice oficial (IGP-M, IPCA), deixa o inquilino sem previsibilidade.",
			Remedy:      "Exija a vinculação do reajuste a um índice oficial de inflação.",
			Patterns: []string{
				`reajust.{0,50}(?:a )?criterio.{0,20}(?:exclusivo )?(?:do )?locador`,
				`reajust.{0,40}sem indice`,
				`reajust.{0,40}livre(?:mente)?`,
			},
		},
		{
			ID:        "REAJUSTE_DOLAR",
			Name:      "Reajuste atrelado ao dólar",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 10.192/2001 Art. 1º: Vedada indexação cambial",
			Description: "🚨 REAJUSTE ATRELADO AO DÓLAR - ILEGAL!",
			Detail:      "Contratos internos não podem ser indexados a moeda estrangeira.",
			Remedy:      "Exija índice oficial nacional no lugar da variação cambial.",
			Patterns: []string{
				`reajust.{0,50}(?:pelo |pela |ao )?dolar`,
				`reajust.{0,50}variacao cambial`,
				`aluguel.{0,40}(?:em|ao) dolar`,
				`indexad.{0,30}(?:ao )?dolar`,
			},
		},
		{
			ID:        "AUMENTO_FIXO_ANUAL",
			Name:      "Aumento percentual fixo",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 10.192/2001",
			Description: "⚠️ AUMENTO PERCENTUAL FIXO ACIMA DA INFLAÇÃO - ABUSIVO",
			Detail:      "Percentual fixo elevado (15%, 20% ao ano) desvinculado de índice oficial onera o inquilino além da inflação.",
			Remedy:      "Exija a substituição do percentual fixo por índice oficial.",
			Patterns: []string{
				`(?:aumento|reajuste).{0,40}\b(?:1[5-9]|[2-9]\d)% ao ano`,
				`(?:aumento|reajuste).{0,30}fixo.{0,20}\b(?:1[5-9]|[2-9]\d)%`,
			},
		},
		{
			ID:        "INGRESSO_LIVRE_IMOVEL",
			Name:      "Ingresso livre no imóvel",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Constituição Federal Art. 5º XI + Lei 8.245/1991 Art. 23 IX",
			Description: "🚨🚨 INGRESSO LIVRE NO IMÓVEL - VIOLAÇÃO DE DOMICÍLIO!",
			Detail:      "O locador não pode entrar no imóvel sem consentimento do inquilino; a casa é asilo inviolável.",
			Remedy:      "Exija a supressão da cláusula; visitas somente mediante combinação prévia.",
			Patterns: []string{
				`(?:ingressar|entrar|adentrar).{0,40}imovel.{0,60}(?:sem|independente).{0,30}(?:autorizacao|consentimento|aviso)`,
				`livre acesso.{0,30}(?:ao )?imovel`,
				`(?:locador|proprietario).{0,40}(?:podera|pode).{0,30}entrar.{0,40}qualquer (?:hora|momento|tempo)`,
				`acesso.{0,30}imovel.{0,40}qualquer (?:hora|momento|tempo)`,
			},
		},
		{
			ID:        "VISITA_SEM_AVISO",
			Name:      "Vistoria sem aviso prévio",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 23 IX",
			Description: "⚠️ VISTORIA SEM AVISO PRÉVIO - ABUSIVA",
			Detail:      "Vistorias são legítimas, mas dependem de combinação prévia com o inquilino.",
			Remedy:      "Exija aviso prévio mínimo de 24 horas para qualquer vistoria.",
			Patterns: []string{
				`vistoria.{0,40}sem (?:aviso|comunicacao)( previ[oa])?`,
				`visita.{0,40}sem (?:aviso|agendamento)( previo)?`,
				`inspecao.{0,40}sem (?:aviso|notificacao)( previ[oa])?`,
			},
		},
		{
			ID:        "RENUNCIA_BENFEITORIAS",
			Name:      "Renúncia a benfeitorias necessárias",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 35",
			Description: "⚠️ RENÚNCIA A BENFEITORIAS NECESSÁRIAS - ABUSIVA",
			Detail:      "Benfeitorias necessárias feitas pelo inquilino são indenizáveis; renúncia genérica e antecipada é questionável.",
			Remedy:      "Exija a previsão de indenização das benfeitorias necessárias.",
			Patterns: []string{
				`renuncia.{0,50}benfeitorias`,
				`benfeitorias.{0,50}(?:sem|nao).{0,20}(?:indenizacao|indenizadas|ressarcimento)`,
				`benfeitorias.{0,40}incorporadas.{0,30}sem.{0,20}indenizacao`,
			},
		},
		{
			ID:        "RESPONSABILIDADE_ESTRUTURAL",
			Name:      "Reparos estruturais por conta do inquilino",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 22: Reparos estruturais cabem ao locador",
			Description: "🚨 REPAROS ESTRUTURAIS TRANSFERIDOS AO INQUILINO - ILEGAL!",
			Detail:      "Estrutura, telhado, fundação e instalações são responsabilidade do locador; ao inquilino cabem apenas os reparos de uso.",
			Remedy:      "Exija a supressão da cláusula; problemas estruturais são do proprietário.",
			Patterns: []string{
				`(?:locatario|inquilino).{0,60}(?:reparos?|manutencao).{0,30}estruturais?`,
				`(?:telhado|fundacao|estrutura).{0,60}(?:conta|responsabilidade|cargo).{0,20}(?:do )?(?:locatario|inquilino)`,
				`(?:locatario|inquilino).{0,40}respons.{0,40}(?:telhado|fundacao|estrutura)`,
			},
		},
		{
			ID:        "VICIOS_CONSTRUCAO_LOCATARIO",
			Name:      "Vícios de construção por conta do inquilino",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 22 + Código Civil Art. 441",
			Description: "🚨 VÍCIOS DE CONSTRUÇÃO TRANSFERIDOS AO INQUILINO - ILEGAL!",
			Detail:      "Defeitos anteriores à locação e vícios de construção são do locador, mesmo os ocultos.",
			Remedy:      "Exija a supressão da cláusula e vistoria de entrada documentada.",
			Patterns: []string{
				`vicios?.{0,30}(?:de )?construcao.{0,60}(?:locatario|inquilino)`,
				`(?:locatario|inquilino).{0,40}respons.{0,40}vicios?.{0,30}(?:ocultos?|anteriores)`,
				`defeitos.{0,30}(?:preexistentes|anteriores).{0,50}(?:locatario|inquilino)`,
			},
		},
		{
			ID:        "PROIBICAO_ANIMAIS",
			Name:      "Proibição genérica de animais",
			AppliesTo: []DocumentClass{ClassResidentialLease},
			Severity:  SeverityMedium,
			Citation:  "Jurisprudência STJ",
			Description: "⚠️ PROIBIÇÃO GENÉRICA DE ANIMAIS - QUESTIONÁVEL",
			Detail:      "A jurisprudência considera abusiva a proibição genérica de animais que não causam dano ou incômodo.",
			Remedy:      "Negocie a permissão para animais de pequeno porte.",
			Patterns: []string{
				`proibid.{0,30}(?:animais|animal de estimacao|pets?)\b`,
				`vedad.{0,30}(?:a )?(?:permanencia|presenca).{0,20}(?:de )?animais`,
			},
		},
		{
			ID:        "RESCISAO_POR_VENDA",
			Name:      "Rescisão imediata por venda",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 8º: Denúncia exige 90 dias",
			Description: "⚠️ RESCISÃO IMEDIATA POR VENDA - ILEGAL",
			Detail:      "Na venda do imóvel o comprador deve conceder 90 dias para desocupação; despejo imediato é ilegal.",
			Remedy:      "Exija o prazo legal de 90 dias em caso de alienação.",
			Patterns: []string{
				`venda.{0,40}(?:do )?imovel.{0,50}(?:rescisao|desocupacao).{0,20}imediata`,
				`(?:rescisao|desocupacao) imediata.{0,40}(?:em caso de |na )?venda`,
				`alienacao.{0,40}desocupacao.{0,30}(?:em )?(?:\d|1[0-9]|2[0-9]) dias`,
			},
		},
		{
			ID:        "DESOCUPACAO_PRAZO_CURTO",
			Name:      "Prazo de desocupação exíguo",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 46",
			Description: "⚠️ PRAZO DE DESOCUPAÇÃO EXÍGUO - ABUSIVO",
			Detail:      "Desocupação em 24 ou 48 horas é incompatível com os prazos mínimos da lei do inquilinato.",
			Remedy:      "Exija prazo de desocupação de no mínimo 30 dias.",
			Patterns: []string{
				`desocupa.{0,40}\b(?:24|48|72) horas`,
				`desocupa.{0,40}\b(?:[1-9]|1[0-4]) dias`,
				`desocupacao imediata`,
			},
		},
		{
			ID:        "DESPEJO_EXTRAJUDICIAL",
			Name:      "Despejo sem ordem judicial",
			AppliesTo: leaseClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.245/1991 Art. 5º: Despejo exige ação judicial",
			Description: "🚨🚨 DESPEJO SEM ORDEM JUDICIAL - ILEGAL!",
			Detail:      "Retirada forçada do inquilino, troca de fechadura ou remoção de pertences sem ação de despejo é exercício arbitrário das próprias razões.",
			Remedy:      "Exija a supressão da cláusula; despejo somente por via judicial.",
			Patterns: []string{
				`despejo.{0,40}sem.{0,20}(?:ordem|acao|processo) judicial`,
				`(?:trocar|substituir).{0,20}fechadura`,
				`remo(?:ver|cao).{0,30}(?:os )?pertences`,
				`retirada forcada.{0,30}(?:do )?(?:locatario|inquilino)`,
			},
		},
		{
			ID:        "MULTA_DIARIA_EXCESSIVA",
			Name:      "Multa diária excessiva",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Código Civil Art. 412 e 413",
			Description: "⚠️ MULTA DIÁRIA EXCESSIVA - ABUSIVA",
			Detail:      "Multa moratória diária que rapidamente supera o valor do próprio aluguel é desproporcional e deve ser reduzida.",
			Remedy:      "Exija multa moratória limitada e juros legais.",
			Patterns: []string{
				`multa.{0,30}\b(?:[1-9]\d?)% (?:ao|por) dia`,
				`multa diaria.{0,40}r\$ ?\d`,
				`juros.{0,30}\b(?:[1-9]\d?)% ao dia`,
			},
		},
		{
			ID:        "IR_LOCADOR_PAGO_LOCATARIO",
			Name:      "Imposto de renda do locador pago pelo inquilino",
			AppliesTo: leaseClasses,
			Severity:  SeverityHigh,
			Citation:  "Lei 8.245/1991 Art. 22 VIII + Art. 25",
			Description: "⚠️ TRIBUTO DO LOCADOR TRANSFERIDO AO INQUILINO - ABUSIVO",
			Detail:      "O imposto de renda sobre o aluguel é obrigação pessoal do locador e não pode ser repassado.",
			Remedy:      "Exija a supressão da cláusula de repasse tributário.",
			Patterns: []string{
				`imposto de renda.{0,50}(?:pago|arcado|suportado).{0,30}(?:pelo )?(?:locatario|inquilino)`,
				`(?:locatario|inquilino).{0,40}(?:pagara|arcara).{0,40}imposto de renda`,
				`ir.{0,20}(?:do|sobre o) aluguel.{0,40}(?:locatario|inquilino)`,
			},
		},
	}
}
