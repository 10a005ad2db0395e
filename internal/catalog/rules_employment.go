// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Employment contract rules. Patterns are written against normalized text
// (lowercase, diacritics folded, whitespace collapsed), with bounded gaps
// between keywords to tolerate filler words and reordering.

var employmentClasses = []DocumentClass{ClassEmployment}

func employmentRules() []Rule {
	return []Rule{
		{
			ID:        "SALARIO_ABAIXO_MINIMO",
			Name:      "Salário abaixo do mínimo",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Constituição Federal Art. 7º IV",
			Description: "🚨🚨🚨 SALÁRIO ABAIXO DO MÍNIMO - TRABALHO ESCRAVO!",
			Detail:      "Nenhum trabalhador pode receber menos que o salário mínimo nacional. Valores como R$ 800 ou R$ 900 mensais são inconstitucionais.",
			Remedy:      "Exija remuneração igual ou superior ao salário mínimo vigente e denuncie a proposta ao Ministério do Trabalho.",
			Patterns: []string{
				`salario.{0,80}r\$ ?(?:[4-9]\d{2}|1[0-3]\d{2})(?:[.,]00)?\b`,
				`\b(?:novecentos|oitocentos|setecentos|seiscentos|quinhentos) reais`,
				`salario.{0,60}(?:inferior|abaixo|menor).{0,30}minimo`,
				`remuneracao.{0,50}(?:inferior|abaixo).{0,30}minimo`,
			},
		},
		{
			ID:        "SALARIO_SEM_GARANTIA",
			Name:      "Salário sem garantia mínima",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Constituição Federal Art. 7º VII + CLT Art. 458",
			Description: "🚨 SALÁRIO SEM GARANTIA MÍNIMA - ILEGAL!",
			Detail:      "A remuneração deve ter uma parcela fixa nunca inferior ao mínimo; comissão pura sem garantia é vedada.",
			Remedy:      "Exija cláusula com salário fixo garantido de pelo menos um salário mínimo.",
			Patterns: []string{
				`salario.{0,40}apenas.{0,20}comiss(?:ao|oes)`,
				`remuneracao variavel.{0,40}sem.{0,20}garantia`,
				`comiss(?:ao|oes).{0,40}sem.{0,20}(?:parcela )?(?:fixa|fixo|garantia)`,
			},
		},
		{
			ID:        "JORNADA_12H",
			Name:      "Jornada diária excessiva",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 58: Máximo 8h diárias / 44h semanais",
			Description: "🚨🚨 JORNADA EXCESSIVA - ILEGAL!",
			Detail:      "Jornadas de 12 horas ou mais por dia ultrapassam em 50% o limite legal de 8 horas diárias.",
			Remedy:      "Exija jornada contratual de no máximo 8 horas diárias e 44 semanais, com horas extras pagas.",
			Patterns: []string{
				`jornada.{0,60}das? ?0?8[:h]00.{0,30}as? ?2[02][:h]00`,
				`0?8[:h]00.{0,20}(?:as|a) ?20[:h]00`,
				`\b1[2-6] horas diarias\b`,
				`jornada.{0,40}\b1[2-6] horas`,
				`\b(?:6[0-9]|7[0-2]) horas semanais`,
			},
		},
		{
			ID:        "JORNADA_ACIMA_8H",
			Name:      "Jornada acima de 8 horas",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 58",
			Description: "🚨 JORNADA ACIMA DE 8 HORAS DIÁRIAS - ILEGAL!",
			Detail:      "A jornada normal não pode exceder 8 horas diárias; o excedente é hora extra obrigatoriamente remunerada.",
			Remedy:      "Exija a limitação da jornada normal a 8 horas diárias.",
			Patterns: []string{
				`jornada.{0,40}(?:superior|acima).{0,20}(?:a |de )?8 horas`,
				`jornada.{0,30}(?:de )?(?:9|10|11) horas diarias`,
				`carga horaria.{0,30}excessiva`,
			},
		},
		{
			ID:        "JORNADA_SEMANAL_ACIMA_44H",
			Name:      "Jornada semanal acima de 44 horas",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 58",
			Description: "🚨 JORNADA SEMANAL ACIMA DE 44 HORAS - ILEGAL!",
			Detail:      "O limite semanal é de 44 horas; acima disso, somente com horas extras remuneradas.",
			Remedy:      "Exija jornada semanal de no máximo 44 horas.",
			Patterns: []string{
				`jornada semanal.{0,40}(?:superior|acima).{0,20}(?:a |de )?44`,
				`\b(?:4[5-9]|5[0-9]) horas semanais`,
			},
		},
		{
			ID:        "HORAS_EXTRAS_NAO_PAGAS",
			Name:      "Horas extras não remuneradas",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 59: Horas extras obrigatórias após 8h/dia",
			Description: "🚨🚨 SEM PAGAMENTO DE HORAS EXTRAS - ILEGAL!",
			Detail:      "Horas extras são direito do trabalhador e devem ser pagas; cláusula que as suprime é nula.",
			Remedy:      "Exija a supressão da cláusula e o pagamento de todas as horas extras trabalhadas.",
			Patterns: []string{
				`(?:nao havera|sem).{0,30}pagamento.{0,30}(?:de )?horas extras`,
				`horas extras.{0,30}(?:nao (?:serao )?remuneradas|gratuitas)`,
				`sem direito.{0,20}a? ?horas extras`,
			},
		},
		{
			ID:        "HORAS_EXTRAS_SEM_ADICIONAL",
			Name:      "Horas extras sem adicional",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 59: Adicional mínimo de 50%",
			Description: "🚨 HORAS EXTRAS SEM ADICIONAL - ILEGAL!",
			Detail:      "Horas extras exigem adicional mínimo de 50% sobre o valor da hora normal.",
			Remedy:      "Exija o adicional legal de no mínimo 50% sobre cada hora extra.",
			Patterns: []string{
				`horas extras.{0,30}sem adicional`,
				`adicional.{0,30}(?:de )?horas extras.{0,20}negado`,
				`horas extras.{0,40}valor da hora normal`,
			},
		},
		{
			ID:        "INTERVALO_INTERJORNADAS_INSUF",
			Name:      "Intervalo entre jornadas insuficiente",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 66: Mínimo 11 horas entre jornadas",
			Description: "🚨🚨 INTERVALO INTERJORNADA INSUFICIENTE - ILEGAL!",
			Detail:      "Entre duas jornadas de trabalho deve haver descanso mínimo de 11 horas consecutivas.",
			Remedy:      "Exija intervalo interjornadas de pelo menos 11 horas.",
			Patterns: []string{
				`2[23][:h]00.{0,50}(?:retornar|retorno).{0,30}0?6[:h]00`,
				`intervalo.{0,30}interjornadas?.{0,30}\b(?:[5-9]|10) horas`,
				`\b(?:[5-9]|10) horas (?:de )?descanso entre`,
				`descanso.{0,30}entre.{0,20}jornadas.{0,40}\b(?:[5-9]|10) horas`,
			},
		},
		{
			ID:        "INTERVALO_REFEICAO_INSUF",
			Name:      "Intervalo de refeição insuficiente",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 71: Mínimo 1 hora para jornada >6h",
			Description: "🚨 INTERVALO INSUFICIENTE PARA REFEIÇÃO - ILEGAL!",
			Detail:      "Jornadas acima de 6 horas exigem intervalo de no mínimo 1 hora para refeição e descanso.",
			Remedy:      "Exija intervalo intrajornada de pelo menos 1 hora.",
			Patterns: []string{
				`intervalo.{0,40}(?:refeicao|almoco).{0,30}(?:de )?(?:10|15|20|25|30|40|45) minutos`,
				`\b(?:10|15|20|30|45) minutos.{0,30}(?:para )?(?:refeicao|almoco)`,
				`intervalo.{0,30}inferior.{0,20}(?:a )?(?:1|uma) hora`,
			},
		},
		{
			ID:        "RENUNCIA_FGTS",
			Name:      "Renúncia ao FGTS",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.036/1990 Art. 15: FGTS é obrigatório",
			Description: "🚨🚨🚨 RENÚNCIA AO FGTS - CRIME!",
			Detail:      "O FGTS é direito irrenunciável; benefícios como vale cultura não o substituem e o depósito não pode ser descontado do empregado.",
			Remedy:      "Exija a supressão da cláusula e o depósito mensal regular do FGTS pelo empregador.",
			Patterns: []string{
				`renuncia.{0,40}(?:ao )?fgts`,
				`renuncia.{0,40}fundo de garantia`,
				`substituicao ao fgts`,
				`vale[- ]cultura.{0,60}fgts`,
				`fgts.{0,40}descontado.{0,30}folha`,
				`(?:nao tera|sem) fgts`,
			},
		},
		{
			ID:        "FGTS_OPCIONAL",
			Name:      "FGTS tratado como opcional",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Lei 8.036/1990",
			Description: "🚨🚨 FGTS TRATADO COMO OPCIONAL - CRIME!",
			Detail:      "O depósito do FGTS é obrigação legal do empregador; não pode ser facultativo.",
			Remedy:      "Exija o reconhecimento expresso da obrigatoriedade do FGTS.",
			Patterns: []string{
				`fgts.{0,30}(?:opcional|facultativo|nao (?:sera )?obrigatorio)`,
				`dispensa.{0,20}(?:de |do )?fgts`,
			},
		},
		{
			ID:        "RENUNCIA_FERIAS",
			Name:      "Renúncia a férias remuneradas",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 130: Férias são direito irrenunciável",
			Description: "🚨 RENÚNCIA A FÉRIAS REMUNERADAS - ILEGAL!",
			Detail:      "Férias anuais remuneradas são direito irrenunciável do trabalhador.",
			Remedy:      "Exija a supressão da cláusula de renúncia e a concessão anual das férias.",
			Patterns: []string{
				`renuncia.{0,40}(?:a |as )?ferias`,
				`ferias nao remuneradas`,
				`sem direito.{0,20}a? ?ferias`,
				`ferias.{0,20}renunciadas`,
			},
		},
		{
			ID:        "FERIAS_NAO_PAGAS",
			Name:      "Férias não pagas ou negadas",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 129 a 145",
			Description: "🚨 FÉRIAS NÃO PAGAS OU NEGADAS - ILEGAL!",
			Detail:      "Férias vencidas e não concedidas no prazo devem ser pagas em dobro.",
			Remedy:      "Exija o pagamento das férias vencidas com o acréscimo legal.",
			Patterns: []string{
				`ferias.{0,30}(?:vencidas|proporcionais).{0,30}(?:nao pagas|negadas)`,
				`ferias.{0,20}(?:acumuladas|nao pagas)`,
			},
		},
		{
			ID:        "DISCRIMINACAO_GRAVIDEZ",
			Name:      "Discriminação por gravidez",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 391-A + Lei 9.029/1995",
			Description: "🚨🚨 DISCRIMINAÇÃO POR GRAVIDEZ - CRIME!",
			Detail:      "A gestante tem estabilidade provisória garantida; rescisão motivada por gravidez é discriminatória e criminosa.",
			Remedy:      "Exija a supressão da cláusula; em caso de dispensa, procure a Justiça do Trabalho.",
			Patterns: []string{
				`gravidez.{0,50}(?:rescis|rescindido|demissao)`,
				`demissao.{0,30}(?:de )?gestante`,
				`gestante.{0,30}demissao`,
				`rescisao.{0,30}(?:por |em caso de )?gravidez`,
			},
		},
		{
			ID:        "CLAUSULA_DISCRIMINATORIA",
			Name:      "Cláusula discriminatória",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Constituição Federal Art. 3º + Lei 9.029/1995",
			Description: "🚨🚨 CLÁUSULA DISCRIMINATÓRIA - CRIME!",
			Detail:      "Discriminação por gênero, raça, religião, idade ou orientação sexual em contrato de trabalho é crime.",
			Remedy:      "Exija a supressão imediata da cláusula e denuncie ao Ministério Público do Trabalho.",
			Patterns: []string{
				`discriminacao.{0,30}(?:de |por )?(?:genero|raca|religiao|idade)`,
				`discriminacao.{0,30}orientacao sexual`,
			},
		},
		{
			ID:        "RETENCAO_CTPS",
			Name:      "Retenção de CTPS",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 29 + Lei 5.553/1968",
			Description: "🚨 RETENÇÃO DE CTPS - CRIME!",
			Detail:      "Reter a Carteira de Trabalho do empregado além do prazo legal de anotação é contravenção penal.",
			Remedy:      "Exija a devolução imediata da CTPS após as anotações legais.",
			Patterns: []string{
				`ctps.{0,30}retida`,
				`retencao.{0,20}(?:da |de )?ctps`,
				`carteira de trabalho.{0,30}retida`,
				`ctps.{0,40}(?:ficara|permanecera).{0,30}empregador`,
			},
		},
		{
			ID:        "DESCONTO_EQUIPAMENTOS",
			Name:      "Desconto por equipamentos",
			AppliesTo: employmentClasses,
			Severity:  SeverityHigh,
			Citation:  "CLT Art. 462",
			Description: "⚠️ DESCONTO ILEGAL POR EQUIPAMENTOS",
			Detail:      "O risco do negócio é do empregador; uniforme, ferramentas e materiais de trabalho não podem ser descontados do salário.",
			Remedy:      "Exija o fornecimento gratuito dos equipamentos de trabalho.",
			Patterns: []string{
				`(?:uniforme|equipamentos|ferramentas|materia(?:l|is)).{0,40}descontad`,
				`custo.{0,30}manutencao.{0,30}descontado.{0,20}(?:do )?salario`,
			},
		},
		{
			ID:        "DESCONTO_ATRASO_EXCESSIVO",
			Name:      "Desconto por atraso excessivo",
			AppliesTo: employmentClasses,
			Severity:  SeverityHigh,
			Citation:  "CLT Art. 462 + Súmula 18 TST",
			Description: "⚠️ DESCONTO POR ATRASO EXCESSIVO - ABUSIVO",
			Detail:      "Descontos por atraso devem ser proporcionais; multas salariais desproporcionais são abusivas.",
			Remedy:      "Exija a limitação dos descontos ao previsto na CLT.",
			Patterns: []string{
				`desconto.{0,30}(?:por )?atraso.{0,20}excessivo`,
				`multa.{0,30}(?:por )?atraso.{0,20}(?:no |do )?salario`,
				`desconto.{0,30}(?:por )?falta.{0,20}excessivo`,
			},
		},
		{
			ID:        "JUSTA_CAUSA_ABUSIVA",
			Name:      "Justa causa abusiva ou genérica",
			AppliesTo: employmentClasses,
			Severity:  SeverityHigh,
			Citation:  "CLT Art. 482",
			Description: "⚠️ JUSTA CAUSA ABUSIVA",
			Detail:      "A justa causa exige falta grave específica e comprovada; cláusulas genéricas ou por erro trivial ignoram a gradação de pena.",
			Remedy:      "Exija a enumeração taxativa das hipóteses legais de justa causa.",
			Patterns: []string{
				`(?:erro tecnico|pequeno erro).{0,40}justa causa`,
				`qualquer falta.{0,30}justa causa`,
				`justa causa.{0,20}(?:imediata|generica|vaga|discricionaria)`,
			},
		},
		{
			ID:        "RESPONSABILIDADE_PATRIMONIO_PESSOAL",
			Name:      "Responsabilidade com patrimônio pessoal",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "Código Civil + Jurisprudência trabalhista",
			Description: "🚨 RESPONSABILIDADE CIVIL ABUSIVA",
			Detail:      "O empregado não responde com o patrimônio pessoal pelos riscos da atividade do empregador.",
			Remedy:      "Exija a supressão da cláusula de responsabilização patrimonial.",
			Patterns: []string{
				`(?:funcionario|empregado).{0,40}responde.{0,40}patrimonio pessoal`,
				`bens pessoais.{0,30}(?:como |em )?garantia`,
				`patrimonio pessoal.{0,30}responsavel`,
			},
		},
		{
			ID:        "RESPONSABILIDADE_ILIMITADA",
			Name:      "Responsabilidade ilimitada por danos",
			AppliesTo: employmentClasses,
			Severity:  SeverityCritical,
			Citation:  "CLT Art. 462",
			Description: "🚨 RESPONSABILIDADE ILIMITADA POR DANOS - ILEGAL!",
			Detail:      "Responsabilidade por danos deve ser limitada e depende de dolo ou culpa comprovados.",
			Remedy:      "Exija a limitação da responsabilidade às hipóteses legais com dolo comprovado.",
			Patterns: []string{
				`danos.{0,30}lucros cessantes.{0,20}ilimitados`,
				`responsabilidade.{0,20}(?:integral|total|ilimitada).{0,30}(?:por )?danos`,
				`indenizacao ilimitada`,
			},
		},
		{
			ID:        "EXPERIENCIA_ACIMA_90D",
			Name:      "Experiência acima de 90 dias",
			AppliesTo: employmentClasses,
			Severity:  SeverityHigh,
			Citation:  "CLT Art. 445",
			Description: "⚠️ CONTRATO DE EXPERIÊNCIA ACIMA DE 90 DIAS - ILEGAL",
			Detail:      "O contrato de experiência não pode exceder 90 dias, incluída uma única prorrogação.",
			Remedy:      "Exija a limitação do período de experiência a 90 dias.",
			Patterns: []string{
				`experiencia.{0,40}\b(?:9[1-9]|1[0-9]\d|2\d\d) dias`,
				`experiencia.{0,40}\b(?:quatro|cinco|seis|[4-9]|1\d|2[0-4]) meses`,
				`experiencia.{0,30}superior.{0,20}(?:a )?90 dias`,
			},
		},
	}
}
