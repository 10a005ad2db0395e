// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burocrata-scan/internal/catalog"
)

func builtinEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(catalog.Builtin(), nil)
	require.NoError(t, err)
	return e
}

func findingIDs(rep *Report) []string {
	ids := make([]string, 0, len(rep.Findings))
	for _, f := range rep.Findings {
		ids = append(ids, f.ID)
	}
	return ids
}

const abusiveEmployment = `
CONTRATO DE TRABALHO

EMPREGADOR: Empresa Exploradora Ltda. EMPREGADO: Fulano de Tal.

1. O EMPREGADO receberá salário mensal de R$ 900,00.
2. A jornada de trabalho será das 08:00 às 20:00, de segunda a sábado.
3. Não haverá pagamento de horas extras em nenhuma hipótese.
4. O EMPREGADO renuncia ao FGTS, recebendo benefícios em substituição.
5. As férias não remuneradas poderão ser gozadas a critério do EMPREGADOR.
6. Em caso de gravidez, o contrato será rescindido imediatamente.
`

func TestAbusiveEmploymentContract(t *testing.T) {
	rep := builtinEngine(t).Analyze(abusiveEmployment)

	assert.Equal(t, catalog.ClassEmployment, rep.DocumentClass)

	ids := findingIDs(rep)
	for _, want := range []string{
		"SALARIO_ABAIXO_MINIMO",
		"JORNADA_12H",
		"HORAS_EXTRAS_NAO_PAGAS",
		"RENUNCIA_FGTS",
		"RENUNCIA_FERIAS",
		"DISCRIMINACAO_GRAVIDEZ",
	} {
		assert.Contains(t, ids, want)
	}

	assert.GreaterOrEqual(t, rep.Scorecard.Critical, 5)
	assert.Equal(t, RiskExtreme, rep.Scorecard.RiskTier)
	assert.Equal(t, 0, rep.Scorecard.Score)
	assert.Equal(t, "DOCUMENTO CRIMINAL", rep.Scorecard.StatusLabel)

	for _, f := range rep.Findings {
		if f.ID == "RENUNCIA_FGTS" {
			assert.Contains(t, f.Citation, "8.036")
			assert.Contains(t, f.Context, "FGTS")
		}
	}
}

const abusiveLease = `
CONTRATO DE LOCAÇÃO RESIDENCIAL

LOCADOR: Imobiliária Garra Ltda. LOCATÁRIO: Beltrano de Tal.
O imóvel da Rua das Flores, 10, destina-se exclusivamente à moradia.

1. Em caso de rescisão antecipada, multa de 12 meses de aluguel, integral independente do tempo cumprido.
2. O LOCATÁRIO depositará caução de 6 meses de aluguel e apresentará fiador idôneo.
3. O aluguel sofrerá reajuste a cada 3 meses, a critério exclusivo do LOCADOR.
4. O LOCADOR poderá entrar no imóvel a qualquer momento, sendo permitida vistoria sem aviso prévio.
`

func TestAbusiveLeaseContract(t *testing.T) {
	rep := builtinEngine(t).Analyze(abusiveLease)

	assert.Equal(t, catalog.ClassResidentialLease, rep.DocumentClass)

	ids := findingIDs(rep)
	for _, want := range []string{
		"MULTA_12_MESES",
		"CAUCAO_ACIMA_1_MES",
		"GARANTIAS_CUMULADAS",
		"REAJUSTE_INFRA_ANUAL",
		"INGRESSO_LIVRE_IMOVEL",
		"VISITA_SEM_AVISO",
	} {
		assert.Contains(t, ids, want)
	}

	assert.GreaterOrEqual(t, rep.Scorecard.Critical, 5)
	assert.Equal(t, RiskExtreme, rep.Scorecard.RiskTier)

	// Findings arrive sorted, criticals ahead of everything else.
	assert.Equal(t, catalog.SeverityCritical, rep.Findings[0].Severity)
}

const fraudulentInvoice = `
NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e Nº 4521
Prestador: Construções Fantasma Ltda - CNPJ 00.000.000/0001-00
Situação cadastral do emitente: BAIXADA
Status: CANCELADA
Observação: nota emitida com data futura para antecipar faturamento.
Valor do serviço: R$ 50.000,00 - Alíquota: 0%
Tomador: Prefeitura Municipal
`

func TestFraudulentInvoice(t *testing.T) {
	rep := builtinEngine(t).Analyze(fraudulentInvoice)

	assert.Equal(t, catalog.ClassInvoice, rep.DocumentClass)

	ids := findingIDs(rep)
	for _, want := range []string{
		"NF_EMITENTE_IRREGULAR",
		"NF_CANCELADA",
		"NF_DATA_FUTURA",
		"NF_ALIQUOTA_ILEGAL",
		"NOTA_FISCAL_PRESENTE",
	} {
		assert.Contains(t, ids, want)
	}

	assert.GreaterOrEqual(t, rep.Scorecard.Critical, 3)
	assert.Equal(t, RiskMaximum, rep.Scorecard.RiskTier)
	assert.GreaterOrEqual(t, rep.Scorecard.Info, 1)

	// The informational marker sorts last.
	last := rep.Findings[len(rep.Findings)-1]
	assert.Equal(t, catalog.SeverityInfo, last.Severity)
}

const unknownDocument = `
REGULAMENTO INTERNO DO CLUBE DE XADREZ

Artigo 1. As partidas seguem as regras internacionais.
Artigo 2. Qualquer cláusula abusiva deste regulamento poderá ser revista pela diretoria.
`

func TestUnknownDocumentStillGetsWildcardRules(t *testing.T) {
	rep := builtinEngine(t).Analyze(unknownDocument)

	assert.Equal(t, catalog.ClassUnknown, rep.DocumentClass)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, "CLAUSULA_ABUSIVA_DECLARADA", rep.Findings[0].ID)
	assert.Equal(t, RiskModerate, rep.Scorecard.RiskTier)
}

const cleanInvoice = `
NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e Nº 1204
Prestador: Escritório Silva Contabilidade ME - CNPJ 12.345.678/0001-90 - Inscrição Municipal 55443
Tomador: Padaria Pão Quente Ltda
Data de emissão: 15/07/2025 - Competência: 07/2025
Discriminação dos serviços: apuração contábil mensal referente a julho de 2025
Valor do serviço: R$ 5.000,00 - Base de cálculo: R$ 5.000,00
Alíquota: 5% - ISS devido: R$ 250,00
Código de verificação: A1B2-C3D4
`

func TestCleanInvoiceScoresFull(t *testing.T) {
	rep := builtinEngine(t).Analyze(cleanInvoice)

	assert.Equal(t, catalog.ClassInvoice, rep.DocumentClass)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, "NOTA_FISCAL_PRESENTE", rep.Findings[0].ID)
	assert.Equal(t, catalog.SeverityInfo, rep.Findings[0].Severity)

	assert.Equal(t, 100, rep.Scorecard.Score)
	assert.Equal(t, RiskNone, rep.Scorecard.RiskTier)
	assert.Equal(t, "DOCUMENTO APARENTEMENTE REGULAR", rep.Scorecard.StatusLabel)
}

const cleanLease = `
CONTRATO DE LOCAÇÃO RESIDENCIAL

LOCADOR: Maria Souza. LOCATÁRIO: José Lima.
O imóvel da Rua Verde, 22, destina-se à moradia do LOCATÁRIO e de sua família.

1. O aluguel mensal é de R$ 2.000,00, vencível no quinto dia útil do mês seguinte.
2. O aluguel será reajustado anualmente pela variação do IGP-M.
3. Em caso de rescisão antecipada, multa de 3 meses de aluguel, reduzida
proporcionalmente ao tempo de contrato já cumprido.
4. A garantia será prestada mediante fiador.
5. Vistorias serão realizadas mediante aviso prévio mínimo de 24 horas.
6. Reparos estruturais correrão por conta do LOCADOR.
`

func TestCleanLeaseYieldsNoFindings(t *testing.T) {
	rep := builtinEngine(t).Analyze(cleanLease)

	assert.Equal(t, catalog.ClassResidentialLease, rep.DocumentClass)
	assert.Empty(t, rep.Findings, "unexpected findings: %v", findingIDs(rep))
	assert.Equal(t, 100, rep.Scorecard.Score)
	assert.Equal(t, RiskNone, rep.Scorecard.RiskTier)
}

// Representative firing phrases, one per rule in the builtin catalog, run in
// permissive mode so the class filter never masks a broken pattern. The key
// set is pinned to the catalog: a rule added without a firing phrase here
// fails the test.
func TestRepresentativeRulePhrases(t *testing.T) {
	phrases := map[string]string{
		"SALARIO_ABAIXO_MINIMO":               "o salário mensal será de R$ 800,00 pagos em espécie",
		"SALARIO_SEM_GARANTIA":                "a remuneração por comissões será paga sem parcela fixa",
		"JORNADA_12H":                         "a jornada será das 08:00 às 20:00 de segunda a sábado",
		"JORNADA_ACIMA_8H":                    "jornada de trabalho superior a 8 horas sempre que necessário",
		"JORNADA_SEMANAL_ACIMA_44H":           "carga de 50 horas semanais sem compensação",
		"HORAS_EXTRAS_NAO_PAGAS":              "não haverá pagamento de horas extras em nenhuma hipótese",
		"HORAS_EXTRAS_SEM_ADICIONAL":          "as horas extras serão pagas sem adicional sobre a hora normal",
		"INTERVALO_INTERJORNADAS_INSUF":       "intervalo interjornadas de 8 horas entre os turnos",
		"INTERVALO_REFEICAO_INSUF":            "intervalo para refeição de 15 minutos por turno",
		"RENUNCIA_FGTS":                       "o empregado declara renúncia ao FGTS em troca de bônus",
		"FGTS_OPCIONAL":                       "o recolhimento do FGTS será facultativo neste contrato",
		"RENUNCIA_FERIAS":                     "o contratado assina renúncia às férias anuais",
		"FERIAS_NAO_PAGAS":                    "as férias acumuladas de períodos anteriores não serão concedidas",
		"DISCRIMINACAO_GRAVIDEZ":              "constatada a gravidez, ocorrerá a demissão imediata",
		"CLAUSULA_DISCRIMINATORIA":            "admite-se discriminação por idade na seleção interna",
		"RETENCAO_CTPS":                       "a CTPS ficará retida na sede da empresa",
		"DESCONTO_EQUIPAMENTOS":               "uniforme e ferramentas serão descontados do salário",
		"DESCONTO_ATRASO_EXCESSIVO":           "multa por atraso descontada do salário do empregado",
		"JUSTA_CAUSA_ABUSIVA":                 "qualquer falta leve ensejará justa causa imediata",
		"EXPERIENCIA_ACIMA_90D":               "contrato de experiência de 120 dias prorrogáveis",
		"RESPONSABILIDADE_PATRIMONIO_PESSOAL": "o empregado responde com seu patrimônio pessoal pelos prejuízos",
		"RESPONSABILIDADE_ILIMITADA":          "o contratado responderá por indenização ilimitada em caso de prejuízo",
		"MULTA_ACIMA_2_MESES":                 "multa rescisória de 6 meses de aluguel",
		"MULTA_12_MESES":                      "multa rescisória de 12 meses de aluguel",
		"MULTA_SEM_PROPORCIONALIDADE":         "a multa será devida sem proporcionalidade ao tempo cumprido",
		"CAUCAO_ACIMA_1_MES":                  "caução de 10 meses depositada na imobiliária",
		"GARANTIAS_CUMULADAS":                 "exige-se caução em dinheiro e ainda fiador com imóvel próprio",
		"PAGAMENTO_ANTECIPADO":                "exige-se o pagamento antecipado do aluguel mesmo havendo garantia",
		"REAJUSTE_INFRA_ANUAL":                "o valor sofrerá reajuste a cada 6 meses",
		"REAJUSTE_SEM_INDICE":                 "o reajuste anual ocorrerá sem índice oficial de referência",
		"REAJUSTE_DOLAR":                      "o aluguel terá reajuste pela variação cambial do período",
		"AUMENTO_FIXO_ANUAL":                  "fica ajustado aumento fixo de 20% ao ano sobre o aluguel",
		"INGRESSO_LIVRE_IMOVEL":               "o locador terá livre acesso ao imóvel alugado",
		"VISITA_SEM_AVISO":                    "poderá realizar vistoria sem aviso prévio ao ocupante",
		"RENUNCIA_BENFEITORIAS":               "o locatário declara renúncia à indenização por benfeitorias realizadas",
		"RESPONSABILIDADE_ESTRUTURAL":         "o inquilino arcará com reparos estruturais do telhado",
		"VICIOS_CONSTRUCAO_LOCATARIO":         "os vícios de construção serão reparados pelo locatário",
		"PROIBICAO_ANIMAIS":                   "fica proibida a permanência de animais no imóvel",
		"RESCISAO_POR_VENDA":                  "haverá desocupação imediata em caso de venda do imóvel",
		"DESOCUPACAO_PRAZO_CURTO":             "o imóvel deverá ser desocupado em 48 horas após a notificação",
		"DESPEJO_EXTRAJUDICIAL":               "o proprietário poderá trocar a fechadura em caso de atraso",
		"MULTA_DIARIA_EXCESSIVA":              "incidirá multa de 10% ao dia sobre o débito em aberto",
		"IR_LOCADOR_PAGO_LOCATARIO":           "o locatário arcará com o imposto de renda incidente sobre o aluguel",
		"NOTA_FISCAL_PRESENTE":                "nota fiscal de serviços emitida pela prefeitura do município",
		"NF_DATA_FUTURA":                      "a nota foi emitida com data futura para o próximo exercício",
		"NF_DATA_RETROATIVA":                  "constatou-se emissão retroativa para encobrir a competência",
		"NF_CANCELADA":                        "consta o status: cancelada no portal de consulta",
		"NF_CANCELAMENTO_FORA_PRAZO":          "o cancelamento da nota ocorreu fora do prazo regulamentar",
		"NF_EMITENTE_IRREGULAR":               "o CNPJ do prestador encontra-se baixado na receita",
		"NF_EMITENTE_DIVERGENTE":              "a nota traz CNPJ divergente do prestador contratado",
		"NF_VALOR_ZERO":                       "o campo valor do serviço traz R$ 0,00 apesar da execução",
		"NF_VALOR_DIVERGENTE":                 "o fornecedor propôs a emissão de meia-nota para reduzir impostos",
		"NF_BASE_CALCULO_ZERO":                "a base de cálculo foi zerada apesar do serviço cobrado",
		"NF_ALIQUOTA_ILEGAL":                  "destacou-se alíquota de 1% sobre a base",
		"NF_ISS_NAO_RECOLHIDO":                "o ISS destacado permanece não recolhido até hoje",
		"NF_ISS_MUNICIPIO_ERRADO":             "o imposto foi recolhido em outro município de alíquota menor",
		"NF_DESCRICAO_INSUFICIENTE":           "a nota foi emitida sem descrição do serviço prestado",
		"NF_DESCRICAO_GENERICA":               "a discriminação informa apenas serviços diversos no período",
		"NF_CODIGO_SERVICO_INCORRETO":         "o código de serviço informado é incompatível com a descrição",
		"NF_NUMERO_DUPLICADO":                 "há numeração duplicada em relação à nota anterior",
		"NF_NAO_VERIFICADA":                   "a nota não consta no portal da prefeitura emissora",
		"NF_EMISSAO_MANUAL":                   "o prestador utiliza talão de notas manual no balcão",
		"NF_SEM_AUTENTICACAO":                 "a via apresentada está sem código de verificação legível",
		"NF_EMITENTE_DEBITO_FISCAL":           "o emitente possui inscrição em dívida ativa municipal",
		"NF_INSCRICAO_CANCELADA":              "a inscrição municipal do prestador está cancelada",
		"NF_COMPETENCIA_INCORRETA":            "a competência informada está incorreta para o mês da prestação",
		"NF_RETENCAO_INDEVIDA":                "houve retenção indevida de ISS pelo tomador",
		"NF_ALIQUOTA_RETENCAO_ERRADA":         "a alíquota de retenção aplicada está errada",
		"CLAUSULA_ABUSIVA_DECLARADA":          "as partes reconhecem tratar-se de cláusula abusiva",
		"CLAUSULA_ILEGAL_DECLARADA":           "a parte reconhece tratar-se de cláusula ilegal porém vinculante",
		"CLAUSULA_NULA_DECLARADA":             "a obrigação é nula de pleno direito mas será exigida",
		"CONTRARIO_LEI":                       "a disposição vale mesmo quando contrária à lei vigente",
		"ONUS_EXCESSIVO":                      "a obrigação impõe ônus excessivo ao contratante",
		"DESVANTAGEM_EXCESSIVA":               "o contrato impõe desvantagem exagerada ao aderente",
		"VIOLACAO_DIREITO_DECLARADA":          "o texto admite violação de direitos do contratante",
		"PREJUDICA_DIREITO":                   "a cláusula prejudica direitos garantidos por lei",
		"RISCO_EXCESSIVO":                     "o contratante assume todos os riscos da operação",
		"SALARIO_EXTREMO_BAIXO":               "o pagamento será de trezentos reais mensais pelo período integral",
	}

	keys := make([]string, 0, len(phrases))
	for id := range phrases {
		keys = append(keys, id)
	}
	require.ElementsMatch(t, catalog.Builtin().RuleIDs(), keys,
		"phrase table out of sync with the builtin catalog")

	e := builtinEngine(t)
	for id, phrase := range phrases {
		t.Run(id, func(t *testing.T) {
			doc := phrase + " " + strings.Repeat("texto de preenchimento neutro ", 3)
			rep := e.AnalyzeWithOptions(doc, Options{Permissive: true})
			assert.Contains(t, findingIDs(rep), id, "phrase %q did not fire %s", phrase, id)
		})
	}
}

// Caução fires whenever it exceeds one month of rent, including the two and
// three month variants and worded excess clauses; exactly one month stays
// clean.
func TestCaucaoAboveOneMonth(t *testing.T) {
	e := builtinEngine(t)

	for _, doc := range []string{
		"O locatário depositará caução de 2 meses de aluguel como garantia.",
		"O locatário depositará caução de 3 meses de aluguel como garantia.",
		"Será exigida caução superior a um mês de aluguel na assinatura do contrato.",
	} {
		rep := e.AnalyzeWithOptions(doc, Options{Permissive: true})
		assert.Contains(t, findingIDs(rep), "CAUCAO_ACIMA_1_MES", "doc %q", doc)
	}

	rep := e.AnalyzeWithOptions(
		"O locatário depositará caução de 1 mês de aluguel como garantia da locação.",
		Options{Permissive: true})
	assert.NotContains(t, findingIDs(rep), "CAUCAO_ACIMA_1_MES")
}

// Rules are independent: removing one from the catalog removes its own
// findings and nothing else changes in the report.
func TestRuleRemovalDoesNotChangeOtherFindings(t *testing.T) {
	full := builtinEngine(t)

	for _, doc := range []string{abusiveEmployment, abusiveLease, fraudulentInvoice} {
		base := full.Analyze(doc)
		require.NotEmpty(t, base.Findings)

		for _, f := range base.Findings {
			reduced, err := New(catalog.Builtin().Without(f.ID), nil)
			require.NoError(t, err)

			want := make([]string, 0, len(base.Findings)-1)
			for _, bf := range base.Findings {
				if bf.ID != f.ID {
					want = append(want, bf.ID)
				}
			}
			assert.ElementsMatch(t, want, findingIDs(reduced.Analyze(doc)),
				"removing %s changed unrelated findings", f.ID)
		}
	}
}
