package triagem

// Tags de resposta do questionário, exatamente como trafegam no formulário
// e no backend.
const (
	FebreAlta      = "alta"
	FebreModerada  = "moderada"
	FebreBaixa     = "baixa"
	TosseFrequente = "frequente"
	TosseOcasional = "ocasional"
	Sim            = "sim"
	Nao            = "nao"
)

// Respostas é o questionário de sintomas de uma triagem. O conjunto de
// perguntas é fixo; respostas existem apenas durante o preenchimento e nunca
// são persistidas parcialmente.
type Respostas struct {
	Febre       string `json:"febre"`
	Tosse       string `json:"tosse"`
	DorGarganta string `json:"dorGarganta"`
	FaltaAr     string `json:"faltaAr"`
	Fadiga      string `json:"fadiga"`
	DorCorpo    string `json:"dorCorpo"`
}

// Nivel é a classificação ordinal de gravidade.
type Nivel string

const (
	NivelSemSintomas Nivel = "Sem sintomas"
	NivelLeve        Nivel = "Leve"
	NivelModerado    Nivel = "Moderado"
	NivelGrave       Nivel = "Grave"
)

// Resultado é a classificação derivada de um conjunto de respostas.
// Imutável depois de calculado.
type Resultado struct {
	Pontos       int
	Nivel        Nivel
	Recomendacao string
	Fatores      []string
}

// Avaliar converte o questionário em classificação e recomendação. Função
// pura, sem efeitos colaterais: pode ser reavaliada à vontade enquanto a
// persistência é repetida de forma independente. Tags fora do domínio
// documentado pontuam zero; a avaliação nunca falha.
func Avaliar(r Respostas) Resultado {
	pontos := 0
	var fatores []string

	switch r.Febre {
	case FebreAlta:
		pontos += 3
		fatores = append(fatores, "Febre alta")
	case FebreModerada:
		pontos += 2
		fatores = append(fatores, "Febre moderada")
	case FebreBaixa:
		pontos++
		fatores = append(fatores, "Febre baixa")
	}

	switch r.Tosse {
	case TosseFrequente:
		pontos += 2
		fatores = append(fatores, "Tosse frequente")
	case TosseOcasional:
		// pontua sem entrar nos fatores
		pontos++
	}

	if r.DorGarganta == Sim {
		pontos++
		fatores = append(fatores, "Dor de garganta")
	}
	if r.FaltaAr == Sim {
		pontos += 3
		fatores = append(fatores, "Falta de ar")
	}
	if r.Fadiga == Sim {
		pontos++
		fatores = append(fatores, "Fadiga")
	}
	if r.DorCorpo == Sim {
		pontos++
		fatores = append(fatores, "Dor no corpo")
	}

	nivel, recomendacao := classificar(pontos)
	return Resultado{
		Pontos:       pontos,
		Nivel:        nivel,
		Recomendacao: recomendacao,
		Fatores:      fatores,
	}
}

// classificar aplica os limiares em ordem decrescente; o primeiro que casar
// vence. A tabela de pontos é contrato de comportamento, não sujeita a ajuste.
func classificar(pontos int) (Nivel, string) {
	switch {
	case pontos >= 6:
		return NivelGrave, "Agendar teleconsulta URGENTE com médico"
	case pontos >= 3:
		return NivelModerado, "Agendar consulta em até 24h"
	case pontos >= 1:
		return NivelLeve, "Auto-cuidado e monitoramento"
	}
	return NivelSemSintomas, "Continuar com medidas preventivas"
}
