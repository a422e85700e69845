package nav

import "github.com/esaudelocal/esaude/session"

// Decision enumera os desfechos possíveis de uma navegação.
type Decision int

const (
	// DecisionAuthorized libera a renderização do destino.
	DecisionAuthorized Decision = iota
	// DecisionLoginRequired redireciona para LoginPath; não há sessão válida.
	DecisionLoginRequired
	// DecisionDenied renderiza negação explícita: há sessão, falta capacidade.
	// Nunca redireciona para o login.
	DecisionDenied
	// DecisionNotFound indica path ausente do catálogo.
	DecisionNotFound
)

// String devolve o nome do desfecho, útil em logs.
func (d Decision) String() string {
	switch d {
	case DecisionAuthorized:
		return "authorized"
	case DecisionLoginRequired:
		return "login_required"
	case DecisionDenied:
		return "denied"
	case DecisionNotFound:
		return "not_found"
	}
	return "unknown"
}

// SessionSource fornece a sessão ativa no momento de cada avaliação.
type SessionSource interface {
	Current() (session.Sessao, bool)
}

// Gate é o único ponto de aplicação do controle de acesso por rota. Cada
// navegação é avaliada de novo, de forma síncrona, contra a sessão corrente;
// nada é cacheado entre avaliações.
type Gate struct {
	catalogo *Catalogo
	sessoes  SessionSource
}

// NewGate cria o gate sobre um catálogo validado e a fonte de sessão.
func NewGate(c *Catalogo, s SessionSource) *Gate {
	return &Gate{catalogo: c, sessoes: s}
}

// Evaluate decide o acesso ao path. Função pura de (sessão, catálogo):
// mesmas entradas, mesmo desfecho.
func (g *Gate) Evaluate(path string) Decision {
	rota, ok := g.catalogo.Lookup(path)
	if !ok {
		return DecisionNotFound
	}
	if rota.Publica {
		return DecisionAuthorized
	}

	sess, ok := g.sessoes.Current()
	if !ok {
		return DecisionLoginRequired
	}
	if len(rota.Papeis) == 0 {
		return DecisionAuthorized
	}
	for _, p := range rota.Papeis {
		if p == sess.Papel {
			return DecisionAuthorized
		}
	}
	return DecisionDenied
}
