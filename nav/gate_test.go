package nav

import (
	"context"
	"testing"

	"github.com/esaudelocal/esaude/auth"
	"github.com/esaudelocal/esaude/session"
	"github.com/esaudelocal/esaude/storage"
)

type stubSessoes struct {
	sessao session.Sessao
	ativa  bool
}

func (s *stubSessoes) Current() (session.Sessao, bool) {
	return s.sessao, s.ativa
}

func novoGate(t *testing.T, sessoes SessionSource) *Gate {
	t.Helper()
	cat, err := NewCatalogo(DefaultRotas())
	if err != nil {
		t.Fatalf("NewCatalogo: %v", err)
	}
	return NewGate(cat, sessoes)
}

func TestEvaluateDecisoes(t *testing.T) {
	casos := []struct {
		nome   string
		sessao *stubSessoes
		path   string
		quer   Decision
	}{
		{"pública sem sessão", &stubSessoes{}, LoginPath, DecisionAuthorized},
		{"pública com sessão", &stubSessoes{sessao: session.Sessao{Papel: auth.PapelGestor}, ativa: true}, LoginPath, DecisionAuthorized},
		{"protegida sem sessão", &stubSessoes{}, "/utentes", DecisionLoginRequired},
		{"protegida com papel permitido", &stubSessoes{sessao: session.Sessao{Papel: auth.PapelEnfermeiro}, ativa: true}, "/utentes", DecisionAuthorized},
		{"protegida sem capacidade", &stubSessoes{sessao: session.Sessao{Papel: auth.PapelAgente}, ativa: true}, "/prescricoes", DecisionDenied},
		{"dashboard de outro papel", &stubSessoes{sessao: session.Sessao{Papel: auth.PapelMedico}, ativa: true}, "/dashboard/gestor", DecisionDenied},
		{"path desconhecido sem sessão", &stubSessoes{}, "/nao-existe", DecisionNotFound},
		{"path desconhecido com sessão", &stubSessoes{sessao: session.Sessao{Papel: auth.PapelGestor}, ativa: true}, "/nao-existe", DecisionNotFound},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			gate := novoGate(t, c.sessao)
			if got := gate.Evaluate(c.path); got != c.quer {
				t.Fatalf("Evaluate(%s) = %s, esperado %s", c.path, got, c.quer)
			}
		})
	}
}

func TestEvaluateRotaProtegidaSemPapeisAdmiteQualquerPapel(t *testing.T) {
	cat, err := NewCatalogo([]Rota{{Path: "/perfil"}})
	if err != nil {
		t.Fatalf("NewCatalogo: %v", err)
	}

	for _, papel := range auth.Todos() {
		gate := NewGate(cat, &stubSessoes{sessao: session.Sessao{Papel: papel}, ativa: true})
		if got := gate.Evaluate("/perfil"); got != DecisionAuthorized {
			t.Fatalf("papel %s deveria acessar rota sem capacidades, obtido %s", papel, got)
		}
	}

	gate := NewGate(cat, &stubSessoes{})
	if got := gate.Evaluate("/perfil"); got != DecisionLoginRequired {
		t.Fatalf("sem sessão deveria exigir login, obtido %s", got)
	}
}

func TestEvaluateEhDeterministica(t *testing.T) {
	gate := novoGate(t, &stubSessoes{sessao: session.Sessao{Papel: auth.PapelGestor}, ativa: true})
	primeiro := gate.Evaluate("/relatorios")
	for i := 0; i < 10; i++ {
		if got := gate.Evaluate("/relatorios"); got != primeiro {
			t.Fatalf("decisão variou entre avaliações: %s vs %s", primeiro, got)
		}
	}
}

func TestEvaluateReavaliaSessaoACadaNavegacao(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(ctx, &storage.MemoryKV{})
	gate := novoGate(t, store)

	if got := gate.Evaluate("/consultas"); got != DecisionLoginRequired {
		t.Fatalf("sem login deveria exigir autenticação, obtido %s", got)
	}

	sess := session.Sessao{ID: "u1", Nome: "Amélia", Papel: auth.PapelMedico, Token: "t"}
	if err := store.Establish(ctx, sess); err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if got := gate.Evaluate("/consultas"); got != DecisionAuthorized {
		t.Fatalf("após login deveria autorizar, obtido %s", got)
	}

	// logout seguido de navegação: sempre não autenticado, qualquer que
	// tenha sido o papel anterior
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, rota := range DefaultRotas() {
		if rota.Publica {
			continue
		}
		if got := gate.Evaluate(rota.Path); got != DecisionLoginRequired {
			t.Fatalf("após logout, %s deveria exigir login, obtido %s", rota.Path, got)
		}
	}
}
