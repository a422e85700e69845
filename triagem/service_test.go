package triagem

import (
	"context"
	"errors"
	"testing"
)

type stubPersister struct {
	chamadas  int
	utenteID  string
	respostas Respostas
	resultado Resultado
	err       error
}

func (s *stubPersister) EnviarTriagem(ctx context.Context, utenteID string, respostas Respostas, resultado Resultado) error {
	s.chamadas++
	s.utenteID = utenteID
	s.respostas = respostas
	s.resultado = resultado
	return s.err
}

func TestConcluirPersisteResultadoCalculado(t *testing.T) {
	stub := &stubPersister{}
	svc := NewService(stub)

	respostas := Respostas{Febre: FebreAlta, Tosse: Nao, DorGarganta: Nao, FaltaAr: Sim, Fadiga: Nao, DorCorpo: Nao}
	resultado, err := svc.Concluir(context.Background(), "utente-1", respostas)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if stub.chamadas != 1 {
		t.Fatalf("esperado um único envio, houve %d", stub.chamadas)
	}
	if stub.utenteID != "utente-1" {
		t.Fatalf("utente enviado = %q", stub.utenteID)
	}
	if stub.resultado.Nivel != NivelGrave || stub.resultado.Pontos != 6 {
		t.Fatalf("resultado enviado difere do calculado: %+v", stub.resultado)
	}
	if resultado.Nivel != stub.resultado.Nivel {
		t.Fatalf("resultado devolvido difere do enviado")
	}
}

func TestConcluirSemUtente(t *testing.T) {
	stub := &stubPersister{}
	svc := NewService(stub)

	_, err := svc.Concluir(context.Background(), "   ", Respostas{})
	if !errors.Is(err, ErrUtenteObrigatorio) {
		t.Fatalf("esperado ErrUtenteObrigatorio, obtido %v", err)
	}
	if stub.chamadas != 0 {
		t.Fatal("nada deveria ser enviado sem utente")
	}
}

func TestConcluirFalhaDePersistencia(t *testing.T) {
	falha := errors.New("backend indisponível")
	stub := &stubPersister{err: falha}
	svc := NewService(stub)

	respostas := Respostas{Febre: FebreBaixa, Tosse: Nao, DorGarganta: Nao, FaltaAr: Nao, Fadiga: Nao, DorCorpo: Nao}
	resultado, err := svc.Concluir(context.Background(), "utente-2", respostas)
	if !errors.Is(err, falha) {
		t.Fatalf("falha de persistência deveria subir inalterada, obtido %v", err)
	}
	// o resultado calculado volta junto, para reenvio sem reclassificação
	if resultado.Nivel != NivelLeve || resultado.Pontos != 1 {
		t.Fatalf("resultado calculado deveria acompanhar o erro: %+v", resultado)
	}
}
