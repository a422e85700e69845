package triagem

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// Persister grava uma triagem concluída no backend. O servidor não
// reclassifica: o resultado calculado aqui é autoritativo.
type Persister interface {
	EnviarTriagem(ctx context.Context, utenteID string, respostas Respostas, resultado Resultado) error
}

// ErrUtenteObrigatorio indica tentativa de concluir triagem sem utente.
var ErrUtenteObrigatorio = errors.New("triagem: utente obrigatório")

// Service conclui o fluxo do questionário: classifica localmente e persiste
// tudo de uma vez. Abandonar o formulário antes do envio não grava nada.
type Service struct {
	persister Persister
}

// NewService cria o serviço sobre o colaborador de persistência.
func NewService(p Persister) *Service {
	return &Service{persister: p}
}

// Concluir calcula o resultado e o envia ao backend. Falha de persistência é
// devolvida inalterada, junto do resultado já calculado, para que o envio
// possa ser repetido sem reclassificar.
func (s *Service) Concluir(ctx context.Context, utenteID string, r Respostas) (Resultado, error) {
	if strings.TrimSpace(utenteID) == "" {
		return Resultado{}, ErrUtenteObrigatorio
	}

	resultado := Avaliar(r)
	if err := s.persister.EnviarTriagem(ctx, utenteID, r, resultado); err != nil {
		return resultado, err
	}

	log.Info().
		Str("utente", utenteID).
		Int("pontos", resultado.Pontos).
		Str("nivel", string(resultado.Nivel)).
		Msg("triagem concluída")
	return resultado, nil
}
