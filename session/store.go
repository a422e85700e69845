package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/esaudelocal/esaude/storage"
)

// ErrSessaoInvalida indica tentativa de estabelecer sessão com papel desconhecido.
var ErrSessaoInvalida = errors.New("sessão inválida")

// Store concentra a sessão ativa do processo. Todos os componentes leem a
// sessão por aqui, nunca diretamente do slot durável.
type Store struct {
	kv storage.KV

	mu    sync.RWMutex
	atual *Sessao
}

// NewStore cria o store e reidrata a sessão gravada no dispositivo, se houver.
// Registro corrompido, papel desconhecido ou token já expirado resultam em
// sessão ausente, nunca em erro para o host.
func NewStore(ctx context.Context, kv storage.KV) *Store {
	s := &Store{kv: kv}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	raw, err := s.kv.Read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrVazio) {
			log.Warn().Err(err).Msg("sessão: falha ao ler slot durável")
		}
		return
	}

	var sess Sessao
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Warn().Err(err).Msg("sessão: registro durável corrompido, descartando")
		_ = s.kv.Delete(ctx)
		return
	}
	if !sess.Papel.Valido() || strings.TrimSpace(sess.Token) == "" {
		log.Warn().Str("papel", string(sess.Papel)).Msg("sessão: registro durável inválido, descartando")
		_ = s.kv.Delete(ctx)
		return
	}
	if tokenExpirado(sess.Token) {
		log.Info().Msg("sessão: token expirado, exigindo novo login")
		_ = s.kv.Delete(ctx)
		return
	}

	s.atual = &sess
}

// tokenExpirado inspeciona a claim exp sem verificar assinatura; o núcleo
// nunca possui o segredo de assinatura. Tokens opacos são aceitos como estão.
func tokenExpirado(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Establish substitui qualquer sessão existente. Papel fora do conjunto
// fechado falha com ErrSessaoInvalida e preserva a sessão anterior; a escrita
// durável acontece antes de trocar o estado em memória.
func (s *Store) Establish(ctx context.Context, sess Sessao) error {
	if !sess.Papel.Valido() {
		return fmt.Errorf("%w: papel %q", ErrSessaoInvalida, sess.Papel)
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("sessão: serializar: %w", err)
	}
	if err := s.kv.Write(ctx, raw); err != nil {
		return fmt.Errorf("sessão: persistir: %w", err)
	}

	s.mu.Lock()
	s.atual = &sess
	s.mu.Unlock()
	return nil
}

// Current devolve a sessão ativa; ausência de login não é erro.
func (s *Store) Current() (Sessao, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.atual == nil || !s.atual.Papel.Valido() {
		return Sessao{}, false
	}
	return *s.atual, true
}

// Token devolve o token de acesso da sessão ativa, ou vazio.
func (s *Store) Token() string {
	if sess, ok := s.Current(); ok {
		return sess.Token
	}
	return ""
}

// Clear encerra a sessão incondicionalmente; idempotente.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.atual = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx); err != nil {
		return fmt.Errorf("sessão: limpar slot: %w", err)
	}
	return nil
}
