package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/esaudelocal/esaude/auth"
	"github.com/esaudelocal/esaude/session"
	"github.com/esaudelocal/esaude/triagem"
)

var (
	// ErrCredenciais indica e-mail ou senha rejeitados pelo backend.
	ErrCredenciais = errors.New("credenciais inválidas")
	// ErrNaoAutenticado indica chamada autenticada recusada pelo backend.
	ErrNaoAutenticado = errors.New("backend: não autenticado")
	// ErrSemToken indica chamada autenticada sem sessão ativa.
	ErrSemToken = errors.New("backend: sessão sem token")
	// ErrMuitasTentativas indica login barrado pelo limitador local.
	ErrMuitasTentativas = errors.New("backend: muitas tentativas de login")
)

// TokenSource fornece o token de acesso da sessão corrente.
type TokenSource interface {
	Token() string
}

// Config descreve os parâmetros essenciais do cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
}

// Client encapsula chamadas à API REST do eSaúde. O núcleo nunca calcula
// credenciais nem reclassifica triagens; apenas consome esta fronteira.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	loginLimit *rate.Limiter
}

// New cria o cliente com timeout padrão de 15s e limitador local de login.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("backend: base url obrigatória")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		loginLimit: rate.NewLimiter(rate.Every(2*time.Second), 5),
	}, nil
}

// Login autentica no backend e devolve a sessão pronta para Establish.
// O papel retornado passa pela validação do conjunto fechado.
func (c *Client) Login(ctx context.Context, email, senha string) (session.Sessao, error) {
	if strings.TrimSpace(email) == "" || senha == "" {
		return session.Sessao{}, ErrCredenciais
	}
	if !c.loginLimit.Allow() {
		return session.Sessao{}, ErrMuitasTentativas
	}

	body := map[string]string{"email": strings.TrimSpace(email), "senha": senha}
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/usuarios/login", body, false)
	if err != nil {
		return session.Sessao{}, err
	}

	var payload struct {
		Token   string `json:"token"`
		Usuario struct {
			ID    string `json:"id"`
			Nome  string `json:"nome"`
			Papel string `json:"papel"`
		} `json:"usuario"`
	}
	if err := c.do(req, &payload); err != nil {
		if errors.Is(err, ErrNaoAutenticado) {
			log.Warn().Msg("login: credenciais rejeitadas pelo backend")
			return session.Sessao{}, ErrCredenciais
		}
		return session.Sessao{}, err
	}

	papel, err := auth.ParsePapel(payload.Usuario.Papel)
	if err != nil {
		return session.Sessao{}, fmt.Errorf("backend: login: %w", err)
	}
	if strings.TrimSpace(payload.Token) == "" {
		return session.Sessao{}, errors.New("backend: login sem token")
	}

	return session.Sessao{
		ID:    payload.Usuario.ID,
		Nome:  payload.Usuario.Nome,
		Papel: papel,
		Token: payload.Token,
	}, nil
}

// EnviarTriagem persiste uma triagem concluída. O envio é único e atômico:
// respostas e resultado calculado localmente seguem juntos.
func (c *Client) EnviarTriagem(ctx context.Context, utenteID string, respostas triagem.Respostas, resultado triagem.Resultado) error {
	raw, err := json.Marshal(respostas)
	if err != nil {
		return fmt.Errorf("backend: serializar respostas: %w", err)
	}

	body := map[string]any{
		"utenteId":      utenteID,
		"respostasJson": string(raw),
		"resultado":     string(resultado.Nivel),
		"recomendacao":  resultado.Recomendacao,
	}
	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/triagens", body, true)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Utente representa um(a) paciente registrado no distrito.
type Utente struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Contacto string `json:"contacto"`
	Zona     *Zona  `json:"zona,omitempty"`
}

// Zona é a zona sanitária associada ao utente.
type Zona struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// ListarUtentes devolve o registro de utentes visível para a sessão corrente.
func (c *Client) ListarUtentes(ctx context.Context) ([]Utente, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/utentes", nil, true)
	if err != nil {
		return nil, err
	}

	var utentes []Utente
	if err := c.do(req, &utentes); err != nil {
		return nil, err
	}
	return utentes, nil
}

// BuscarPorContacto filtra utentes cujo contacto contém o trecho informado,
// como faz a busca da tela de triagem.
func (c *Client) BuscarPorContacto(ctx context.Context, contacto string) ([]Utente, error) {
	contacto = strings.TrimSpace(contacto)
	utentes, err := c.ListarUtentes(ctx)
	if err != nil {
		return nil, err
	}

	var out []Utente
	for _, u := range utentes {
		if contacto == "" || strings.Contains(u.Contacto, contacto) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any, autenticada bool) (*http.Request, error) {
	var req *http.Request
	var err error

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		req, err = http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
		if err != nil {
			return nil, err
		}
	}

	if autenticada {
		if c.tokens == nil {
			return nil, ErrSemToken
		}
		token := c.tokens.Token()
		if token == "" {
			return nil, ErrSemToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) do(req *http.Request, v any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend_request")

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrNaoAutenticado, mensagemDeErro(resp))
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("backend: status %d: %s", resp.StatusCode, mensagemDeErro(resp))
	}

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// mensagemDeErro extrai o envelope {"error": "..."} do backend, quando houver.
func mensagemDeErro(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return http.StatusText(resp.StatusCode)
	}
	return payload.Error
}
