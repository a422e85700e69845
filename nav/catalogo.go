package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/esaudelocal/esaude/auth"
)

var (
	// ErrRotaDuplicada indica path repetido na tabela de rotas.
	ErrRotaDuplicada = errors.New("rota duplicada")
	// ErrRotaSemPath indica entrada sem path na tabela de rotas.
	ErrRotaSemPath = errors.New("rota sem path")
)

// Catalogo é a tabela imutável de rotas validada na inicialização.
// Depois de construído, nada nele muda durante a vida do processo.
type Catalogo struct {
	rotas map[string]Rota
	ordem []string
}

// NewCatalogo valida a tabela: paths únicos e não vazios, papéis dentro do
// conjunto fechado. Falha de validação é erro de construção, não de navegação.
func NewCatalogo(rotas []Rota) (*Catalogo, error) {
	c := &Catalogo{rotas: make(map[string]Rota, len(rotas))}
	for _, r := range rotas {
		path := strings.TrimSpace(r.Path)
		if path == "" {
			return nil, ErrRotaSemPath
		}
		if _, ok := c.rotas[path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrRotaDuplicada, path)
		}
		for _, p := range r.Papeis {
			if !p.Valido() {
				return nil, fmt.Errorf("rota %s: %w: %q", path, auth.ErrPapelDesconhecido, p)
			}
		}
		r.Path = path
		c.rotas[path] = r
		c.ordem = append(c.ordem, path)
	}
	return c, nil
}

// Lookup devolve a rota do path. Path desconhecido é um desfecho próprio,
// distinto de falha de autorização.
func (c *Catalogo) Lookup(path string) (Rota, bool) {
	r, ok := c.rotas[path]
	return r, ok
}

// IsPublic informa se o path dispensa autenticação. Paths desconhecidos não
// são públicos.
func (c *Catalogo) IsPublic(path string) bool {
	r, ok := c.rotas[path]
	return ok && r.Publica
}

// AllowedRoles devolve o conjunto de capacidades do path. Vazio em rota
// protegida admite qualquer papel autenticado.
func (c *Catalogo) AllowedRoles(path string) []auth.Papel {
	r, ok := c.rotas[path]
	if !ok || len(r.Papeis) == 0 {
		return nil
	}
	out := make([]auth.Papel, len(r.Papeis))
	copy(out, r.Papeis)
	return out
}

// Rotas devolve a tabela na ordem de declaração.
func (c *Catalogo) Rotas() []Rota {
	out := make([]Rota, 0, len(c.ordem))
	for _, path := range c.ordem {
		out = append(out, c.rotas[path])
	}
	return out
}
