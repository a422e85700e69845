package auth

import (
	"errors"
	"fmt"
	"strings"
)

// Papel identifica a capacidade de um(a) profissional dentro da rede distrital.
// O conjunto é fechado: qualquer outra tag é rejeitada na entrada.
type Papel string

const (
	PapelGestor     Papel = "gestor"
	PapelMedico     Papel = "medico"
	PapelEnfermeiro Papel = "enfermeiro"
	PapelAgente     Papel = "agente"
)

// ErrPapelDesconhecido indica tag de papel fora do conjunto reconhecido.
var ErrPapelDesconhecido = errors.New("papel desconhecido")

// ParsePapel normaliza e valida uma tag de papel vinda do backend ou de configuração.
func ParsePapel(raw string) (Papel, error) {
	switch p := Papel(strings.ToLower(strings.TrimSpace(raw))); p {
	case PapelGestor, PapelMedico, PapelEnfermeiro, PapelAgente:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrPapelDesconhecido, raw)
}

// Valido informa se o papel pertence ao conjunto fechado.
func (p Papel) Valido() bool {
	switch p {
	case PapelGestor, PapelMedico, PapelEnfermeiro, PapelAgente:
		return true
	}
	return false
}

// Todos lista os papéis reconhecidos na ordem canônica.
func Todos() []Papel {
	return []Papel{PapelGestor, PapelMedico, PapelEnfermeiro, PapelAgente}
}
