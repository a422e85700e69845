package session

import "github.com/esaudelocal/esaude/auth"

// Sessao descreve a identidade autenticada no dispositivo. Existe no máximo
// uma sessão por processo; o papel é imutável enquanto ela durar.
type Sessao struct {
	ID    string     `json:"id"`
	Nome  string     `json:"nome"`
	Papel auth.Papel `json:"papel"`
	Token string     `json:"token"`
}
