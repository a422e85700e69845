package nav

import "github.com/esaudelocal/esaude/auth"

// Rota descreve um destino navegável e seu conjunto de capacidades.
// Papeis vazio em rota não pública significa "qualquer papel autenticado".
type Rota struct {
	Path    string
	Publica bool
	Papeis  []auth.Papel
}

// LoginPath é o ponto de entrada público para onde navegações não
// autenticadas são redirecionadas.
const LoginPath = "/"

// DefaultRotas devolve a tabela de rotas de produção da aplicação.
func DefaultRotas() []Rota {
	todos := auth.Todos()
	return []Rota{
		{Path: LoginPath, Publica: true},
		{Path: "/dashboard/gestor", Papeis: []auth.Papel{auth.PapelGestor}},
		{Path: "/dashboard/medico", Papeis: []auth.Papel{auth.PapelMedico}},
		{Path: "/dashboard/profissional", Papeis: []auth.Papel{auth.PapelAgente, auth.PapelEnfermeiro}},
		{Path: "/usuarios", Papeis: []auth.Papel{auth.PapelGestor}},
		{Path: "/utentes", Papeis: todos},
		{Path: "/triagens", Papeis: todos},
		{Path: "/consultas", Papeis: todos},
		{Path: "/prescricoes", Papeis: []auth.Papel{auth.PapelMedico}},
		{Path: "/leituras-clinicas", Papeis: todos},
		{Path: "/relatorios", Papeis: []auth.Papel{auth.PapelGestor}},
		{Path: "/zonas", Papeis: []auth.Papel{auth.PapelGestor}},
	}
}

// HomePath devolve a rota de destino após o login, conforme o papel.
func HomePath(p auth.Papel) string {
	switch p {
	case auth.PapelGestor:
		return "/dashboard/gestor"
	case auth.PapelMedico:
		return "/dashboard/medico"
	case auth.PapelEnfermeiro, auth.PapelAgente:
		return "/dashboard/profissional"
	}
	return LoginPath
}
