package menu

import (
	"github.com/rs/zerolog/log"

	"github.com/esaudelocal/esaude/auth"
	"github.com/esaudelocal/esaude/nav"
)

// Item representa uma entrada navegável exibida na barra lateral.
// O ícone é a chave do conjunto de ícones usado pelo host.
type Item struct {
	Label string
	Path  string
	Icon  string
}

// Tabelas fixas por papel, na ordem de exibição. O menu é apresentação:
// esconder um link não protege a rota, o gate revalida toda navegação direta.
var porPapel = map[auth.Papel][]Item{
	auth.PapelGestor: {
		{Label: "Dashboard", Path: "/dashboard/gestor", Icon: "chart-bar"},
		{Label: "Usuários", Path: "/usuarios", Icon: "users"},
		{Label: "Utentes", Path: "/utentes", Icon: "user"},
		{Label: "Triagem", Path: "/triagens", Icon: "clipboard"},
		{Label: "Consultas", Path: "/consultas", Icon: "calendar"},
		{Label: "Leituras", Path: "/leituras-clinicas", Icon: "heart-pulse"},
		{Label: "Zonas", Path: "/zonas", Icon: "map-pin"},
		{Label: "Relatório", Path: "/relatorios", Icon: "file-text"},
	},
	auth.PapelMedico: {
		{Label: "Dashboard", Path: "/dashboard/medico", Icon: "chart-bar"},
		{Label: "Utentes", Path: "/utentes", Icon: "user"},
		{Label: "Triagem", Path: "/triagens", Icon: "clipboard"},
		{Label: "Consultas", Path: "/consultas", Icon: "calendar"},
		{Label: "Prescrição", Path: "/prescricoes", Icon: "pill"},
		{Label: "Leituras", Path: "/leituras-clinicas", Icon: "heart-pulse"},
	},
	auth.PapelEnfermeiro: {
		{Label: "Dashboard", Path: "/dashboard/profissional", Icon: "chart-bar"},
		{Label: "Utentes", Path: "/utentes", Icon: "user"},
		{Label: "Triagem", Path: "/triagens", Icon: "clipboard"},
		{Label: "Consultas", Path: "/consultas", Icon: "calendar"},
		{Label: "Leituras", Path: "/leituras-clinicas", Icon: "heart-pulse"},
	},
	auth.PapelAgente: {
		{Label: "Dashboard", Path: "/dashboard/profissional", Icon: "chart-bar"},
		{Label: "Utentes", Path: "/utentes", Icon: "user"},
		{Label: "Triagem", Path: "/triagens", Icon: "clipboard"},
		{Label: "Consultas", Path: "/consultas", Icon: "calendar"},
		{Label: "Leituras", Path: "/leituras-clinicas", Icon: "heart-pulse"},
	},
}

// PorPapel devolve as entradas de menu do papel, já na ordem de exibição.
// Papel desconhecido devolve lista vazia, sem erro.
func PorPapel(p auth.Papel) []Item {
	itens, ok := porPapel[p]
	if !ok {
		return nil
	}
	out := make([]Item, len(itens))
	copy(out, itens)
	return out
}

// Divergencia descreve uma inconsistência entre as tabelas de menu e o
// catálogo de rotas.
type Divergencia struct {
	Papel  auth.Papel
	Item   Item
	Motivo string
}

// Auditar compara as tabelas de menu com o catálogo e sinaliza divergências
// sem resolvê-las: o catálogo segue sendo a única autoridade de acesso.
// Cada achado também vira um warning estruturado.
func Auditar(cat *nav.Catalogo) []Divergencia {
	var achados []Divergencia
	for _, papel := range auth.Todos() {
		for _, item := range porPapel[papel] {
			rota, ok := cat.Lookup(item.Path)
			if !ok {
				achados = append(achados, Divergencia{Papel: papel, Item: item, Motivo: "rota ausente do catálogo"})
				continue
			}
			if rota.Publica || len(rota.Papeis) == 0 {
				continue
			}
			permitido := false
			for _, p := range rota.Papeis {
				if p == papel {
					permitido = true
					break
				}
			}
			if !permitido {
				achados = append(achados, Divergencia{Papel: papel, Item: item, Motivo: "papel sem acesso à rota"})
			}
		}
	}

	for _, d := range achados {
		log.Warn().
			Str("papel", string(d.Papel)).
			Str("path", d.Item.Path).
			Str("motivo", d.Motivo).
			Msg("menu divergente do catálogo de rotas")
	}
	return achados
}
