package nav

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/esaudelocal/esaude/auth"
)

// rotaDoc é o formato de uma entrada no arquivo de rotas.
type rotaDoc struct {
	Path    string   `koanf:"path"`
	Publica bool     `koanf:"publica"`
	Papeis  []string `koanf:"papeis"`
}

// CarregarRotas lê a tabela de rotas de um arquivo YAML fornecido na
// inicialização. As entradas ainda passam pela validação de NewCatalogo.
func CarregarRotas(path string) ([]Rota, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("nav: carregar rotas: %w", err)
	}

	var doc []rotaDoc
	if err := k.Unmarshal("rotas", &doc); err != nil {
		return nil, fmt.Errorf("nav: decodificar rotas: %w", err)
	}

	rotas := make([]Rota, 0, len(doc))
	for _, item := range doc {
		r := Rota{Path: item.Path, Publica: item.Publica}
		for _, raw := range item.Papeis {
			papel, err := auth.ParsePapel(raw)
			if err != nil {
				return nil, fmt.Errorf("nav: rota %s: %w", item.Path, err)
			}
			r.Papeis = append(r.Papeis, papel)
		}
		rotas = append(rotas, r)
	}
	return rotas, nil
}
