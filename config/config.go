package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config centraliza a configuração que o host fornece ao núcleo.
type Config struct {
	APIBaseURL  string
	SessionFile string
	RoutesFile  string
	HTTPTimeout time.Duration
}

// Load carrega variáveis de ambiente (e um .env opcional) e aplica defaults
// seguros. ESAUDE_ROUTES_FILE vazio mantém a tabela de rotas embutida.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.APIBaseURL = strings.TrimSpace(getEnv("ESAUDE_API_BASE_URL", ""))
	if cfg.APIBaseURL == "" {
		return nil, errors.New("ESAUDE_API_BASE_URL obrigatória")
	}

	cfg.SessionFile = strings.TrimSpace(getEnv("ESAUDE_SESSION_FILE", ""))
	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			cfg.SessionFile = "sessao.json"
		} else {
			cfg.SessionFile = filepath.Join(dir, "esaude", "sessao.json")
		}
	}

	cfg.RoutesFile = strings.TrimSpace(getEnv("ESAUDE_ROUTES_FILE", ""))

	timeout, err := parseDurationEnv("ESAUDE_HTTP_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}
