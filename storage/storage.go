package storage

import (
	"context"
	"errors"
)

// KV é o slot durável de chave única usado para a sessão local do dispositivo.
// O conteúdo é opaco para a camada de armazenamento.
type KV interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// ErrVazio é retornado por Read quando o slot nunca foi gravado.
var ErrVazio = errors.New("storage: slot vazio")
