package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV persiste o slot em um arquivo local, restrito ao dispositivo.
type FileKV struct {
	path string
}

// NewFileKV prepara o diretório do arquivo e devolve o slot.
func NewFileKV(path string) (*FileKV, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage: caminho do arquivo obrigatório")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("storage: criar diretório: %w", err)
		}
	}
	return &FileKV{path: path}, nil
}

// Read devolve o conteúdo gravado ou ErrVazio.
func (f *FileKV) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrVazio
		}
		return nil, err
	}
	return data, nil
}

// Write grava de forma atômica via arquivo temporário e rename.
func (f *FileKV) Write(ctx context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Delete remove o slot; remover um slot inexistente não é erro.
func (f *FileKV) Delete(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
