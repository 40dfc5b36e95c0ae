package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInputUnavailable = errors.New("input text unavailable")

// TextRepository provides access to the source text a quiz is generated from.
type TextRepository struct {
	path string
}

// NewTextRepository creates a new TextRepository reading from path.
func NewTextRepository(path string) *TextRepository {
	return &TextRepository{path: path}
}

// Path returns the location of the source text.
func (r *TextRepository) Path() string {
	return r.path
}

// Load reads the whole UTF-8 source text.
func (r *TextRepository) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInputUnavailable, r.path)
	}

	return string(data), nil
}
