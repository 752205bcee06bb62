package quote

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested quote does not exist in the store.
var ErrNotFound = errors.New("orçamento não encontrado")

// ValidationError collects per-field messages from a rejected build request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validação falhou em %d campo(s)", len(e.Fields))
}

// DuplicateIDError signals an append with an id already present. The id
// scheme makes this unreachable in practice, so callers treat it as an
// internal invariant violation.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("quote id duplicado: %s", e.ID)
}
