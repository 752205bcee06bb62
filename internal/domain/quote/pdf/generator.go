package pdf

import "refrigeracao-miranda/go_backend/internal/domain/quote/render"

type Generator interface {
	Generate(doc render.Document) ([]byte, error)
}
