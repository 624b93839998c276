package faq

import (
	"backend-faq/internal/models"
	"context"
)

// Source menyediakan dataset FAQ lengkap
type Source interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// Defaults - metadata yang dipakai kalau sumber tidak menyediakan title/description
type Defaults struct {
	Title       string
	Description string
}
