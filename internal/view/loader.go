package view

import (
	"backend-faq/internal/models"
	"context"
	"log"
)

type Fetcher interface {
	FetchDataset(ctx context.Context) (*models.Dataset, error)
}

// Result is the outcome of the one initial fetch, handed back to the
// state owner and applied with State.Resolve.
type Result struct {
	Dataset *models.Dataset
	Err     error
}

// Fetch runs the fetch. Failures are logged for the operator; the user
// only ever sees the failed phase.
func Fetch(ctx context.Context, f Fetcher) Result {
	ds, err := f.FetchDataset(ctx)
	if err != nil {
		log.Printf("view: failed to load FAQ: %v", err)
	}
	return Result{Dataset: ds, Err: err}
}
