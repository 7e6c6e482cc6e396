package service

import (
	"context"

	"FinScreen/internal/domain/models"
)

// RemoteFetcher performs one throttled call to the data provider and decodes
// the JSON array response into dest.
type RemoteFetcher interface {
	Fetch(ctx context.Context, endpoint models.Endpoint, symbol string, period models.TimePeriod, dest any) error
}

// DataEnsurer brings a symbol record's series up to date. The caller must
// hold the record's lock.
type DataEnsurer interface {
	// Ensure refreshes the series for kind and period if stale and reports
	// whether a refresh happened.
	Ensure(ctx context.Context, rec *models.SymbolRecord, kind models.StatementKind, period models.TimePeriod) bool
	// All ensures every series the API exposes.
	All(ctx context.Context, rec *models.SymbolRecord)
}
