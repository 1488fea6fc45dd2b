package ports

import (
	"context"

	"prosignal/domain/report"
)

// QueryGeneratorPort is the tier-4 boundary collaborator. It receives the
// filtered detail payload plus the opaque project/dataset identifier pair
// and returns a named collection of query documents (name -> query text).
// Nothing else is required of it.
type QueryGeneratorPort interface {
	GenerateQueries(ctx context.Context, payload report.DetailPayload, projectID, datasetID string) (map[string]string, error)
}
