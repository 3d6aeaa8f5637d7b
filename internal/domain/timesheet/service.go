package timesheet

import "context"

// IngestService reconciles one raw export document into the relational
// store. The payload is the raw object body as fetched from blob storage.
type IngestService interface {
	IngestDocument(ctx context.Context, payload []byte) (IngestResult, error)
}
