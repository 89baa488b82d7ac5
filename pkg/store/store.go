// Package store persists analysis results so the HTTP API can hand out
// stable ids for previously computed decompositions.
//
// The only production backend is MongoDB ([NewMongoStore]); of the CLI
// commands, only serve (with --mongo) uses the store. Records are identified by random UUIDs, generated at
// insert time - unlike region ids, record ids are not derived from the
// input.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/klintqinami/sese-regions/pkg/graphio"
)

// Record is one archived analysis.
type Record struct {
	ID        string            `bson:"_id" json:"id"`
	GraphHash string            `bson:"graph_hash" json:"graph_hash"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
	Result    graphio.ResultDoc `bson:"result" json:"result"`
}

// NewRecord builds a record with a fresh UUID for the given result.
func NewRecord(doc graphio.ResultDoc, graphHash string) Record {
	return Record{
		ID:        uuid.NewString(),
		GraphHash: graphHash,
		CreatedAt: time.Now().UTC(),
		Result:    doc,
	}
}

// Store archives analysis results.
type Store interface {
	// Insert adds a record.
	Insert(ctx context.Context, rec Record) error

	// Get retrieves a record by id. Returns a NOT_FOUND serr when the id
	// is unknown.
	Get(ctx context.Context, id string) (Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
