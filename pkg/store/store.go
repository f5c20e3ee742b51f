// Package store persists a record of each reduction run so callers can
// audit how a dependency graph's shape changed over time — the natural
// complement to an incremental tracker, which needs to compare today's
// reduction against a prior one.
package store

import (
	"context"
	"time"
)

// Run records the shape of a single reduction: the input graph it was
// computed from, the start-node set requested, and how much the graph
// shrank.
type Run struct {
	ID               string    `json:"id"`
	InputHash        string    `json:"input_hash"`
	StartNodes       []string  `json:"start_nodes"`
	NodeCount        int       `json:"node_count"`
	EdgeCount        int       `json:"edge_count"`
	ReducedNodeCount int       `json:"reduced_node_count"`
	ReducedEdgeCount int       `json:"reduced_edge_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// Store is the interface for reduction-run history backends.
type Store interface {
	// Get retrieves a run by ID. Returns nil, nil if it doesn't exist.
	Get(ctx context.Context, id string) (*Run, error)

	// Set stores a run, keyed by its ID.
	Set(ctx context.Context, run *Run) error

	// Delete removes a run.
	Delete(ctx context.Context, id string) error

	// List returns every stored run, most recent first.
	List(ctx context.Context) ([]*Run, error)

	// Cleanup removes runs older than the given age (optional; may be a
	// no-op for backends with their own retention policy).
	Cleanup(ctx context.Context, olderThan time.Duration) error
}
