// Package pkg provides the core libraries for graphreduce.
//
// # Overview
//
// graphreduce collapses a directed multigraph down to a reduced DAG: nodes
// that form a cycle collapse into a single representative, and interior
// nodes that aren't start nodes, leaves, or merge points are elided so only
// the structurally significant vertices remain. The pkg directory is
// organized into:
//
//  1. Graph primitives ([graph], [unionfind])
//  2. The reduction engine ([reduce])
//  3. Dependency tracking ([tracker])
//  4. Caching and persistence ([cache], [store])
//  5. Rendering ([render/dot])
//  6. Ambient concerns ([config], [errors], [observability])
//
// # Architecture
//
// The typical data flow through graphreduce:
//
//	JSON node-link graph
//	         ↓
//	    [graph] package (generic directed multigraph)
//	         ↓
//	    [reduce] package (classify cycles, construct reduced DAG)
//	         ↓
//	    [render/dot] package (DOT/SVG) or JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/graphreduce/graphreduce/pkg/graph"
//	    "github.com/graphreduce/graphreduce/pkg/reduce"
//	)
//
//	g, _ := graph.ReadJSON(r)
//	reduced, _ := reduce.New[string](g, []graph.NodeIndex{start}).Compute()
//
// # Main Packages
//
// [graph] - A generic directed multigraph ([graph.Graph]) with node payloads
// of any type, plus JSON node-link encode/decode.
//
// [unionfind] - Union-find with path compression and union by rank, used by
// [reduce] to collapse cycles into a single representative node.
//
// [reduce] - The two-phase reduction engine: classify (iterative DFS,
// tri-color marking, cycle collapse via union-find) then construct (retained
// node selection, nearest-retained-ancestor edge rewiring).
//
// [tracker] - An incremental-computation dependency tracker: declare which
// work-products depend on which inputs, reduce, and report which retained
// work-products are downstream of changed inputs.
//
// [cache] - A pluggable byte-cache ([cache.Cache]) for reduction results and
// rendered output, with in-memory null, on-disk file, and Redis backends,
// and a deterministic, option-sensitive key scheme ([cache.Keyer]).
//
// [store] - Persistence for run history ([store.Run]), with file-backed and
// MongoDB-backed implementations.
//
// [render/dot] - Graphviz DOT generation and SVG rendering for reduced
// graphs.
//
// [config] - TOML-based configuration for cache and store backends.
//
// [errors] - Structured, machine-readable error codes shared by the CLI and
// HTTP API.
//
// [observability] - Hook registries for reduction, cache, and API events,
// so callers can wire in their own metrics/tracing without a hard dependency.
//
// [api] - The HTTP API: POST /reduce and GET /runs/{id}.
//
// # Testing
//
//	go test ./...
//
// [graph]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/graph
// [unionfind]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/unionfind
// [reduce]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/reduce
// [tracker]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/tracker
// [cache]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/cache
// [store]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/store
// [render/dot]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/render/dot
// [config]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/config
// [errors]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/errors
// [observability]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/observability
// [api]: https://pkg.go.dev/github.com/graphreduce/graphreduce/pkg/api
package pkg
