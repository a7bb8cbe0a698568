package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
)

// ErrSourceNotFound is returned when the specified source node is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source node not found")

// ErrSinkNotFound is returned when the specified sink node is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink node not found")

// ErrSameEndpoints is returned when source and sink are the same node.
var ErrSameEndpoints = errors.New("flow: source and sink are the same node")

// ErrTooFewNodes is returned by graph-wide measures on fewer than two nodes.
var ErrTooFewNodes = errors.New("flow: at least two nodes required")

// EdgeError is returned when a route has a negative capacity.
type EdgeError struct {
	EdgeID   string
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q (%q→%q): %g", e.EdgeID, e.From, e.To, e.Cap)
}

// CapacityFunc maps a route to its capacity in the flow network.
type CapacityFunc func(e core.Edge) float64

// UnitCapacity gives every route capacity 1; max-flow then counts
// edge-disjoint paths.
func UnitCapacity(core.Edge) float64 { return 1 }

// FlowOptions configures the max-flow routines.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
type FlowOptions struct {
	Epsilon float64
}

// DefaultOptions returns FlowOptions with Epsilon = 1e-9.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9}
}

func (o *FlowOptions) epsilon() float64 {
	if o == nil || o.Epsilon <= 0 {
		return 1e-9
	}
	return o.Epsilon
}
