package analyzer

import (
	"sort"

	"github.com/katalvlaran/supplynet/core"
)

const (
	bottleneckThreshold = 0.9
	severityThreshold   = 0.95

	// BottleneckCapacity is the only bottleneck type the analyzer detects.
	BottleneckCapacity = "capacity"
)

// Bottlenecks lists nodes whose fill level exceeds 90% of capacity, sorted by
// node ID. Nodes without a fill level or with zero capacity are skipped.
// Severity is high above 95%, otherwise medium.
func Bottlenecks(s *core.Snapshot) []Bottleneck {
	out := make([]Bottleneck, 0)
	for _, n := range s.Nodes() {
		u, ok := n.Utilization()
		if !ok || u <= bottleneckThreshold {
			continue
		}
		sev := LevelMedium
		if u > severityThreshold {
			sev = LevelHigh
		}
		out = append(out, Bottleneck{
			NodeID:      n.ID,
			Name:        n.Name,
			Type:        BottleneckCapacity,
			Utilization: round(u, 2),
			Severity:    sev,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NodeID < out[j].NodeID })
	return out
}

// Recommendations returns the advisory texts for a report: redundancy when
// resilience < 0.5, capacity when bottlenecks exist, expansion when the
// network has fewer than 5 nodes, then monitoring and contingency planning.
func Recommendations(resilience float64, bottlenecks, nodes int) []string {
	out := make([]string, 0, 5)
	if resilience < 0.5 {
		out = append(out, RecommendRedundancy)
	}
	if bottlenecks > 0 {
		out = append(out, RecommendCapacity)
	}
	if nodes < 5 {
		out = append(out, RecommendExpansion)
	}
	return append(out, RecommendMonitoring, RecommendContingency)
}
