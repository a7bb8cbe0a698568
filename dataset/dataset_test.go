package dataset_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/dataset"
)

func TestSampleGraph(t *testing.T) {
	g, err := dataset.SampleGraph()
	require.NoError(t, err)

	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	port, err := g.Node("port_asia_1")
	require.NoError(t, err)
	assert.Equal(t, "Port of Shanghai", port.Name)
	assert.Equal(t, core.CategoryPort, port.Category)
	require.NotNil(t, port.FillLevel, "current_load maps to the fill level")
	assert.Equal(t, 75000.0, *port.FillLevel)
	assert.Equal(t, "Shanghai", port.Location.City)

	sea, err := g.Edge("route_port_warehouse_1")
	require.NoError(t, err)
	assert.Equal(t, core.RouteSea, sea.RouteType)
	assert.Equal(t, 11000.0, sea.Distance)
	assert.Equal(t, 0.3, sea.RiskScore)
}

func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"MissingID", "nodes:\n  - name: x\n"},
		{"NegativeCapacity", "nodes:\n  - id: a\n    capacity: -1\n"},
		{"BadRisk", "nodes:\n  - id: a\n    risk_level: extreme\n"},
		{"BadLatitude", "nodes:\n  - id: a\n    location: {lat: 91}\n"},
		{"RiskScoreAboveOne", "routes:\n  - {id: r, source_id: a, target_id: b, risk_score: 1.5}\n"},
		{"MissingTarget", "routes:\n  - {id: r, source_id: a}\n"},
		{"BadRouteType", "routes:\n  - {id: r, source_id: a, target_id: b, route_type: teleport}\n"},
		{"UnknownField", "nodes:\n  - id: a\n    colour: red\n"},
		{"Malformed", "nodes: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Decode(strings.NewReader(tc.doc), dataset.FormatYAML)
			require.ErrorIs(t, err, dataset.ErrInvalidDataset)
		})
	}

	_, err := dataset.Decode(strings.NewReader("{}"), "toml")
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"name":"tiny","nodes":[{"id":"a","type":"store","capacity":10,"current_stock":4},{"id":"b"}],
		"routes":[{"id":"ab","source_id":"a","target_id":"b","route_type":"air","distance":1,"cost":2,"duration":3,"risk_score":0.5}]}`
	ds, err := dataset.Decode(strings.NewReader(doc), dataset.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "tiny", ds.Name)

	g, err := dataset.Build(ds)
	require.NoError(t, err)
	a, err := g.Node("a")
	require.NoError(t, err)
	u, ok := a.Utilization()
	require.True(t, ok)
	assert.InDelta(t, 0.4, u, 1e-12)

	_, err = dataset.Decode(strings.NewReader(`{"nodes":[{"id":"a","extra":1}]}`), dataset.FormatJSON)
	require.ErrorIs(t, err, dataset.ErrInvalidDataset)
}

func TestBuild_GraphErrors(t *testing.T) {
	dup := &dataset.Dataset{Nodes: []dataset.NodeRecord{{ID: "a"}, {ID: "a"}}}
	_, err := dataset.Build(dup)
	require.ErrorIs(t, err, core.ErrDuplicateID)

	dangling := &dataset.Dataset{
		Nodes:  []dataset.NodeRecord{{ID: "a"}},
		Routes: []dataset.RouteRecord{{ID: "r", SourceID: "a", TargetID: "ghost"}},
	}
	_, err = dataset.Build(dangling)
	require.ErrorIs(t, err, core.ErrUnknownEndpoint)
}

func TestFromGraph_PreservesNetwork(t *testing.T) {
	src, err := dataset.Sample()
	require.NoError(t, err)
	g, err := dataset.Build(src)
	require.NoError(t, err)

	out := dataset.FromGraph("sample", g)
	assert.Equal(t, src, out, "export reproduces the sample document")

	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, out, dataset.FormatJSON))
	back, err := dataset.Decode(&buf, dataset.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, out, back)
}

func TestLoadAndSaveFile(t *testing.T) {
	ds, err := dataset.Sample()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "west-coast.yml")
	ds.Name = ""
	require.NoError(t, dataset.SaveFile(path, ds))

	loaded, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "west-coast", loaded.Name, "name defaults to the file stem")
	assert.Len(t, loaded.Nodes, 7)

	_, err = dataset.LoadFile(filepath.Join(dir, "net.csv"))
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
	_, err = dataset.LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
