package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/analyzer"
	"github.com/katalvlaran/supplynet/dataset"
	"github.com/katalvlaran/supplynet/optimizer"
	"github.com/katalvlaran/supplynet/store"
)

// run executes the CLI with an isolated config and repository in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(dir, "supplynet.yaml")
	if _, err := os.Stat(cfgPath); err != nil {
		body := "database:\n  path: " + filepath.Join(dir, "supplynet.db") + "\nlog:\n  level: error\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestAnalyzeSample(t *testing.T) {
	out, err := run(t, t.TempDir(), "analyze")
	require.NoError(t, err)

	var rep analyzer.NetworkReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 7, rep.Overview.TotalNodes)
	assert.Equal(t, 0.34, rep.Resilience.Score)
	assert.Len(t, rep.CriticalNodes, 3)
}

func TestAnalyzeFlags(t *testing.T) {
	out, err := run(t, t.TempDir(), "analyze", "--strategy", "global", "--critical", "5")
	require.NoError(t, err)

	var rep analyzer.NetworkReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, analyzer.StrategyGlobal, rep.Resilience.Strategy)
	assert.Len(t, rep.CriticalNodes, 5)

	_, err = run(t, t.TempDir(), "analyze", "--strategy", "vibes")
	require.Error(t, err)
}

func TestRoutes(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "routes", "--from", "supplier_asia_1", "--to", "store_west_1")
	require.NoError(t, err)
	var p2p optimizer.RouteResult
	require.NoError(t, json.Unmarshal([]byte(out), &p2p))
	assert.Equal(t, optimizer.ModePointToPoint, p2p.Mode)
	require.Len(t, p2p.OptimalRoutes, 3)
	assert.Equal(t, 3800.0, p2p.OptimalRoutes[1].Metrics.TotalCost)

	out, err = run(t, dir, "routes", "--top", "2")
	require.NoError(t, err)
	var global optimizer.RouteResult
	require.NoError(t, json.Unmarshal([]byte(out), &global))
	require.Len(t, global.RankedRoutes, 2)
	assert.Equal(t, "route_supplier_port_1", global.RankedRoutes[0].RouteID)

	// risk-only weighting favours the safest routes
	out, err = run(t, dir, "routes", "--top", "1", "--w-distance", "0", "--w-cost", "0", "--w-duration", "0", "--w-risk", "1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &global))
	assert.Equal(t, "route_east_store", global.RankedRoutes[0].RouteID)
	assert.Equal(t, 0.95, global.RankedRoutes[0].Score)

	_, err = run(t, dir, "routes", "--from", "nowhere", "--to", "store_west_1")
	require.Error(t, err)
}

func TestImportExportDatasets(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "net.json")
	ds, err := dataset.Sample()
	require.NoError(t, err)
	require.NoError(t, dataset.SaveFile(src, ds))

	out, err := run(t, dir, "import", src, "--name", "west")
	require.NoError(t, err)
	assert.Contains(t, out, `imported "west": 7 nodes, 5 routes`)

	out, err = run(t, dir, "datasets")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "west")

	out, err = run(t, dir, "analyze", "--dataset", "west")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_nodes": 7`)

	dst := filepath.Join(dir, "out.yaml")
	_, err = run(t, dir, "export", "west", dst)
	require.NoError(t, err)
	back, err := dataset.LoadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "west", back.Name)
	assert.Len(t, back.Routes, 5)

	out, err = run(t, dir, "export", "sample", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"source_id": "supplier_asia_1"`)

	_, err = run(t, dir, "datasets", "delete", "west")
	require.NoError(t, err)
	_, err = run(t, dir, "analyze", "--dataset", "west")
	require.ErrorIs(t, err, store.ErrDatasetNotFound)
}

func TestImportRejectsBrokenGraph(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	doc := "nodes:\n  - id: a\nroutes:\n  - {id: r, source_id: a, target_id: ghost}\n"
	require.NoError(t, os.WriteFile(bad, []byte(doc), 0o644))

	_, err := run(t, dir, "import", bad)
	require.Error(t, err)

	out, err := run(t, dir, "datasets")
	require.NoError(t, err)
	assert.NotContains(t, out, "bad")
}
