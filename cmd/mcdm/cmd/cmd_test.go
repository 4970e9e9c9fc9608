package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcdm/analysis"
	"github.com/katalvlaran/mcdm/internal/config"
	"github.com/katalvlaran/mcdm/store"
)

const laptopsYAML = `criteria_names: [price, ram, storage, rating]
criteria_types: [min, max, max, max]
alternative_names: [L1, L2, L3, L4, L5]
matrix:
  - [250, 16, 12, 5]
  - [200, 16, 8, 3]
  - [300, 32, 16, 4]
  - [275, 32, 8, 4]
  - [225, 16, 16, 2]
`

func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvConfig, config.EnvDataDir, config.EnvOutput, config.EnvLog} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "laptops.yaml"), []byte(laptopsYAML), 0o600))

	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRank_JSONAndSave(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "data")

	out, _, err := run(t, "rank", filepath.Join(dir, "laptops.yaml"), "-o", "json", "--save", "--data-dir", data)
	require.NoError(t, err)

	var rep analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, analysis.KindCriticTopsis, rep.Kind)
	require.NotNil(t, rep.Topsis)
	assert.Equal(t, []int{3, 5, 1, 2, 4}, rep.Topsis.Ranking)

	assert.FileExists(t, filepath.Join(data, "critic_topsis_results.json"))

	table, _, err := run(t, "show", "rank", "--data-dir", data)
	require.NoError(t, err)
	assert.Contains(t, table, "RANK")
	assert.Regexp(t, `(?m)^1\s+L3\s+0\.6946`, table)
}

func TestCritic_YAMLWithoutSave(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "data")

	out, _, err := run(t, "critic", filepath.Join(dir, "laptops.yaml"), "-o", "yaml", "--data-dir", data)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "critic", doc["kind"])
	assert.NotContains(t, doc, "topsis")
	assert.NoDirExists(t, data, "nothing is stored without --save")
}

func TestExportCritic_FeedsTopsis(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "data")
	ready := filepath.Join(dir, "ready.csv")

	_, _, err := run(t, "critic", filepath.Join(dir, "laptops.yaml"), "--save", "--data-dir", data)
	require.NoError(t, err)
	_, _, err = run(t, "export", "critic", ready, "--data-dir", data)
	require.NoError(t, err)

	out, _, err := run(t, "topsis", ready, "-o", "json", "--data-dir", data)
	require.NoError(t, err)
	var rep analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.NotNil(t, rep.Topsis)
	assert.Equal(t, []int{3, 5, 1, 2, 4}, rep.Topsis.Ranking)
	assert.InDelta(t, 0.6946198021300547, rep.Topsis.Closeness[2], 1e-12)
}

func TestExportRanking_Stdout(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "data")

	_, _, err := run(t, "rank", filepath.Join(dir, "laptops.yaml"), "--save", "--data-dir", data)
	require.NoError(t, err)

	out, _, err := run(t, "export", "rank", "-", "--data-dir", data, "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "rank;alternative;closeness\n1;L3;0.694619802130")
	assert.Contains(t, out, "\n2;L4;")

	out, _, err = run(t, "export", "rank", "-", "--weights-only", "--data-dir", data)
	require.NoError(t, err)
	assert.Contains(t, out, "criterion,direction,weight\nprice,min,0.27156958983563")
}

func TestVerboseLogsToStderr(t *testing.T) {
	dir := isolate(t)

	_, stderr, err := run(t, "critic", filepath.Join(dir, "laptops.yaml"), "-v", "--data-dir", filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "analysis complete")

	_, stderr, err = run(t, "critic", filepath.Join(dir, "laptops.yaml"), "--data-dir", filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestErrors(t *testing.T) {
	dir := isolate(t)
	data := filepath.Join(dir, "data")
	file := filepath.Join(dir, "laptops.yaml")

	_, _, err := run(t, "topsis", file, "--data-dir", data)
	assert.ErrorIs(t, err, analysis.ErrNoWeights)

	_, _, err = run(t, "show", "topsis", "--data-dir", data)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, _, err = run(t, "show", "vikor", "--data-dir", data)
	assert.ErrorIs(t, err, analysis.ErrUnknownKind)

	_, _, err = run(t, "critic", file, "-o", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "critic")
	assert.Error(t, err)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "mcdm.toml")
	data := filepath.Join(dir, "from-config")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output = \"json\"\nsave = true\ndata_dir = \""+filepath.ToSlash(data)+"\"\n"), 0o600))

	out, _, err := run(t, "critic", filepath.Join(dir, "laptops.yaml"), "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.FileExists(t, filepath.Join(data, "critic_results.json"))

	out, _, err = run(t, "critic", filepath.Join(dir, "laptops.yaml"), "--config", cfgPath, "-o", "table", "--save=false")
	require.NoError(t, err)
	assert.Contains(t, out, "CRITERION")
}
