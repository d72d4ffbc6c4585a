package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.NotNil(t, loc)

	tbl, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, 5.0, tbl.TickValue("MES"))
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tradelog.yaml")
	doc := `journal:
  db_path: /tmp/test.sqlite
report:
  timezone: America/New_York
  morning_cutoff: 11
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, 11, cfg.Report.MorningCutoff)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tradelog.json")
	doc := `{"journal": {"db_path": "x.sqlite"}, "report": {"timezone": "UTC", "morning_cutoff": 12}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x.sqlite", cfg.Journal.DBPath)
}

func TestLoadFromFileRejectsBadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	badTZ := filepath.Join(dir, "tz.yaml")
	require.NoError(t, os.WriteFile(badTZ, []byte("report:\n  timezone: Mars/Olympus\n"), 0644))
	_, err := LoadFromFile(badTZ)
	assert.Error(t, err)

	badCutoff := filepath.Join(dir, "cutoff.yaml")
	require.NoError(t, os.WriteFile(badCutoff, []byte("report:\n  morning_cutoff: 99\n"), 0644))
	_, err = LoadFromFile(badCutoff)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
