package journal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	a := mkTrade("a", base, 25)
	a.Notes = "notes survive backups"
	a.Tags = []string{"Swing"}

	notes := map[string]string{"2026-01-05": "half size all day"}

	data, err := Export([]Trade{a}, notes, base)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "trades")
	require.Contains(t, raw, "dailyNotes")
	require.Contains(t, raw, "exportDate")

	merged, added, gotNotes, err := Restore(data, nil, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 1)
	assert.Equal(t, a.ID, merged[0].ID)
	assert.Equal(t, a.Notes, merged[0].Notes)
	assert.Equal(t, a.Tags, merged[0].Tags)
	assert.True(t, merged[0].ExitTime.Equal(base))
	assert.Equal(t, notes, gotNotes)
}

func TestRestoreDeduplicates(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	existing := []Trade{mkTrade("a", base, 25)}

	data, err := Export(existing, nil, base)
	require.NoError(t, err)

	merged, added, _, err := Restore(data, existing, time.UTC)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Len(t, merged, 1)
}

func TestRestoreRejectsInvalidBackups(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	existing := []Trade{mkTrade("a", base, 25)}

	cases := []string{
		`not json at all`,
		`{}`,
		`{"trades": null}`,
		`{"trades": "nope"}`,
		`{"trades": 42}`,
		`{"trades": [{"id": "x", "entryTime": "bogus", "exitTime": "bogus"}]}`,
	}

	for _, c := range cases {
		merged, added, _, err := Restore([]byte(c), existing, time.UTC)
		assert.Error(t, err, c)
		assert.Zero(t, added, c)
		// current state untouched on rejection
		assert.Equal(t, existing, merged, c)
	}
}
