package partnerio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
  {"id": 1, "name": "Alice", "parent_id": null, "monthly_revenue": 2000},
  {"id": 2, "name": "Bob", "parent_id": 1, "monthly_revenue": 1000.5},
  {"id": 3, "parent_id": 1, "monthly_revenue": 0}
]`

func TestReadPartners(t *testing.T) {
	partners, err := ReadPartners(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, partners, 3)

	assert.Equal(t, 1, partners[0].ID)
	assert.Nil(t, partners[0].ParentID)
	assert.Equal(t, "Alice", partners[0].Name)

	require.NotNil(t, partners[1].ParentID)
	assert.Equal(t, 1, *partners[1].ParentID)
	assert.Equal(t, 1000.5, partners[1].MonthlyRevenue)

	assert.Empty(t, partners[2].Name)
}

func TestReadPartners_Malformed(t *testing.T) {
	_, err := ReadPartners(strings.NewReader(`{"id": 1}`))
	assert.ErrorContains(t, err, "decode partners")
}

func TestWriteCommissions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommissions(&buf, map[string]float64{"2": 0.83, "1": 5, "10": 0}))

	out := buf.String()
	assert.JSONEq(t, `{"1": 5, "10": 0, "2": 0.83}`, out)
	assert.True(t, strings.HasPrefix(out, "{\n  \"1\": 5,"), out)
	assert.Less(t, strings.Index(out, `"10"`), strings.Index(out, `"2"`))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "partners.json")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o600))

	partners, err := LoadPartners(in)
	require.NoError(t, err)
	assert.Len(t, partners, 3)

	out := filepath.Join(dir, "commissions.json")
	require.NoError(t, SaveCommissions(out, map[string]float64{"1": 1.5}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": 1.5}`, string(raw))

	_, err = LoadPartners(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "open partners file")
}
