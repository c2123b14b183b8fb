package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixed = `
- {id: 1, v10: x, price: 2.5}
- {id: 2, v2: y, price: 4}
- {id: 3, price: oops}
`

func load(t *testing.T, doc string) []records.Record {
	t.Helper()

	recs, err := records.Load(strings.NewReader(doc))
	require.NoError(t, err)

	return recs
}

func TestFieldUsages(t *testing.T) {
	t.Parallel()

	usage, err := FieldUsages(load(t, mixed))
	require.NoError(t, err)

	assert.Equal(t, []FieldUsage{
		{Name: "id", Records: 3},
		{Name: "price", Records: 3},
		{Name: "v2", Records: 1},
		{Name: "v10", Records: 1},
	}, usage)

	empty, err := FieldUsages(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFieldStats(t *testing.T) {
	t.Parallel()

	stats, err := FieldStats(load(t, mixed), "price")
	require.NoError(t, err)

	assert.Equal(t, "price", stats.Field)
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 6.5, stats.Sum, 1e-9)
	assert.InDelta(t, 3.25, stats.Average, 1e-9)
	assert.InDelta(t, 2.5, stats.Min, 1e-9)
	assert.InDelta(t, 4.0, stats.Max, 1e-9)

	_, err = FieldStats(load(t, mixed), "v2")
	require.ErrorIs(t, err, errors.ErrEmptySequence)
}

func TestFieldStatsWideIntegers(t *testing.T) {
	t.Parallel()

	recs := load(t, `
- {n: 1}
- {n: 18446744073709551615}
- {n: -9223372036854775808}
- {n: "12"}
`)

	stats, err := FieldStats(recs, "n")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 18446744073709551615.0, stats.Max, 1)
	assert.InDelta(t, -9223372036854775808.0, stats.Min, 1)
}

func TestFieldsCommand(t *testing.T) { //nolint:paralleltest
	res := run(t, team, "fields", "FILE")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "age\t5\nname\t5\nteam\t5\n", res.stdout)
}

func TestStatsCommand(t *testing.T) { //nolint:paralleltest
	res := run(t, team, "stats", "age", "FILE")

	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "count=5 sum=194 average=38.8 min=29 max=52\n", res.stdout)

	res = run(t, team, "--format", "json", "stats", "age", "FILE")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var resp struct {
		Data Stats `json:"data"`
	}

	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, 5, resp.Data.Count)

	res = run(t, team, "stats", "name", "FILE")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, `no numeric values for "name"`)
}
