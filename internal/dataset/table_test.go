package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		[]string{"price", "brand", "power"},
		[][]string{
			{"10000", "VW", "85"},
			{"12000", "Audi", "110"},
			{"9500", "VW", "70"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewTable(t *testing.T) {
	t.Run("rejects duplicate columns", func(t *testing.T) {
		_, err := NewTable([]string{"a", "a"}, nil)
		assert.ErrorContains(t, err, "duplicate column")
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := NewTable([]string{"a", "b"}, [][]string{{"1"}})
		assert.ErrorContains(t, err, "expected 2")
	})

	t.Run("rejects empty header", func(t *testing.T) {
		_, err := NewTable(nil, nil)
		assert.Error(t, err)
	})
}

func TestTableAccessors(t *testing.T) {
	tbl := testTable(t)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"price", "brand", "power"}, tbl.Headers())
	assert.True(t, tbl.HasColumn("brand"))
	assert.False(t, tbl.HasColumn("mileage"))

	col, err := tbl.Column("brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"VW", "Audi", "VW"}, col)

	_, err = tbl.Column("missing")
	assert.ErrorContains(t, err, "not found")

	assert.Equal(t, []string{"12000", "Audi", "110"}, tbl.Row(1))
}

func TestMissingColumns(t *testing.T) {
	tbl := testTable(t)
	assert.Empty(t, tbl.MissingColumns([]string{"price", "brand"}))
	assert.Equal(t, []string{"mileage", "year"}, tbl.MissingColumns([]string{"year", "price", "mileage"}))
}

func TestTableTransformsAreSnapshots(t *testing.T) {
	tbl := testTable(t)

	t.Run("Select", func(t *testing.T) {
		sel, err := tbl.Select("power", "price")
		require.NoError(t, err)
		assert.Equal(t, []string{"power", "price"}, sel.Headers())
		assert.Equal(t, []string{"85", "10000"}, sel.Row(0))
		// Original untouched.
		assert.Equal(t, []string{"price", "brand", "power"}, tbl.Headers())
	})

	t.Run("Filter", func(t *testing.T) {
		filtered, err := tbl.Filter([]bool{true, false, true})
		require.NoError(t, err)
		assert.Equal(t, 2, filtered.NumRows())
		assert.Equal(t, 3, tbl.NumRows())

		_, err = tbl.Filter([]bool{true})
		assert.ErrorContains(t, err, "mask")
	})

	t.Run("WithColumn", func(t *testing.T) {
		replaced, err := tbl.WithColumn("brand", []string{"a", "b", "c"})
		require.NoError(t, err)
		col, err := replaced.Column("brand")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, col)

		orig, err := tbl.Column("brand")
		require.NoError(t, err)
		assert.Equal(t, []string{"VW", "Audi", "VW"}, orig)

		_, err = tbl.WithColumn("brand", []string{"a"})
		assert.ErrorContains(t, err, "expected 3")
	})
}
