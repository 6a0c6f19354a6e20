package encode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseTopN(t *testing.T) {
	t.Run("bounds a 25-value vocabulary at 20 plus Other", func(t *testing.T) {
		// A–T occur twice each, U–Y once each.
		var values []string
		for r := 'A'; r <= 'T'; r++ {
			values = append(values, string(r), string(r))
		}
		for r := 'U'; r <= 'Y'; r++ {
			values = append(values, string(r))
		}

		relabeled, kept := CollapseTopN(values, 20)
		require.Len(t, kept, 20)
		for i, r := 0, 'A'; r <= 'T'; i, r = i+1, r+1 {
			assert.Equal(t, string(r), kept[i])
		}

		distinct := map[string]struct{}{}
		for _, v := range relabeled {
			distinct[v] = struct{}{}
		}
		assert.Len(t, distinct, 21) // 20 preserved labels plus Other

		// Every row originally labeled U–Y now reads Other.
		for i := 40; i < len(relabeled); i++ {
			assert.Equal(t, OtherLabel, relabeled[i])
		}
	})

	t.Run("frequency ties break by first-seen order", func(t *testing.T) {
		values := []string{"b", "a", "c", "b", "a", "c"}
		_, kept := CollapseTopN(values, 2)
		assert.Equal(t, []string{"b", "a"}, kept)
	})

	t.Run("no Other when vocabulary fits", func(t *testing.T) {
		values := []string{"x", "y", "x"}
		relabeled, kept := CollapseTopN(values, 5)
		assert.Equal(t, values, relabeled)
		assert.Equal(t, []string{"x", "y"}, kept)
	})

	t.Run("length and order preserved", func(t *testing.T) {
		values := []string{"a", "b", "a", "c", "a"}
		relabeled, _ := CollapseTopN(values, 1)
		assert.Equal(t, []string{"a", OtherLabel, "a", OtherLabel, "a"}, relabeled)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		var values []string
		for i := 0; i < 100; i++ {
			values = append(values, fmt.Sprintf("v%d", i%17))
		}
		first, firstKept := CollapseTopN(values, 5)
		second, secondKept := CollapseTopN(values, 5)
		assert.Equal(t, first, second)
		assert.Equal(t, firstKept, secondKept)
	})
}
