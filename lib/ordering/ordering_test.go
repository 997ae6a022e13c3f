package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/apperr"
	"talentflow-backend/lib/ordering"
)

func entries(orders ...int) []ordering.Entry {
	list := make([]ordering.Entry, 0, len(orders))
	for idx, order := range orders {
		list = append(list, ordering.Entry{ID: string(rune('a' + idx)), Order: order})
	}
	return list
}

func apply(t *testing.T, list []ordering.Entry, changes []ordering.Change) map[string]int {
	t.Helper()
	result := map[string]int{}
	for _, e := range list {
		result[e.ID] = e.Order
	}
	for _, c := range changes {
		_, ok := result[c.ID]
		require.True(t, ok, "change targets unknown entry %s", c.ID)
		result[c.ID] = c.Order
	}
	return result
}

func TestPlanMoveDown(t *testing.T) {
	list := entries(0, 1, 2, 3, 4)

	changes, err := ordering.Plan(list, 0, 2)
	require.NoError(t, err)

	result := apply(t, list, changes)
	require.Equal(t, 2, result["a"], "moved entry lands exactly on toOrder")
	require.Equal(t, 0, result["b"])
	require.Equal(t, 1, result["c"])
	require.Equal(t, 3, result["d"], "outside the band stays put")
	require.Equal(t, 4, result["e"])
}

func TestPlanMoveUp(t *testing.T) {
	list := entries(0, 1, 2, 3, 4)

	changes, err := ordering.Plan(list, 4, 1)
	require.NoError(t, err)

	result := apply(t, list, changes)
	require.Equal(t, 1, result["e"])
	require.Equal(t, 2, result["b"])
	require.Equal(t, 3, result["c"])
	require.Equal(t, 4, result["d"])
	require.Equal(t, 0, result["a"])
}

// The order values after a move must be a permutation of the values before
// it: no duplicates, no gaps introduced. Boards keep their orders dense
// (creates append at max+1, moves shift by one), so the property holds over
// dense sets, which is all the stores ever hand the planner.
func TestPlanKeepsPermutation(t *testing.T) {
	list := entries(0, 1, 2, 3, 4, 5)
	before := map[int]int{}
	for _, e := range list {
		before[e.Order]++
	}

	for _, move := range [][2]int{{0, 5}, {5, 1}, {3, 0}, {2, 4}} {
		changes, err := ordering.Plan(list, move[0], move[1])
		require.NoError(t, err)
		result := apply(t, list, changes)

		after := map[int]int{}
		for _, order := range result {
			after[order]++
		}
		require.Equal(t, before, after, "move %v broke the permutation", move)
	}
}

func TestPlanErrors(t *testing.T) {
	list := entries(0, 1, 2)

	_, err := ordering.Plan(list, 1, 1)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = ordering.Plan(list, 9, 1)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
