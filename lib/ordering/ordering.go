// Package ordering holds the one shared implementation of the reorder shift.
// The backend applies it against the record store and the client applies it to
// its optimistic projection; both must produce identical results or the board
// visibly snaps back when the server response lands.
package ordering

import (
	"talentflow-backend/lib/apperr"
)

// Entry is one member of a linearly-ordered collection.
type Entry struct {
	ID    string
	Order int
}

// Change assigns a new order to the entry with the given id.
type Change struct {
	ID    string
	Order int
}

// Plan computes the moves for taking the entry at fromOrder to toOrder.
// Entries strictly between the two positions shift by one towards the vacated
// slot; the moved entry receives exactly toOrder; everything outside the
// [min,max] band is untouched. On a dense order set, which is the only kind
// the stores maintain, the set of order values is preserved.
func Plan(entries []Entry, fromOrder, toOrder int) ([]Change, error) {
	if fromOrder == toOrder {
		return nil, apperr.New(apperr.KindValidation, "fromOrder and toOrder must differ")
	}
	moved := ""
	for _, e := range entries {
		if e.Order == fromOrder {
			moved = e.ID
			break
		}
	}
	if moved == "" {
		return nil, apperr.Errorf(apperr.KindNotFound, "no entry at order %d", fromOrder)
	}

	changes := []Change{}
	for _, e := range entries {
		switch {
		case e.ID == moved:
			changes = append(changes, Change{ID: e.ID, Order: toOrder})
		case fromOrder < toOrder && e.Order > fromOrder && e.Order <= toOrder:
			changes = append(changes, Change{ID: e.ID, Order: e.Order - 1})
		case fromOrder > toOrder && e.Order >= toOrder && e.Order < fromOrder:
			changes = append(changes, Change{ID: e.ID, Order: e.Order + 1})
		}
	}
	return changes, nil
}
