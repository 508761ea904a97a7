package engine

import "fmt"

// actionToken is the intermediate per-tile classification used while
// resolving one line. The concrete types below are the only implementations.
type actionToken interface {
	source() int
	amount() int
}

// noAction is a tile that has not shifted position so far.
type noAction struct{ origin, value int }

// moveToken is a tile that must shift toward index 0.
type moveToken struct{ origin, value int }

// singleCombine is the survivor of an in-place merge of two untouched tiles;
// value is already summed.
type singleCombine struct{ origin, value int }

// doubleCombine is two tiles converging on one destination; value is already
// summed.
type doubleCombine struct{ origin1, origin2, value int }

func (t noAction) source() int      { return t.origin }
func (t noAction) amount() int      { return t.value }
func (t moveToken) source() int     { return t.origin }
func (t moveToken) amount() int     { return t.value }
func (t singleCombine) source() int { return t.origin }
func (t singleCombine) amount() int { return t.value }
func (t doubleCombine) source() int { return t.origin1 }
func (t doubleCombine) amount() int { return t.value }

// MoveOrder is one visible change produced by resolving a line. Indices are
// line-local: 0 is the destination end of the move. The concrete types are
// SingleMove and DoubleMove.
type MoveOrder interface {
	moveOrder()
}

// SingleMove relocates one tile. Merged is set when the tile is the result of
// a merge, in which case Value is the merged value.
type SingleMove struct {
	Source int
	Dest   int
	Value  int
	Merged bool
}

// DoubleMove relocates two tiles onto one destination. It is always a merge
// and Value is the merged value.
type DoubleMove struct {
	Source1 int
	Source2 int
	Dest    int
	Value   int
}

func (SingleMove) moveOrder() {}
func (DoubleMove) moveOrder() {}

// Merge resolves one line oriented so that index 0 is the destination end and
// returns the moves needed to reach the resolved arrangement. An empty result
// means the line does not change.
func Merge(line []Cell) []MoveOrder {
	return convert(collapse(condense(line)))
}

// condense drops empty cells. A tile whose index is unchanged after dropping
// empties is quiescent; every other tile must move.
func condense(line []Cell) []actionToken {
	tokens := make([]actionToken, 0, len(line))
	for idx, c := range line {
		if c.IsEmpty() {
			continue
		}
		if len(tokens) == idx {
			tokens = append(tokens, noAction{origin: idx, value: c.Value()})
		} else {
			tokens = append(tokens, moveToken{origin: idx, value: c.Value()})
		}
	}
	return tokens
}

// stillQuiescent reports whether a tile at input index idx keeps its place
// given that out tokens have been emitted so far.
func stillQuiescent(idx, outLen, origin int) bool {
	return idx == outLen && origin == idx
}

// collapse merges adjacent equal tokens, left to right, at most once per token.
//
// A merge of two quiescent tiles that have not been displaced by an earlier
// merge yields a singleCombine attributed to the right-hand tile. Any other
// merge yields a doubleCombine carrying both origins.
// NOTE: the right-hand attribution is asymmetric; tests pin it down.
func collapse(tokens []actionToken) []actionToken {
	out := make([]actionToken, 0, len(tokens))
	for idx := 0; idx < len(tokens); idx++ {
		tok := tokens[idx]
		switch tok.(type) {
		case noAction, moveToken:
		case singleCombine, doubleCombine:
			panic("engine: collapse input cannot contain combine tokens")
		default:
			panic(fmt.Sprintf("engine: unexpected token %T", tok))
		}

		if idx+1 < len(tokens) && tok.amount() == tokens[idx+1].amount() {
			next := tokens[idx+1]
			sum := tok.amount() + next.amount()
			left, leftQuiet := tok.(noAction)
			_, rightQuiet := next.(noAction)

			if leftQuiet && rightQuiet && stillQuiescent(idx, len(out), left.origin) {
				out = append(out, singleCombine{origin: next.source(), value: sum})
			} else {
				out = append(out, doubleCombine{origin1: tok.source(), origin2: next.source(), value: sum})
			}
			idx++ // the right-hand token is consumed by the merge
			continue
		}

		switch t := tok.(type) {
		case noAction:
			if stillQuiescent(idx, len(out), t.origin) {
				out = append(out, t)
			} else {
				out = append(out, moveToken(t))
			}
		case moveToken:
			out = append(out, t)
		}
	}
	return out
}

// convert turns collapsed tokens into move orders. A token's index in the
// collapsed list is its final position.
func convert(tokens []actionToken) []MoveOrder {
	var orders []MoveOrder
	for idx, tok := range tokens {
		switch t := tok.(type) {
		case noAction:
			// already in place
		case moveToken:
			orders = append(orders, SingleMove{Source: t.origin, Dest: idx, Value: t.value})
		case singleCombine:
			orders = append(orders, SingleMove{Source: t.origin, Dest: idx, Value: t.value, Merged: true})
		case doubleCombine:
			orders = append(orders, DoubleMove{Source1: t.origin1, Source2: t.origin2, Dest: idx, Value: t.value})
		default:
			panic(fmt.Sprintf("engine: unexpected token %T", tok))
		}
	}
	return orders
}

// ResolveLine applies Merge to a copy of line and returns the resulting cells
// together with the points scored by merges.
func ResolveLine(line []Cell) ([]Cell, int) {
	result := make([]Cell, len(line))
	copy(result, line)

	score := 0
	for _, order := range Merge(line) {
		switch o := order.(type) {
		case SingleMove:
			result[o.Source] = Empty()
			result[o.Dest] = Tile(o.Value)
			if o.Merged {
				score += o.Value
			}
		case DoubleMove:
			result[o.Source1] = Empty()
			result[o.Source2] = Empty()
			result[o.Dest] = Tile(o.Value)
			score += o.Value
		default:
			panic(fmt.Sprintf("engine: unexpected move order %T", order))
		}
	}
	return result, score
}
