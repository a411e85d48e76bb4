package score

import "reflect"

func asList(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}

// NormalizedProduct expands one spec per tally dimension into cartesian
// rows of Total filters. A bare value or nil spec counts as a one-element
// list; a list spec contributes one row per element. Within a row, a
// picked nil stays a match-anything filter, a picked bare value becomes a
// single-element set, and a picked sub-list (a declared group) passes
// through as a membership filter. Rows follow input order; an empty list
// spec yields no rows at all.
//
//	NormalizedProduct(p4, c)            -> ([p4], [c])
//	NormalizedProduct([]any{p4, p5}, c) -> ([p4], [c]), ([p5], [c])
//	NormalizedProduct([]any{[]any{p4, p5}}, nil)
//	                                    -> ([p4, p5], nil)
func NormalizedProduct(args ...any) [][]any {
	lists := make([][]any, len(args))
	for i, a := range args {
		if l, ok := asList(a); ok {
			lists[i] = l
		} else {
			lists[i] = []any{a}
		}
	}
	rows := [][]any{{}}
	for _, list := range lists {
		next := make([][]any, 0, len(rows)*len(list))
		for _, row := range rows {
			for _, v := range list {
				nr := make([]any, len(row), len(row)+1)
				copy(nr, row)
				nr = append(nr, normalizePick(v))
				next = append(next, nr)
			}
		}
		rows = next
	}
	return rows
}

func normalizePick(v any) any {
	if v == nil {
		return nil
	}
	if l, ok := asList(v); ok {
		return l
	}
	return []any{v}
}
