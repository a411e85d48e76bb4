package game

import (
	"sort"

	"github.com/jsphweid/eartrain/score"
	"github.com/jsphweid/eartrain/theory"
)

type valuer interface {
	Value() int
}

func anyList[T any](xs []T) []any {
	res := make([]any, len(xs))
	for i, x := range xs {
		res[i] = x
	}
	return res
}

// toIntervals coerces a settings value (typed slice, decoded []any of
// interval or interval-class values, or names) into intervals. Unusable
// elements are dropped.
func toIntervals(v any) []theory.Interval {
	switch xs := v.(type) {
	case []theory.Interval:
		return xs
	case []string:
		return toIntervals(anyList(xs))
	case []theory.IntervalClass:
		res := make([]theory.Interval, len(xs))
		for i, ic := range xs {
			res[i] = theory.NewInterval(ic.Value())
		}
		return res
	case []any:
		var res []theory.Interval
		for _, x := range xs {
			switch e := x.(type) {
			case theory.Interval:
				res = append(res, e)
			case theory.IntervalClass:
				res = append(res, theory.NewInterval(e.Value()))
			case string:
				if iv, ok := theory.ParseInterval(e); ok {
					res = append(res, iv)
				}
			}
		}
		return res
	}
	return nil
}

func toPitches(v any) []theory.PitchClass {
	switch xs := v.(type) {
	case []theory.PitchClass:
		return xs
	case []string:
		return toPitches(anyList(xs))
	case []any:
		var res []theory.PitchClass
		for _, x := range xs {
			switch e := x.(type) {
			case theory.PitchClass:
				res = append(res, e)
			case string:
				if pc, ok := theory.ParsePitchClass(e); ok {
					res = append(res, pc)
				}
			}
		}
		return res
	}
	return nil
}

// collectColumn gathers the distinct values appearing at one key position
// of the recorded questions, sorted by underlying value.
func collectColumn(sc *score.Score, idx int) []any {
	seen := make(map[int]bool)
	var res []any
	for _, q := range sc.Questions() {
		v, ok := q[idx].(valuer)
		if !ok || seen[v.Value()] {
			continue
		}
		seen[v.Value()] = true
		res = append(res, q[idx])
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].(valuer).Value() < res[j].(valuer).Value()
	})
	return res
}

func isIntervalish(v any) bool {
	switch v.(type) {
	case theory.Interval, theory.IntervalClass:
		return true
	}
	return false
}

func filterList(f any) []any {
	l, _ := f.([]any)
	return l
}

func hasString(l []any, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
