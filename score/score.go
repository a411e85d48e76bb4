// Package score keeps per-question tallies for quiz sessions. A Score maps
// fixed-arity key tuples of question-identifying values to correct/total
// counts; every key in one Score has the same arity (caller discipline,
// not enforced). Reading goes through Total with one filter per key
// position.
package score

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

type Tally struct {
	Correct int
	Total   int
}

type entry struct {
	key   []any
	tally Tally
}

type Score struct {
	Name     string
	Start    *time.Time
	End      *time.Time
	Settings map[string]any

	data  map[string]*entry
	order []string
}

func New(name string) *Score {
	return &Score{
		Name:     name,
		Settings: make(map[string]any),
		data:     make(map[string]*entry),
	}
}

// valuer is what the theory types implement; key values carrying it are
// compared by family and underlying value, so enharmonic spellings of one
// pitch class land on the same key.
type valuer interface {
	Value() int
}

func eq(a, b any) bool {
	av, aok := a.(valuer)
	bv, bok := b.(valuer)
	if aok && bok {
		return reflect.TypeOf(a) == reflect.TypeOf(b) && av.Value() == bv.Value()
	}
	if aok != bok {
		return false
	}
	return a == b
}

func keyString(key []any) string {
	var b strings.Builder
	for i, v := range key {
		if i > 0 {
			b.WriteByte('|')
		}
		if vv, ok := v.(valuer); ok {
			fmt.Fprintf(&b, "%T(%d)", v, vv.Value())
		} else {
			fmt.Fprintf(&b, "%T(%v)", v, v)
		}
	}
	return b.String()
}

// member reports whether filter is a collection containing v.
func member(filter, v any) bool {
	rv := reflect.ValueOf(filter)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if eq(v, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// Record bumps the tally for the exact key, creating it on first sight.
func (s *Score) Record(correct bool, key ...any) {
	ks := keyString(key)
	e, ok := s.data[ks]
	if !ok {
		k := make([]any, len(key))
		copy(k, key)
		e = &entry{key: k}
		s.data[ks] = e
		s.order = append(s.order, ks)
	}
	if correct {
		e.tally.Correct++
	}
	e.tally.Total++
}

// Mark stamps the session: the first call sets the start time, the second
// the end time, later calls do nothing.
func (s *Score) Mark() {
	now := time.Now()
	if s.Start == nil {
		s.Start = &now
	} else if s.End == nil {
		s.End = &now
	}
}

// Total sums tallies over every key matching the filters, one filter per
// key position. A nil filter matches anything, a collection matches by
// membership, anything else by equality. Trailing positions without a
// filter are unconstrained. Passing more filters than the key arity is a
// caller contract violation.
func (s *Score) Total(filters ...any) (correct, total int) {
	for _, ks := range s.order {
		e := s.data[ks]
		ok := true
		for i, f := range filters {
			if f == nil {
				continue
			}
			if member(f, e.key[i]) || eq(e.key[i], f) {
				continue
			}
			ok = false
			break
		}
		if ok {
			correct += e.tally.Correct
			total += e.tally.Total
		}
	}
	return correct, total
}

// Questions returns the recorded key tuples in first-recorded order.
func (s *Score) Questions() [][]any {
	res := make([][]any, 0, len(s.order))
	for _, ks := range s.order {
		res = append(res, s.data[ks].key)
	}
	return res
}

func (s *Score) Len() int { return len(s.order) }

// Merge folds other into s: counts are summed over the union of keys, the
// start/end timestamps widen to cover both sessions, and the settings are
// reset (ambiguous after a merge unless the caller recomputes them).
// Merging a score with itself doubles its counts; this models combining
// distinct sessions, not set union.
func (s *Score) Merge(other *Score) {
	if s.Start == nil || (other.Start != nil && s.Start.After(*other.Start)) {
		s.Start = other.Start
	}
	if s.End == nil || (other.End != nil && s.End.Before(*other.End)) {
		s.End = other.End
	}
	for _, ks := range other.order {
		oe := other.data[ks]
		e, ok := s.data[ks]
		if !ok {
			k := make([]any, len(oe.key))
			copy(k, oe.key)
			e = &entry{key: k}
			s.data[ks] = e
			s.order = append(s.order, ks)
		}
		e.tally.Correct += oe.tally.Correct
		e.tally.Total += oe.tally.Total
	}
	s.Settings = make(map[string]any)
}

// Sum merges every given score into a fresh one under the given name.
func Sum(name string, scores []*Score) *Score {
	res := New(name)
	for _, sc := range scores {
		res.Merge(sc)
	}
	return res
}

// SumSettingsSimple returns the shared value of a scalar setting across
// the scores, or nil when the scores disagree.
func SumSettingsSimple(scores []*Score, key string) any {
	var cur any
	for _, sc := range scores {
		prev := cur
		cur = sc.Settings[key]
		if prev != nil && !eq(cur, prev) {
			return nil
		}
	}
	return cur
}

// SumSettingsList unions a list-valued setting across the scores, sorted
// by underlying value.
func SumSettingsList(scores []*Score, key string) []any {
	seen := make(map[string]bool)
	var res []any
	for _, sc := range scores {
		rv := reflect.ValueOf(sc.Settings[key])
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			continue
		}
		for i := 0; i < rv.Len(); i++ {
			v := rv.Index(i).Interface()
			ks := keyString([]any{v})
			if !seen[ks] {
				seen[ks] = true
				res = append(res, v)
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, aok := res[i].(valuer)
		b, bok := res[j].(valuer)
		if aok && bok {
			return a.Value() < b.Value()
		}
		return fmt.Sprint(res[i]) < fmt.Sprint(res[j])
	})
	return res
}
