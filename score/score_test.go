package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/eartrain/theory"
)

func iv(name string) theory.Interval {
	v, ok := theory.ParseInterval(name)
	if !ok {
		panic("bad interval name in test: " + name)
	}
	return v
}

func pc(name string) theory.PitchClass {
	v, ok := theory.ParsePitchClass(name)
	if !ok {
		panic("bad pitch name in test: " + name)
	}
	return v
}

func TestRecordAndTotal(t *testing.T) {
	assert := assert.New(t)
	s := New("transpose")

	s.Record(true, pc("C"), "+", iv("M3"))
	s.Record(false, pc("C"), "+", iv("M3"))
	s.Record(true, pc("D"), "-", iv("P5"))

	c, n := s.Total(pc("C"), "+", iv("M3"))
	assert.Equal(1, c)
	assert.Equal(2, n)

	c, n = s.Total()
	assert.Equal(2, c)
	assert.Equal(3, n)

	c, n = s.Total(nil, nil, nil)
	assert.Equal(2, c)
	assert.Equal(3, n)

	c, n = s.Total(nil, "-")
	assert.Equal(1, c)
	assert.Equal(1, n)

	c, n = s.Total(pc("E"))
	assert.Equal(0, c)
	assert.Equal(0, n)
}

func TestTotalMembershipFilters(t *testing.T) {
	assert := assert.New(t)
	s := New("transpose")
	s.Record(true, pc("C"), "+", iv("M3"))
	s.Record(true, pc("D"), "+", iv("P5"))
	s.Record(false, pc("E"), "-", iv("P5"))

	c, n := s.Total([]any{pc("C"), pc("D")})
	assert.Equal(2, c)
	assert.Equal(2, n)

	c, n = s.Total(nil, []string{"+", "-"}, iv("P5"))
	assert.Equal(1, c)
	assert.Equal(2, n)

	c, n = s.Total([]theory.PitchClass{pc("E")})
	assert.Equal(0, c)
	assert.Equal(1, n)
}

func TestEnharmonicKeysCollide(t *testing.T) {
	assert := assert.New(t)
	s := New("transpose")

	s.Record(true, pc("C#"), "+", iv("m3"))
	s.Record(false, pc("Db"), "+", iv("m3"))

	assert.Equal(1, s.Len())
	c, n := s.Total(pc("Db"))
	assert.Equal(1, c)
	assert.Equal(2, n)
}

func TestKeysDistinguishValueFamilies(t *testing.T) {
	// An interval and an interval class with the same residue are
	// different questions.
	assert := assert.New(t)
	s := New("x")
	s.Record(true, iv("P5"))
	s.Record(true, theory.NewIntervalClass(7))

	assert.Equal(2, s.Len())
	c, n := s.Total(iv("P5"))
	assert.Equal(1, c)
	assert.Equal(1, n)
}

func TestQuestionsKeepInsertionOrder(t *testing.T) {
	assert := assert.New(t)
	s := New("x")
	s.Record(true, pc("G"), "+", iv("M2"))
	s.Record(false, pc("A"), "-", iv("m2"))
	s.Record(true, pc("G"), "+", iv("M2"))

	qs := s.Questions()
	assert.Len(qs, 2)
	assert.True(qs[0][0].(theory.PitchClass).Equal(pc("G")))
	assert.True(qs[1][0].(theory.PitchClass).Equal(pc("A")))
}

func TestMarkStampsStartThenEnd(t *testing.T) {
	assert := assert.New(t)
	s := New("x")
	assert.Nil(s.Start)
	assert.Nil(s.End)

	s.Mark()
	assert.NotNil(s.Start)
	assert.Nil(s.End)

	s.Mark()
	assert.NotNil(s.End)
	assert.False(s.End.Before(*s.Start))

	end := *s.End
	s.Mark()
	assert.Equal(end, *s.End)
}

func TestMergeSumsCountsOverKeyUnion(t *testing.T) {
	assert := assert.New(t)
	a := New("x")
	a.Record(true, pc("C"), "+", iv("M3"))
	a.Record(false, pc("C"), "+", iv("M3"))

	b := New("x")
	b.Record(true, pc("C"), "+", iv("M3"))
	b.Record(true, pc("D"), "-", iv("P4"))

	a.Merge(b)
	c, n := a.Total(pc("C"), "+", iv("M3"))
	assert.Equal(2, c)
	assert.Equal(3, n)
	c, n = a.Total()
	assert.Equal(3, c)
	assert.Equal(4, n)
}

func TestMergeOrderIndependentCounts(t *testing.T) {
	assert := assert.New(t)
	mk := func(correct bool, k string) *Score {
		s := New("x")
		s.Record(correct, pc(k))
		return s
	}

	ab := Sum("x", []*Score{mk(true, "C"), mk(false, "C")})
	ba := Sum("x", []*Score{mk(false, "C"), mk(true, "C")})
	ca, ta := ab.Total()
	cb, tb := ba.Total()
	assert.Equal(ca, cb)
	assert.Equal(ta, tb)
}

func TestMergeAssociative(t *testing.T) {
	assert := assert.New(t)
	// A and B overlap on C, B and C overlap on E, F is disjoint.
	mkA := func() *Score {
		s := New("x")
		s.Record(true, pc("C"))
		s.Record(false, pc("C"))
		s.Record(false, pc("D"))
		return s
	}
	mkB := func() *Score {
		s := New("x")
		s.Record(true, pc("C"))
		s.Record(true, pc("E"))
		return s
	}
	mkC := func() *Score {
		s := New("x")
		s.Record(false, pc("E"))
		s.Record(true, pc("F"))
		return s
	}

	left := mkA()
	left.Merge(mkB())
	left.Merge(mkC())

	bc := mkB()
	bc.Merge(mkC())
	right := mkA()
	right.Merge(bc)

	for _, name := range []string{"C", "D", "E", "F"} {
		lc, lt := left.Total(pc(name))
		rc, rt := right.Total(pc(name))
		assert.Equal(lc, rc, name)
		assert.Equal(lt, rt, name)
	}
	lc, lt := left.Total()
	rc, rt := right.Total()
	assert.Equal(4, lc)
	assert.Equal(7, lt)
	assert.Equal(lc, rc)
	assert.Equal(lt, rt)
}

func TestMergeWidensTimestampsAndResetsSettings(t *testing.T) {
	assert := assert.New(t)
	t1 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	t3 := time.Date(2026, 1, 11, 20, 0, 0, 0, time.UTC)
	t4 := time.Date(2026, 1, 11, 20, 15, 0, 0, time.UTC)

	a := New("x")
	a.Start, a.End = &t3, &t4
	a.Settings["intervals"] = []any{iv("M3")}

	b := New("x")
	b.Start, b.End = &t1, &t2

	a.Merge(b)
	assert.Equal(t1, *a.Start)
	assert.Equal(t4, *a.End)
	assert.Empty(a.Settings)
}

func TestSumSettingsSimple(t *testing.T) {
	assert := assert.New(t)
	a, b := New("x"), New("x")
	a.Settings["spread"] = 12
	b.Settings["spread"] = 12
	assert.Equal(12, SumSettingsSimple([]*Score{a, b}, "spread"))

	b.Settings["spread"] = 24
	assert.Nil(SumSettingsSimple([]*Score{a, b}, "spread"))
}

func TestSumSettingsListUnionsSorted(t *testing.T) {
	assert := assert.New(t)
	a, b := New("x"), New("x")
	a.Settings["intervals"] = []theory.Interval{iv("P5"), iv("m2")}
	b.Settings["intervals"] = []theory.Interval{iv("m2"), iv("M3")}

	got := SumSettingsList([]*Score{a, b}, "intervals")
	assert.Len(got, 3)
	assert.Equal(1, got[0].(theory.Interval).Value())
	assert.Equal(4, got[1].(theory.Interval).Value())
	assert.Equal(7, got[2].(theory.Interval).Value())
}
