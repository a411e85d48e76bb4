package game

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/eartrain/score"
)

func fixedTranspose() *Transpose {
	g := NewTranspose()
	g.Configure(map[string]any{
		"intervals": []string{"M3"},
		"pitches":   []string{"C"},
		"asc_desc":  "+",
	})
	return g
}

func TestPlayScoresFirstAnswerOnly(t *testing.T) {
	t.Setenv("STATS_PATH", t.TempDir())
	assert := assert.New(t)

	// Every question is C + M3; miss the first one once, nail the second.
	in := strings.NewReader("D\nE\nE\n")
	var out bytes.Buffer
	e := NewEngine(fixedTranspose(), "", in, &out)

	assert.NoError(e.Play(2, ""))
	c, n := e.Latest().Total()
	assert.Equal(1, c)
	assert.Equal(2, n)

	assert.Contains(out.String(), " ...no! Again.")
	assert.Contains(out.String(), " ...ok (+1)")
	assert.Contains(out.String(), ":: Transpose 0 ::")
	assert.NotNil(e.Latest().Start)
	assert.NotNil(e.Latest().End)
}

func TestPlayCommands(t *testing.T) {
	t.Setenv("STATS_PATH", t.TempDir())
	assert := assert.New(t)

	in := strings.NewReader("?where\n?debug\n?settings\nE\n?quit\n")
	var out bytes.Buffer
	e := NewEngine(fixedTranspose(), "", in, &out)

	assert.NoError(e.Play(5, ""))
	c, n := e.Latest().Total()
	assert.Equal(1, c)
	assert.Equal(1, n)

	assert.Contains(out.String(), " ...we're at 1/5.")
	assert.Contains(out.String(), "pc=C ad=+ iv=M3")

	// ?settings lists the session settings in key order.
	assert.Contains(out.String(), "... asc_desc: +")
	assert.Contains(out.String(), "... intervals: [M3]")
	assert.Less(
		strings.Index(out.String(), "... asc_desc:"),
		strings.Index(out.String(), "... intervals:"),
	)
	assert.Less(
		strings.Index(out.String(), "... intervals:"),
		strings.Index(out.String(), "... pitches:"),
	)
}

func TestPlayUnparsedInputDoesNotPenalize(t *testing.T) {
	t.Setenv("STATS_PATH", t.TempDir())
	assert := assert.New(t)

	in := strings.NewReader("huh\nE\n")
	var out bytes.Buffer
	e := NewEngine(fixedTranspose(), "", in, &out)

	assert.NoError(e.Play(1, ""))
	c, n := e.Latest().Total()
	assert.Equal(1, c)
	assert.Equal(1, n)
	assert.Contains(out.String(), " ...what? Could you repeat please?")
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("STATS_PATH", t.TempDir())
	assert := assert.New(t)

	in := strings.NewReader("E\n")
	e := NewEngine(fixedTranspose(), "drill", in, new(bytes.Buffer))
	assert.NoError(e.Play(1, "evening"))

	g := NewTranspose()
	e2 := NewEngine(g, "drill", strings.NewReader(""), new(bytes.Buffer))
	assert.Len(e2.Scores, 1)
	assert.Equal("evening", e2.Latest().Name)
	c, n := e2.Latest().Total()
	assert.Equal(1, c)
	assert.Equal(1, n)

	// The last session's settings come back into the variant.
	assert.Len(g.Intervals, 1)
	assert.Equal(4, g.Intervals[0].Value())
	assert.Len(g.Pitches, 1)
	assert.Equal([]int{1}, g.AscDesc)
}

func TestSessionSelects(t *testing.T) {
	assert := assert.New(t)
	mk := func(name string, start, end time.Time) *score.Score {
		s := score.New(name)
		s.Start, s.End = &start, &end
		s.Record(true, pitches("C")[0], "+", intervals("M3")[0])
		return s
	}
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}

	e := &Engine{Variant: NewTranspose()}
	e.Scores = []*score.Score{
		mk("a", day(1), day(1).Add(time.Hour)),
		mk("b", day(3), day(3).Add(time.Hour)),
		mk("c", day(5), day(5).Add(time.Hour)),
	}

	from, to := day(2), day(4)
	total := e.SelectTotal(&from, &to)
	_, n := total.Total()
	assert.Equal(1, n)

	total = e.SelectTotal(nil, nil)
	_, n = total.Total()
	assert.Equal(3, n)

	assert.Equal("b", e.SelectFirstAfter(&from).Name)
	assert.Equal("b", e.SelectLastBefore(&to).Name)
	assert.Equal("a", e.SelectFirstAfter(nil).Name)
	assert.Equal("c", e.SelectLastBefore(nil).Name)

	late := day(20)
	assert.Equal("N/A", e.SelectFirstAfter(&late).Name)
}
