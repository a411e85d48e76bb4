// Package game runs interactive quiz sessions over the score store. A
// Variant supplies question generation and the per-variant shape of the
// score keys; the engine owns the prompt loop, summaries, persistence and
// session selection.
package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jsphweid/eartrain/constants"
	"github.com/jsphweid/eartrain/score"
	"github.com/jsphweid/eartrain/util"
)

// Question is one generated exercise. Ask prints the text cue or plays the
// audio cue; it is re-run on every retry, so ?again works for free.
type Question interface {
	Ask(w io.Writer) error
	// Evaluate parses the raw input. parsed=false means the input was not
	// understood at all and the question repeats without penalty.
	Evaluate(input string) (parsed bool, correct bool)
	Key() []any
	Debug() string
}

// Query selects and groups tally dimensions for Details; its keys and
// values are variant-specific ("full", nil, or nested value lists).
type Query map[string]any

// DetailRow is one labelled filter tuple for Score.Total.
type DetailRow struct {
	Label   string
	Filters []any
}

// Variant is a quiz type: question generation plus the capability to
// expand a detail query into labelled score filters.
type Variant interface {
	Name() string
	// Configure applies the given settings, leaving absent keys alone.
	Configure(settings map[string]any)
	Settings() map[string]any
	Generate(r *rand.Rand) Question
	DetailRows(sc *score.Score, q Query) []DetailRow
	// SumScores merges sessions and recomputes the merged settings.
	SumScores(scores []*score.Score) *score.Score
}

type Engine struct {
	Variant  Variant
	Scores   []*score.Score
	Autosave bool
	Rnd      *rand.Rand

	name string
	cur  *score.Score
	in   *bufio.Scanner
	out  io.Writer
}

// NewEngine loads any previous sessions saved under name (the variant name
// when empty) and re-applies the most recent session's settings.
func NewEngine(v Variant, name string, in io.Reader, out io.Writer) *Engine {
	if name == "" {
		name = v.Name()
	}
	e := &Engine{
		Variant:  v,
		Autosave: true,
		Rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		name:     name,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	if e.load() && e.cur != nil {
		v.Configure(e.cur.Settings)
	}
	return e
}

func (e *Engine) Name() string { return e.name }

// Latest is the most recent session's score.
func (e *Engine) Latest() *score.Score {
	if e.cur != nil {
		return e.cur
	}
	return score.New("N/A")
}

func (e *Engine) reset(session string) {
	if session == "" {
		session = fmt.Sprintf("%v %v", e.name, len(e.Scores))
	}
	e.cur = score.New(session)
	e.cur.Settings = e.Variant.Settings()
}

func (e *Engine) readLine() (string, bool) {
	if !e.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(e.in.Text()), true
}

// Play runs a session of n questions. Input starting with "?" is a
// command, not an answer: ?quit ends the session early, ?where prints the
// question number, ?stats the running summary, ?again repeats the cue,
// ?debug the question parameters, ?settings the active settings. A
// question scores a point only when the
// first real answer is correct.
func (e *Engine) Play(n int, session string) error {
	e.reset(session)
	e.cur.Mark()
	enough := false

	for i := 0; i < n && !enough; i++ {
		q := e.Variant.Generate(e.Rnd)
		wrong := false
	QuestionLoop:
		for {
			if err := q.Ask(e.out); err != nil {
				return err
			}
			line, ok := e.readLine()
			if !ok {
				enough = true
				break
			}
			if strings.HasPrefix(line, "?") {
				switch line {
				case "?quit":
					enough = true
					break QuestionLoop
				case "?where":
					fmt.Fprintf(e.out, " ...we're at %v/%v.\n", i+1, n)
				case "?stats":
					e.Summary(e.cur)
					fmt.Fprintln(e.out)
				case "?again":
				case "?debug":
					fmt.Fprintf(e.out, "... %v\n", q.Debug())
				case "?settings":
					for _, k := range util.GetKeysSorted(e.cur.Settings) {
						fmt.Fprintf(e.out, "... %v: %v\n", k, e.cur.Settings[k])
					}
				case "?help":
					fmt.Fprintln(e.out, "...other commands: ?again ?stats ?settings ?where ?quit")
				default:
					fmt.Fprintln(e.out, "...unknown command.")
				}
				continue
			}
			parsed, correct := q.Evaluate(line)
			if !parsed {
				fmt.Fprintln(e.out, " ...what? Could you repeat please?")
				continue
			}
			if !correct {
				fmt.Fprintln(e.out, " ...no! Again.")
				wrong = true
				continue
			}
			if wrong {
				fmt.Fprintln(e.out, " ...ok")
			} else {
				fmt.Fprintln(e.out, " ...ok (+1)")
			}
			e.cur.Record(!wrong, q.Key()...)
			break
		}
	}

	fmt.Fprintln(e.out)
	e.cur.Mark()
	e.Summary(e.cur)
	e.Scores = append(e.Scores, e.cur)
	if e.Autosave {
		e.Save()
	}
	return nil
}

// Summary prints the session header and the default detail breakdown.
func (e *Engine) Summary(sc *score.Score) {
	e.Details(sc, nil)
}

// Details prints the header plus one bar per row of the variant's detail
// query expansion.
func (e *Engine) Details(sc *score.Score, q Query) {
	e.printGame(sc)
	if sc.Len() > 0 {
		e.printKeys(sc, e.Variant.DetailRows(sc, q))
	}
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "..."
	}
	return t.Format("02.01.2006 15:04")
}

func (e *Engine) printGame(sc *score.Score) {
	c, t := sc.Total()
	fmt.Fprintf(e.out, ":: %v :: %v --> %v :: %v/%v ::\n",
		sc.Name, fmtDate(sc.Start), fmtDate(sc.End), c, t)
}

func printBar(c, t int) string {
	const maxLen = constants.BarLen
	filled := c * maxLen / t
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", maxLen-filled) + "]"
}

func (e *Engine) printKeys(sc *score.Score, rows []DetailRow) {
	type line struct {
		label string
		c, t  int
	}
	var lines []line
	maxlen := 0
	for _, row := range rows {
		maxlen = util.Max(maxlen, len(row.Label))
		c, t := sc.Total(row.Filters...)
		if t > 0 {
			lines = append(lines, line{row.Label, c, t})
		}
	}
	for _, l := range lines {
		fmt.Fprintf(e.out, "%-*v %v %v/%v\n", maxlen, l.label, printBar(l.c, l.t), l.c, l.t)
	}
}

// SelectTotal sums the sessions played between frm and to (nil leaves the
// range unbounded on that side), with settings recomputed by the variant.
func (e *Engine) SelectTotal(frm, to *time.Time) *score.Score {
	var picked []*score.Score
	for _, sc := range e.Scores {
		if sc.Start == nil || sc.End == nil {
			continue
		}
		if frm != nil && sc.Start.Before(*frm) {
			continue
		}
		if to != nil && sc.End.After(*to) {
			continue
		}
		picked = append(picked, sc)
	}
	return e.Variant.SumScores(picked)
}

// SelectFirstAfter picks the first session started no earlier than frm.
func (e *Engine) SelectFirstAfter(frm *time.Time) *score.Score {
	for _, sc := range e.Scores {
		if sc.Start == nil {
			continue
		}
		if frm == nil || !sc.Start.Before(*frm) {
			return sc
		}
	}
	return score.New("N/A")
}

// SelectLastBefore picks the last session finished no later than to.
func (e *Engine) SelectLastBefore(to *time.Time) *score.Score {
	for i := len(e.Scores) - 1; i >= 0; i-- {
		sc := e.Scores[i]
		if sc.End == nil {
			continue
		}
		if to == nil || !sc.End.After(*to) {
			return sc
		}
	}
	return score.New("N/A")
}

// Save writes every session to the game's stats file.
func (e *Engine) Save() {
	util.EnsureStatsDir()
	data, err := json.Marshal(e.Scores)
	if err != nil {
		panic("Could not encode scores because: " + err.Error())
	}
	if err := os.WriteFile(util.StatsPath(e.name), data, 0666); err != nil {
		panic("Could not write stats file because: " + err.Error())
	}
}

func (e *Engine) load() bool {
	data, err := os.ReadFile(util.StatsPath(e.name))
	if err != nil {
		return false
	}
	var scores []*score.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		panic("Could not decode stats file because: " + err.Error())
	}
	e.Scores = scores
	if len(scores) > 0 {
		e.cur = scores[len(scores)-1]
	}
	return true
}
