package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"github.com/jsphweid/eartrain/score"
	"github.com/jsphweid/eartrain/theory"
)

// CuePlayer renders the two notes of an interval question, harmonically or
// melodically, with some human variation driven by r.
type CuePlayer interface {
	PlayCue(r *rand.Rand, n1, n2 theory.NoteNumber, harmonic bool) error
}

// Intervals drills recognizing ascending, descending or harmonic intervals
// by ear. Question keys are (first note, "+"/"-"/"h", interval).
type Intervals struct {
	Intervals []theory.Interval
	Center    theory.NoteNumber
	Spread    int
	ADH       []int // +1 ascending, -1 descending, 0 harmonic
	Player    CuePlayer
}

func NewIntervals(player CuePlayer) *Intervals {
	return &Intervals{
		Intervals: ICSetAll,
		Center:    theory.NewNoteNumber(69), // A4
		Spread:    12,
		ADH:       []int{-1, 1},
		Player:    player,
	}
}

func (g *Intervals) Name() string { return "Intervals" }

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case theory.NoteNumber:
		return n.Value(), true
	}
	return 0, false
}

func (g *Intervals) Configure(settings map[string]any) {
	if v, ok := settings["intervals"]; ok && v != nil {
		if ivs := toIntervals(v); len(ivs) > 0 {
			g.Intervals = ivs
		}
	}
	if v, ok := settings["center"]; ok && v != nil {
		if n, ok := toInt(v); ok {
			g.Center = theory.NewNoteNumber(n)
		} else if s, ok := v.(string); ok {
			if nn, ok := theory.ParseNoteNumber(s); ok {
				g.Center = nn
			}
		}
	}
	if v, ok := settings["spread"]; ok && v != nil {
		if n, ok := toInt(v); ok {
			g.Spread = n
		}
	}
	if s, ok := settings["adh"].(string); ok && s != "" {
		var adh []int
		if strings.Contains(s, "d") {
			adh = append(adh, -1)
		}
		if strings.Contains(s, "h") {
			adh = append(adh, 0)
		}
		if strings.Contains(s, "a") {
			adh = append(adh, 1)
		}
		if len(adh) == 0 {
			adh = []int{-1, 1}
		}
		g.ADH = adh
	}
}

func adhString(adh []int) string {
	chars := make([]string, len(adh))
	for i, d := range adh {
		switch d {
		case -1:
			chars[i] = "d"
		case 0:
			chars[i] = "h"
		default:
			chars[i] = "a"
		}
	}
	sort.Strings(chars)
	return strings.Join(chars, "")
}

func (g *Intervals) Settings() map[string]any {
	return map[string]any{
		"intervals": g.Intervals,
		"center":    g.Center,
		"spread":    g.Spread,
		"adh":       adhString(g.ADH),
	}
}

type intervalsQuestion struct {
	g   *Intervals
	r   *rand.Rand
	nn  theory.NoteNumber
	iv  theory.Interval
	adh int
}

func (g *Intervals) Generate(r *rand.Rand) Question {
	lo := g.Center.Transpose(-g.Spread).Value()
	hi := g.Center.Transpose(g.Spread).Value()
	ctr := lo + r.Intn(hi-lo+1)
	iv := g.Intervals[r.Intn(len(g.Intervals))]
	adh := g.ADH[r.Intn(len(g.ADH))]
	if adh == 0 && r.Intn(2) == 0 {
		// The correct answer is measured upwards; flipping top and bottom
		// at random uniformizes the harmonic distribution.
		ctr -= iv.Value()
	}
	return &intervalsQuestion{g: g, r: r, nn: theory.NewNoteNumber(ctr), iv: iv, adh: adh}
}

func adhSign(adh int) string {
	switch adh {
	case 1:
		return "+"
	case -1:
		return "-"
	}
	return "h"
}

func (q *intervalsQuestion) Ask(w io.Writer) error {
	sgn := 1
	if q.adh == -1 {
		sgn = -1
	}
	second := q.nn.Transpose(q.iv.Value() * sgn)
	if err := q.g.Player.PlayCue(q.r, q.nn, second, q.adh == 0); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, ">> ")
	return err
}

func (q *intervalsQuestion) Evaluate(input string) (bool, bool) {
	ans, ok := theory.ParseInterval(input)
	if !ok {
		return false, false
	}
	return true, ans.Value() == q.iv.Value()
}

func (q *intervalsQuestion) Key() []any {
	return []any{q.nn, adhSign(q.adh), q.iv}
}

func (q *intervalsQuestion) Debug() string {
	return fmt.Sprintf("nn=%v adh=%v iv=%v", q.nn, adhSign(q.adh), q.iv)
}

func modeString(mode []any) string {
	var chars []string
	for _, v := range mode {
		if s, ok := v.(string); ok {
			chars = append(chars, s)
		}
	}
	sort.Strings(chars)
	return strings.Replace(strings.Join(chars, ""), "+-", "m", 1)
}

// DetailRows expands a query over the (notes, adh, intervals) dimensions.
// The adh spec additionally understands "m" (melodic: both directions
// summed together) alongside "+", "-" and "h".
func (g *Intervals) DetailRows(sc *score.Score, q Query) []DetailRow {
	var ivSpec any
	if spec, ok := q["intervals"]; !ok || spec == "full" {
		if v, ok := sc.Settings["intervals"]; ok && v != nil {
			ivSpec = anyList(toIntervals(v))
		} else {
			ivSpec = collectColumn(sc, 2)
		}
	} else {
		ivSpec = spec
	}

	nnSpec := q["notes"]
	if nnSpec == "full" {
		nnSpec = collectColumn(sc, 0)
	}

	adhSpec := q["adh"]
	if s, ok := adhSpec.(string); ok {
		if s == "full" {
			adhSpec = []any{"+", "-", "h"}
		} else {
			if strings.Contains(s, "m") {
				s = strings.NewReplacer("+", "m", "-", "m").Replace(s)
			}
			var uniq []any
			seen := make(map[rune]bool)
			for _, ch := range s {
				if seen[ch] || !strings.ContainsRune("+-hm", ch) {
					continue
				}
				seen[ch] = true
				if ch == 'm' {
					uniq = append(uniq, []any{"+", "-"})
				} else {
					uniq = append(uniq, string(ch))
				}
			}
			adhSpec = uniq
		}
	}

	var rows []DetailRow
	for _, row := range score.NormalizedProduct(nnSpec, adhSpec, ivSpec) {
		nnF, adF, ivF := row[0], row[1], row[2]

		// nil direction means "melodic either way", not "anything".
		mode := filterList(adF)
		if adF == nil {
			mode = []any{"+", "-"}
		}

		nns, ivs := filterList(nnF), filterList(ivF)
		isNN := len(nns) == 1
		if isNN {
			_, isNN = nns[0].(theory.NoteNumber)
		}
		isIV := len(ivs) == 1 && isIntervalish(ivs[0])

		var parts []string
		if isNN {
			parts = append(parts, fmt.Sprintf("%v", nns[0]))
		}
		parts = append(parts, modeString(mode))
		if isIV {
			parts = append(parts, fmt.Sprintf("%v", ivs[0]))
		}
		rows = append(rows, DetailRow{
			Label:   strings.Join(parts, " "),
			Filters: []any{nnF, mode, ivF},
		})
	}
	return rows
}

func (g *Intervals) SumScores(scores []*score.Score) *score.Score {
	total := score.Sum(g.Name()+": Total", scores)
	total.Settings = map[string]any{
		"intervals": score.SumSettingsList(scores, "intervals"),
		"center":    score.SumSettingsSimple(scores, "center"),
		"spread":    score.SumSettingsSimple(scores, "spread"),
		"adh":       score.SumSettingsSimple(scores, "adh"),
	}
	return total
}
