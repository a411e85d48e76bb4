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

// Transpose drills transposing pitch classes along ascending or descending
// intervals. Question keys are (pitch class, "+"/"-", interval).
type Transpose struct {
	Intervals []theory.Interval
	Pitches   []theory.PitchClass
	AscDesc   []int // +1 ascending, -1 descending
}

func NewTranspose() *Transpose {
	return &Transpose{
		Intervals: ICSetAll,
		Pitches:   PCSetAll,
		AscDesc:   []int{-1, 1},
	}
}

func (g *Transpose) Name() string { return "Transpose" }

func (g *Transpose) Configure(settings map[string]any) {
	if v, ok := settings["intervals"]; ok && v != nil {
		if ivs := toIntervals(v); len(ivs) > 0 {
			g.Intervals = ivs
		}
	}
	if v, ok := settings["pitches"]; ok && v != nil {
		if pcs := toPitches(v); len(pcs) > 0 {
			g.Pitches = pcs
		}
	}
	if s, ok := settings["asc_desc"].(string); ok {
		var ad []int
		if strings.Contains(s, "-") {
			ad = append(ad, -1)
		}
		if strings.Contains(s, "+") {
			ad = append(ad, 1)
		}
		if len(ad) == 0 {
			ad = []int{-1, 1}
		}
		g.AscDesc = ad
	}
}

func ascDescString(ad []int) string {
	chars := make([]string, len(ad))
	for i, d := range ad {
		if d == 1 {
			chars[i] = "+"
		} else {
			chars[i] = "-"
		}
	}
	sort.Strings(chars)
	return strings.Join(chars, "")
}

func (g *Transpose) Settings() map[string]any {
	return map[string]any{
		"intervals": g.Intervals,
		"pitches":   g.Pitches,
		"asc_desc":  ascDescString(g.AscDesc),
	}
}

type transposeQuestion struct {
	pc theory.PitchClass
	iv theory.Interval
	ad int
}

func (g *Transpose) Generate(r *rand.Rand) Question {
	return &transposeQuestion{
		pc: g.Pitches[r.Intn(len(g.Pitches))],
		iv: g.Intervals[r.Intn(len(g.Intervals))],
		ad: g.AscDesc[r.Intn(len(g.AscDesc))],
	}
}

func signOf(ad int) string {
	if ad == 1 {
		return "+"
	}
	return "-"
}

func (q *transposeQuestion) Ask(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%v %v %v = ", q.pc, signOf(q.ad), q.iv)
	return err
}

func (q *transposeQuestion) Evaluate(input string) (bool, bool) {
	ans, ok := theory.ParsePitchClass(input)
	if !ok {
		return false, false
	}
	correct := q.pc.Add(theory.NewIntervalClass(q.iv.Value()).Mul(q.ad))
	return true, ans.Equal(correct)
}

func (q *transposeQuestion) Key() []any {
	return []any{q.pc, signOf(q.ad), q.iv}
}

func (q *transposeQuestion) Debug() string {
	return fmt.Sprintf("pc=%v ad=%v iv=%v", q.pc, signOf(q.ad), q.iv)
}

// DetailRows expands a query over the (pitches, asc_desc, intervals)
// dimensions. "full" lists each settings value separately (falling back to
// the values seen in the questions), nil sums over a dimension, and nested
// value lists group as in NormalizedProduct.
func (g *Transpose) DetailRows(sc *score.Score, q Query) []DetailRow {
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

	pcSpec := q["pitches"]
	if pcSpec == "full" {
		if v, ok := sc.Settings["pitches"]; ok && v != nil {
			pcSpec = anyList(toPitches(v))
		} else {
			pcSpec = collectColumn(sc, 0)
		}
	}

	adSpec := q["asc_desc"]
	if adSpec == "full" || adSpec == "+-" {
		adSpec = []any{"+", "-"}
	}

	var rows []DetailRow
	for _, row := range score.NormalizedProduct(pcSpec, adSpec, ivSpec) {
		pcF, adF, ivF := row[0], row[1], row[2]
		pcs, ads, ivs := filterList(pcF), filterList(adF), filterList(ivF)

		isPC := len(pcs) == 1
		if isPC {
			_, isPC = pcs[0].(theory.PitchClass)
		}
		isIV := len(ivs) == 1 && isIntervalish(ivs[0])
		isAD := adF == nil || (hasString(ads, "+") && hasString(ads, "-"))

		var label strings.Builder
		if isPC {
			fmt.Fprintf(&label, "%v", pcs[0])
		}
		if isAD && isPC && isIV {
			label.WriteString("+-")
		} else if len(ads) > 0 {
			if s, ok := ads[0].(string); ok && (s == "+" || s == "-") {
				label.WriteString(s)
			}
		}
		if isIV {
			fmt.Fprintf(&label, "%v", ivs[0])
		}
		rows = append(rows, DetailRow{Label: label.String(), Filters: row})
	}
	return rows
}

func (g *Transpose) SumScores(scores []*score.Score) *score.Score {
	total := score.Sum(g.Name()+": Total", scores)
	total.Settings = map[string]any{
		"pitches":   score.SumSettingsList(scores, "pitches"),
		"intervals": score.SumSettingsList(scores, "intervals"),
		"asc_desc":  score.SumSettingsSimple(scores, "asc_desc"),
	}
	return total
}
