package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/eartrain/game"
	"github.com/jsphweid/eartrain/score"
	"github.com/jsphweid/eartrain/theory"
)

var (
	statsVariant   string
	statsLast      bool
	statsFirst     bool
	statsFrom      string
	statsTo        string
	statsIntervals string
	statsPitches   string
	statsNotes     string
	statsAscDesc   string
	statsADH       string
)

func init() {
	statsCmd.Flags().StringVar(&statsVariant, "variant", "transpose", `quiz variant: "transpose" or "intervals"`)
	statsCmd.Flags().BoolVar(&statsLast, "last", false, "only the most recent session")
	statsCmd.Flags().BoolVar(&statsFirst, "first", false, "only the earliest session")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "only sessions started on/after this date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "only sessions finished on/before this date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsIntervals, "intervals", "", `interval breakdown: "full", "sum" or a comma list`)
	statsCmd.Flags().StringVar(&statsPitches, "pitches", "", `pitch breakdown: "full", "sum" or a comma list`)
	statsCmd.Flags().StringVar(&statsNotes, "notes", "", `note breakdown: "full", "sum" or a comma list`)
	statsCmd.Flags().StringVar(&statsAscDesc, "asc-desc", "", `direction breakdown: "full", "+", "-" or "+-"`)
	statsCmd.Flags().StringVar(&statsADH, "adh", "", `mode breakdown: "full" or letters from "+-hm"`)
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Summarize saved sessions",
	Long:  `Summarize saved sessions of a game, with optional per-dimension breakdowns.`,
	Run: func(cmd *cobra.Command, args []string) {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		var v game.Variant
		if statsVariant == "intervals" {
			v = game.NewIntervals(nil)
		} else {
			v = game.NewTranspose()
		}

		e := game.NewEngine(v, name, os.Stdin, os.Stdout)
		var sc *score.Score
		switch {
		case statsLast:
			sc = e.SelectLastBefore(parseDate(statsTo))
		case statsFirst:
			sc = e.SelectFirstAfter(parseDate(statsFrom))
		default:
			sc = e.SelectTotal(parseDate(statsFrom), parseDate(statsTo))
		}
		e.Details(sc, buildQuery())
	},
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("Could not parse date because: " + err.Error())
	}
	return &t
}

// querySpec turns a breakdown flag into a Query value: "full" passes
// through, "sum" collapses the dimension, a comma list selects values.
func querySpec(flag string, parse func(string) (any, bool)) (any, bool) {
	switch flag {
	case "":
		return nil, false
	case "full":
		return "full", true
	case "sum":
		return nil, true
	}
	var vals []any
	for _, part := range strings.Split(flag, ",") {
		if v, ok := parse(strings.TrimSpace(part)); ok {
			vals = append(vals, v)
		}
	}
	return vals, true
}

func buildQuery() game.Query {
	q := make(game.Query)
	if v, ok := querySpec(statsIntervals, func(s string) (any, bool) {
		iv, ok := theory.ParseInterval(s)
		return iv, ok
	}); ok {
		q["intervals"] = v
	}
	if v, ok := querySpec(statsPitches, func(s string) (any, bool) {
		pc, ok := theory.ParsePitchClass(s)
		return pc, ok
	}); ok {
		q["pitches"] = v
	}
	if v, ok := querySpec(statsNotes, func(s string) (any, bool) {
		nn, ok := theory.ParseNoteNumber(s)
		return nn, ok
	}); ok {
		q["notes"] = v
	}
	if statsAscDesc != "" {
		if statsAscDesc == "sum" {
			q["asc_desc"] = nil
		} else {
			q["asc_desc"] = statsAscDesc
		}
	}
	if statsADH != "" {
		if statsADH == "sum" {
			q["adh"] = nil
		} else {
			q["adh"] = statsADH
		}
	}
	return q
}
