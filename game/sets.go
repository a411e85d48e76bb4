package game

import "github.com/jsphweid/eartrain/theory"

func intervals(names ...string) []theory.Interval {
	res := make([]theory.Interval, len(names))
	for i, n := range names {
		iv, ok := theory.ParseInterval(n)
		if !ok {
			panic("bad interval name in stock set: " + n)
		}
		res[i] = iv
	}
	return res
}

func pitches(names ...string) []theory.PitchClass {
	res := make([]theory.PitchClass, len(names))
	for i, n := range names {
		pc, ok := theory.ParsePitchClass(n)
		if !ok {
			panic("bad pitch class name in stock set: " + n)
		}
		res[i] = pc
	}
	return res
}

// Stock interval sets for quiz settings.
var (
	ICSetPerfects = intervals("P4", "P5")
	ICSetThirds   = intervals("m3", "M3")
	ICSetSixths   = intervals("m6", "M6")
	ICSetLeaps    = intervals("m3", "M3", "m6", "M6")
	ICSetAll      = intervals("m2", "M2", "m3", "M3", "P4", "d5", "P5", "m6", "M6", "m7", "M7", "P8")
)

// Stock pitch class sets for quiz settings.
var (
	PCSetDiatonic   = pitches("C", "D", "E", "F", "G", "A", "B")
	PCSetWithSharps = pitches("C", "Cs", "D", "Ds", "E", "F", "Fs", "G", "Gs", "A", "As", "B")
	PCSetWithFlats  = pitches("C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B")
	PCSetAll        = pitches("Cb", "C", "Cs", "Db", "D", "Ds", "Eb", "E", "Es", "Fb", "F", "Fs", "Gb", "G", "Gs", "Ab", "A", "As", "Bb", "B", "Bs")
)
