package theory

import (
	"strings"
)

// Semitone residue -> letter name, sharps implied for the black keys.
var baseNames = [12]string{"C", "C", "D", "D", "E", "F", "F", "G", "G", "A", "A", "B"}

var letterResidue = map[byte]int{
	'c': 0,
	'd': 2,
	'e': 4,
	'f': 5,
	'g': 7,
	'a': 9,
	'b': 11,
}

// PitchClass is a torsor over Z12: pitch classes acted on by interval
// classes. It carries a separate accidental count so that output spelling
// stays consistent with the input, e.g. C## + M3 keeps its sharps.
// Transposition never touches the accidental count, so spellings may drift
// from canonical; equality is by residue only.
type PitchClass struct {
	t   Torsor[Mod12]
	acc int
}

func NewPitchClass(n, acc int) PitchClass {
	return PitchClass{NewTorsor[Mod12](n), acc}
}

func (p PitchClass) Value() int { return p.t.Value() }

// Acc is the stored accidental count (display bookkeeping only).
func (p PitchClass) Acc() int { return p.acc }

func (p PitchClass) Add(ic IntervalClass) PitchClass {
	return PitchClass{p.t.Add(Integral[Mod12](ic)), p.acc}
}

func (p PitchClass) Sub(ic IntervalClass) PitchClass {
	return PitchClass{p.t.Sub(Integral[Mod12](ic)), p.acc}
}

// Equal compares by residue; enharmonic spellings of one pitch are equal.
func (p PitchClass) Equal(o PitchClass) bool { return p.t.Equal(o.t) }

// ParsePitchClass reads case-insensitive names of the form "pa": a letter
// A-G followed by any run of modifiers, each "s"/"#" a sharp and each "b"
// a flat. Modifiers are consumed right to left so a lone "b" is the pitch
// B, not a flat. Returns ok=false for malformed names.
func ParsePitchClass(name string) (PitchClass, bool) {
	name = strings.ToLower(name)
	shift := 0
	for len(name) > 1 {
		switch name[len(name)-1] {
		case 's', '#':
			shift++
		case 'b':
			shift--
		default:
			return PitchClass{}, false
		}
		name = name[:len(name)-1]
	}
	if len(name) != 1 {
		return PitchClass{}, false
	}
	base, ok := letterResidue[name[0]]
	if !ok {
		return PitchClass{}, false
	}
	// E and B have no black key a semitone up, so their sharps (E#, B#)
	// keep the full count; every other letter absorbs one sharp into the
	// implied black-key spelling.
	acc := shift
	if shift >= 0 && base != 4 && base != 11 {
		acc--
	}
	return NewPitchClass(base+shift, acc), true
}

func (p PitchClass) String() string {
	shifted := p.t.Sub(NewIntegral[Mod12](p.acc)).Value()
	shnum := p.acc
	switch shifted {
	case 1, 3, 6, 8, 10:
		shnum++
	}
	if shnum >= 0 {
		return baseNames[shifted] + strings.Repeat("#", shnum)
	}
	return baseNames[shifted] + strings.Repeat("b", -shnum)
}
