package theory

import (
	"strconv"
)

// NoteNumber is a 7-bit MIDI note number: 60 is middle C (C4), 69 is
// concert A4, a unit step is one semitone. Out-of-range values saturate
// to [0,127] on every construction and operation, never erroring.
type NoteNumber Integral[Clamp7Bit]

func NewNoteNumber(n int) NoteNumber { return NoteNumber(NewIntegral[Clamp7Bit](n)) }

func (nn NoteNumber) Value() int { return Integral[Clamp7Bit](nn).Value() }

// Transpose moves by a signed number of semitones, saturating.
func (nn NoteNumber) Transpose(semitones int) NoteNumber {
	return NoteNumber(Integral[Clamp7Bit](nn).Add(semitones))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ParseNoteNumber reads names of the form "po": a pitch-class name
// followed by an octave number. The octave is split off by scanning from
// the right for the first non-digit; a "-" at that boundary belongs to the
// octave, which tells negative octaves apart from flats by position. The
// octave absorbs any wraparound implied by accidentals, so B#4 lands one
// semitone above C5. Returns ok=false for malformed names.
func ParseNoteNumber(name string) (NoteNumber, bool) {
	if name == "" {
		return NoteNumber{}, false
	}
	idx := 0
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] < '0' || name[i] > '9' {
			idx = i
			break
		}
	}
	if name[idx] == '-' {
		idx--
	}
	if idx < 0 {
		return NoteNumber{}, false
	}
	pc, ok := ParsePitchClass(name[:idx+1])
	if !ok {
		return NoteNumber{}, false
	}
	octave, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return NoteNumber{}, false
	}
	octave -= floorDiv(pc.Value()-pc.Acc(), 12)
	return NewNoteNumber(60 + pc.Value() + (octave-4)*12), true
}

func (nn NoteNumber) String() string {
	octave := 4 + floorDiv(nn.Value()-60, 12)
	pc := NewPitchClass(nn.Value()-60, 0)
	return pc.String() + strconv.Itoa(octave)
}
