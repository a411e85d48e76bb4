package theory

import (
	"strconv"
	"strings"
)

// Semitone residue -> diatonic interval number.
var intervalNumber = [12]int{1, 2, 2, 3, 3, 4, 5, 5, 6, 6, 7, 7}

// Semitone residue -> interval quality.
var intervalQuality = [12]string{"P", "m", "M", "m", "M", "P", "d", "P", "m", "M", "m", "M"}

// Interval is a signed semitone count. 0 is a unison.
type Interval Integral[Ident]

func NewInterval(n int) Interval { return Interval(NewIntegral[Ident](n)) }

func (iv Interval) Value() int { return Integral[Ident](iv).Value() }

func (iv Interval) Add(m int) Interval { return Interval(Integral[Ident](iv).Add(m)) }
func (iv Interval) Sub(m int) Interval { return Interval(Integral[Ident](iv).Sub(m)) }
func (iv Interval) Mul(m int) Interval { return Interval(Integral[Ident](iv).Mul(m)) }
func (iv Interval) Neg() Interval      { return Interval(Integral[Ident](iv).Neg()) }

// ParseInterval reads names of the form "qn": a quality letter (P/U
// perfect/unison, d diminished, A augmented, m minor, M major; only the
// m/M distinction is case-sensitive) followed by a positive diatonic
// number, with an optional leading minus for descending intervals.
// Returns ok=false for malformed names or impossible quality/number
// combinations, e.g. "m1" or "P3". Direction comes only from the minus
// sign, never from the quality letter.
func ParseInterval(name string) (Interval, bool) {
	sign := 1
	if strings.HasPrefix(name, "-") {
		sign = -1
		name = name[1:]
	}
	n, ok := parseIntervalMagnitude(name)
	if !ok {
		return Interval{}, false
	}
	return NewInterval(sign * n), true
}

func parseIntervalMagnitude(name string) (int, bool) {
	if len(name) < 2 {
		return 0, false
	}
	quality := name[0]
	number, err := strconv.Atoi(name[1:])
	if err != nil || number <= 0 {
		return 0, false
	}
	q := strings.ToLower(string(quality))[0]

	if number == 1 {
		switch q {
		case 'p', 'u':
			return 0, true
		case 'a':
			return 1, true
		}
		return 0, false
	}

	octaves, sn := (number-1)/7, (number-1)%7
	switch sn {
	case 0, 3, 4: // perfect degrees
		var shift int
		switch q {
		case 'p':
			shift = 0
		case 'a':
			shift = 1
		case 'd':
			shift = -1
		default:
			return 0, false
		}
		base := map[int]int{0: 0, 3: 5, 4: 7}[sn]
		return base + 12*octaves + shift, true
	default: // imperfect degrees
		var shift int
		switch q {
		case 'a':
			shift = 1
		case 'd':
			shift = -2
		case 'm':
			if quality == 'm' {
				shift = -1
			} else {
				shift = 0 // major
			}
		default:
			return 0, false
		}
		base := map[int]int{1: 2, 2: 4, 5: 9, 6: 11}[sn]
		return base + 12*octaves + shift, true
	}
}

func formatInterval(n int) string {
	var neg string
	if n < 0 {
		neg = "-"
		n = -n
	}
	octave, ic := n/12, n%12
	if octave == 0 && ic == 0 {
		return "U1"
	}
	return neg + intervalQuality[ic] + strconv.Itoa(intervalNumber[ic]+7*octave)
}

func (iv Interval) String() string { return formatInterval(iv.Value()) }

// IntervalClass is an interval reduced mod one octave. Residue 0 denotes a
// full octave, not a unison.
type IntervalClass Integral[Mod12]

func NewIntervalClass(n int) IntervalClass { return IntervalClass(NewIntegral[Mod12](n)) }

func (ic IntervalClass) Value() int { return Integral[Mod12](ic).Value() }

func (ic IntervalClass) Add(m int) IntervalClass { return IntervalClass(Integral[Mod12](ic).Add(m)) }
func (ic IntervalClass) Sub(m int) IntervalClass { return IntervalClass(Integral[Mod12](ic).Sub(m)) }
func (ic IntervalClass) Mul(m int) IntervalClass { return IntervalClass(Integral[Mod12](ic).Mul(m)) }
func (ic IntervalClass) Neg() IntervalClass      { return IntervalClass(Integral[Mod12](ic).Neg()) }

// ParseIntervalClass reads the same grammar as ParseInterval and reduces
// the result mod 12.
func ParseIntervalClass(name string) (IntervalClass, bool) {
	iv, ok := ParseInterval(name)
	if !ok {
		return IntervalClass{}, false
	}
	return NewIntervalClass(iv.Value()), true
}

func (ic IntervalClass) String() string {
	if ic.Value() == 0 {
		return "P8"
	}
	return formatInterval(ic.Value())
}
