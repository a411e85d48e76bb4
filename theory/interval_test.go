package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntervalKnownNames(t *testing.T) {
	cases := map[string]int{
		"P1":  0,
		"U1":  0,
		"u1":  0,
		"A1":  1,
		"m2":  1,
		"M2":  2,
		"m3":  3,
		"M3":  4,
		"P4":  5,
		"A4":  6,
		"d5":  6,
		"P5":  7,
		"m6":  8,
		"M6":  9,
		"m7":  10,
		"M7":  11,
		"P8":  12,
		"m9":  13,
		"M10": 16,
		"d12": 18,
		"P12": 19,
		"p12": 19,
		"P15": 24,
		"-M3": -4,
		"-U1": 0,
	}
	assert := assert.New(t)
	for name, semitones := range cases {
		iv, ok := ParseInterval(name)
		assert.True(ok, name)
		assert.Equal(semitones, iv.Value(), name)
	}
}

func TestParseIntervalRejectsBadNames(t *testing.T) {
	cases := []string{
		"", "M", "3", "m1", "d1", "P2", "M4", "P3", "M5", "X3", "P0", "P-2", "Mx", "??", "-", "--M3",
	}
	assert := assert.New(t)
	for _, name := range cases {
		_, ok := ParseInterval(name)
		assert.False(ok, name)
	}
}

func TestIntervalRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for n := -24; n <= 60; n++ {
		iv := NewInterval(n)
		parsed, ok := ParseInterval(iv.String())
		assert.True(ok, iv.String())
		assert.Equal(iv, parsed, iv.String())
	}
}

func TestIntervalNegativeNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("U1", NewInterval(0).String())
	assert.Equal("-M3", NewInterval(-4).String())
	assert.Equal("-P12", NewInterval(-19).String())
}

func TestIntervalClassModularClosure(t *testing.T) {
	assert := assert.New(t)
	for k := -30; k <= 30; k++ {
		ic := NewIntervalClass(k)
		assert.GreaterOrEqual(ic.Value(), 0)
		assert.LessOrEqual(ic.Value(), 11)
		for m := -2; m <= 2; m++ {
			assert.Equal(ic, NewIntervalClass(k+12*m))
		}
	}
}

func TestIntervalClassOctaveName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("P8", NewIntervalClass(0).String())
	assert.Equal("P8", NewIntervalClass(12).String())

	ic, ok := ParseIntervalClass("U1")
	assert.True(ok)
	assert.Equal(0, ic.Value())
}

func TestIntervalClassRoundTrip(t *testing.T) {
	for k := 0; k < 12; k++ {
		ic := NewIntervalClass(k)
		t.Run(fmt.Sprintf("residue %v as %v", k, ic), func(t *testing.T) {
			parsed, ok := ParseIntervalClass(ic.String())
			if !ok || parsed != ic {
				t.Error()
			}
		})
	}
}

func TestIntervalArithmeticNormalizes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, NewInterval(2).Add(3).Value())
	assert.Equal(-4, NewInterval(4).Mul(-1).Value())
	assert.Equal(8, NewIntervalClass(4).Mul(-1).Value())
	assert.Equal(11, NewIntervalClass(4).Sub(5).Value())
}
