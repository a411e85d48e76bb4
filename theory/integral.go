package theory

import "github.com/jsphweid/eartrain/util"

// Norm is a normalization rule for the internal representation of an
// Integral. Implementations must be idempotent.
type Norm interface {
	Normalize(n int) int
}

// Ident leaves integers unconstrained.
type Ident struct{}

func (Ident) Normalize(n int) int { return n }

// Mod12 keeps the residue mod 12, always in [0,11].
type Mod12 struct{}

func (Mod12) Normalize(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}

// Clamp7Bit saturates to the MIDI note range [0,127].
type Clamp7Bit struct{}

func (Clamp7Bit) Normalize(n int) int {
	return util.Min(util.Max(n, 0), 127)
}

// Integral is a wrapped integer normalized by N. The wrapped value always
// satisfies n == Normalize(n); every operation re-normalizes its result.
// Each instantiation of Integral is comparable by ==.
type Integral[N Norm] struct {
	n int
}

func NewIntegral[N Norm](n int) Integral[N] {
	var nz N
	return Integral[N]{nz.Normalize(n)}
}

func (v Integral[N]) Value() int { return v.n }

func (v Integral[N]) Add(m int) Integral[N] { return NewIntegral[N](v.n + m) }
func (v Integral[N]) Sub(m int) Integral[N] { return NewIntegral[N](v.n - m) }
func (v Integral[N]) Mul(m int) Integral[N] { return NewIntegral[N](v.n * m) }
func (v Integral[N]) Neg() Integral[N]      { return NewIntegral[N](-v.n) }

// Z12 is the group of residues mod 12.
type Z12 = Integral[Mod12]
