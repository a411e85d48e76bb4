package theory

// Torsor is a set of labels with a free and transitive action of the group
// Integral[N]. The only operations are adding and subtracting a group
// element; two torsor elements cannot be combined. Each instantiation of
// Torsor is its family's single canonical behavior (one compiled type per
// normalization rule), so no runtime family registry exists.
type Torsor[N Norm] struct {
	v Integral[N]
}

func NewTorsor[N Norm](n int) Torsor[N] {
	return Torsor[N]{NewIntegral[N](n)}
}

func (t Torsor[N]) Value() int { return t.v.Value() }

func (t Torsor[N]) Add(g Integral[N]) Torsor[N] { return Torsor[N]{t.v.Add(g.Value())} }
func (t Torsor[N]) Sub(g Integral[N]) Torsor[N] { return Torsor[N]{t.v.Sub(g.Value())} }

// Equal compares two elements of the same family by underlying value.
func (t Torsor[N]) Equal(o Torsor[N]) bool { return t.v == o.v }
