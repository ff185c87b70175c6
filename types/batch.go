package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A batch of scalar lanes. Each lane belongs to one ray.
type Scalars []float64

// A batch of boolean lanes.
type Mask []bool

// Create a scalar batch with n lanes set to val.
func Fill(n int, val float64) Scalars {
	s := make(Scalars, n)
	floats.AddConst(val, s)
	return s
}

func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Sprintf("types: batch length mismatch (%d != %d)", a, b))
	}
}

// Lane-wise minimum of two batches.
func MinScalars(a, b Scalars) Scalars {
	mustMatch(len(a), len(b))
	out := make(Scalars, len(a))
	for i := range a {
		out[i] = math.Min(a[i], b[i])
	}
	return out
}

// Return the lanes of s for which m is set.
func (s Scalars) Extract(m Mask) Scalars {
	mustMatch(len(s), len(m))
	out := make(Scalars, 0, m.Count())
	for i, set := range m {
		if set {
			out = append(out, s[i])
		}
	}
	return out
}

// Scatter s into a zeroed batch as wide as m, filling the lanes for which m
// is set in order.
func (s Scalars) Place(m Mask) Scalars {
	out := make(Scalars, len(m))
	src := 0
	for i, set := range m {
		if set {
			out[i] = s[src]
			src++
		}
	}
	mustMatch(src, len(s))
	return out
}

// Lane-wise product.
func (s Scalars) Mul(s2 Scalars) Scalars {
	mustMatch(len(s), len(s2))
	return floats.MulTo(make(Scalars, len(s)), s, s2)
}

// Clamp every lane to [lo, hi].
func (s Scalars) Clip(lo, hi float64) Scalars {
	out := make(Scalars, len(s))
	for i, v := range s {
		out[i] = math.Min(math.Max(v, lo), hi)
	}
	return out
}

// Raise every lane to the power e.
func (s Scalars) Pow(e float64) Scalars {
	out := make(Scalars, len(s))
	for i, v := range s {
		out[i] = math.Pow(v, e)
	}
	return out
}

// Lane-wise equality test.
func (s Scalars) Equal(s2 Scalars) Mask {
	mustMatch(len(s), len(s2))
	out := make(Mask, len(s))
	for i := range s {
		out[i] = s[i] == s2[i]
	}
	return out
}

// Lane-wise logical and.
func (m Mask) And(m2 Mask) Mask {
	mustMatch(len(m), len(m2))
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && m2[i]
	}
	return out
}

// Returns true if at least one lane is set.
func (m Mask) Any() bool {
	for _, set := range m {
		if set {
			return true
		}
	}
	return false
}

// Number of set lanes.
func (m Mask) Count() int {
	n := 0
	for _, set := range m {
		if set {
			n++
		}
	}
	return n
}

// Convert the mask to a 0/1 scalar batch.
func (m Mask) Scalars() Scalars {
	out := make(Scalars, len(m))
	for i, set := range m {
		if set {
			out[i] = 1
		}
	}
	return out
}

// A batch of 3 component vectors stored as three parallel lane arrays.
// Operations never modify their receiver.
type Vec3Batch struct {
	X, Y, Z Scalars
}

// Create a zeroed batch with n lanes.
func NewVec3Batch(n int) Vec3Batch {
	return Vec3Batch{
		X: make(Scalars, n),
		Y: make(Scalars, n),
		Z: make(Scalars, n),
	}
}

// Create a batch with n lanes all set to v.
func Broadcast(n int, v Vec3) Vec3Batch {
	return Vec3Batch{X: Fill(n, v[0]), Y: Fill(n, v[1]), Z: Fill(n, v[2])}
}

// Number of lanes.
func (b Vec3Batch) Len() int {
	return len(b.X)
}

// Get the vector stored in lane i.
func (b Vec3Batch) Lane(i int) Vec3 {
	return Vec3{b.X[i], b.Y[i], b.Z[i]}
}

// Lane-wise vector addition.
func (b Vec3Batch) Add(o Vec3Batch) Vec3Batch {
	n := b.Len()
	mustMatch(n, o.Len())
	out := NewVec3Batch(n)
	floats.AddTo(out.X, b.X, o.X)
	floats.AddTo(out.Y, b.Y, o.Y)
	floats.AddTo(out.Z, b.Z, o.Z)
	return out
}

// Lane-wise vector subtraction.
func (b Vec3Batch) Sub(o Vec3Batch) Vec3Batch {
	n := b.Len()
	mustMatch(n, o.Len())
	out := NewVec3Batch(n)
	floats.SubTo(out.X, b.X, o.X)
	floats.SubTo(out.Y, b.Y, o.Y)
	floats.SubTo(out.Z, b.Z, o.Z)
	return out
}

// Add v to every lane.
func (b Vec3Batch) AddVec(v Vec3) Vec3Batch {
	out := Vec3Batch{
		X: append(Scalars(nil), b.X...),
		Y: append(Scalars(nil), b.Y...),
		Z: append(Scalars(nil), b.Z...),
	}
	floats.AddConst(v[0], out.X)
	floats.AddConst(v[1], out.Y)
	floats.AddConst(v[2], out.Z)
	return out
}

// Subtract v from every lane.
func (b Vec3Batch) SubVec(v Vec3) Vec3Batch {
	return b.AddVec(v.Mul(-1))
}

// Scale every lane by the matching lane of s.
func (b Vec3Batch) Scale(s Scalars) Vec3Batch {
	return Vec3Batch{X: b.X.Mul(s), Y: b.Y.Mul(s), Z: b.Z.Mul(s)}
}

// Scale every lane by f.
func (b Vec3Batch) Mul(f float64) Vec3Batch {
	return b.MulVec(Vec3{f, f, f})
}

// Component-wise multiply every lane with v.
func (b Vec3Batch) MulVec(v Vec3) Vec3Batch {
	out := NewVec3Batch(b.Len())
	floats.ScaleTo(out.X, v[0], b.X)
	floats.ScaleTo(out.Y, v[1], b.Y)
	floats.ScaleTo(out.Z, v[2], b.Z)
	return out
}

// Lane-wise dot product.
func (b Vec3Batch) Dot(o Vec3Batch) Scalars {
	n := b.Len()
	mustMatch(n, o.Len())
	out := floats.MulTo(make(Scalars, n), b.X, o.X)
	tmp := floats.MulTo(make(Scalars, n), b.Y, o.Y)
	floats.Add(out, tmp)
	floats.Add(out, floats.MulTo(tmp, b.Z, o.Z))
	return out
}

// Dot product of every lane with v.
func (b Vec3Batch) DotVec(v Vec3) Scalars {
	return b.Dot(Broadcast(b.Len(), v))
}

// Lane-wise cross product b × o.
func (b Vec3Batch) Cross(o Vec3Batch) Vec3Batch {
	n := b.Len()
	mustMatch(n, o.Len())
	tmp := make(Scalars, n)
	return Vec3Batch{
		X: crossTerm(b.Y, o.Z, b.Z, o.Y, tmp),
		Y: crossTerm(b.Z, o.X, b.X, o.Z, tmp),
		Z: crossTerm(b.X, o.Y, b.Y, o.X, tmp),
	}
}

// Compute a1*b1 - a2*b2 lane-wise using tmp as scratch space.
func crossTerm(a1, b1, a2, b2, tmp Scalars) Scalars {
	out := floats.MulTo(make(Scalars, len(a1)), a1, b1)
	floats.Sub(out, floats.MulTo(tmp, a2, b2))
	return out
}

// Cross product of every lane with v.
func (b Vec3Batch) CrossVec(v Vec3) Vec3Batch {
	return b.Cross(Broadcast(b.Len(), v))
}

// Lane-wise squared length.
func (b Vec3Batch) NormSquared() Scalars {
	return b.Dot(b)
}

// Normalize every lane. Lanes with zero magnitude are divided by 1 so a
// zero vector stays zero instead of turning into NaN.
func (b Vec3Batch) Normalize() Vec3Batch {
	sq := b.NormSquared()
	inv := make(Scalars, len(sq))
	for i, v := range sq {
		mag := math.Sqrt(v)
		if mag == 0 {
			mag = 1
		}
		inv[i] = 1.0 / mag
	}
	return b.Scale(inv)
}

// Gather the lanes for which m is set.
func (b Vec3Batch) Extract(m Mask) Vec3Batch {
	return Vec3Batch{X: b.X.Extract(m), Y: b.Y.Extract(m), Z: b.Z.Extract(m)}
}

// Scatter the batch into a zeroed batch as wide as m.
func (b Vec3Batch) Place(m Mask) Vec3Batch {
	return Vec3Batch{X: b.X.Place(m), Y: b.Y.Place(m), Z: b.Z.Place(m)}
}
