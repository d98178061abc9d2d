// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crysym/geom"
)

// OpType classifies a symmetry operation.
type OpType int

const (
	// OpIdentity is the identity (possibly plus a lattice translation).
	OpIdentity OpType = iota
	// OpTranslation is a pure non-lattice translation.
	OpTranslation
	// OpRotation is a proper rotation with no intrinsic translation.
	OpRotation
	// OpScrew is a proper rotation with an intrinsic translation along its axis.
	OpScrew
	// OpInversion is the point inversion.
	OpInversion
	// OpMirror is a reflection with no intrinsic translation.
	OpMirror
	// OpGlide is a reflection with an intrinsic translation in its plane.
	OpGlide
	// OpRotoinversion is -3, -4 or -6.
	OpRotoinversion
)

var opTypeNames = [...]string{
	OpIdentity:      "identity",
	OpTranslation:   "translation",
	OpRotation:      "rotation",
	OpScrew:         "screw",
	OpInversion:     "inversion",
	OpMirror:        "mirror",
	OpGlide:         "glide",
	OpRotoinversion: "rotoinversion",
}

// String implements fmt.Stringer.
func (t OpType) String() string {
	if t < 0 || int(t) >= len(opTypeNames) {
		return "unknown"
	}
	return opTypeNames[t]
}

// classifyTol bounds intrinsic translations treated as zero, in cartesian units.
const classifyTol = 1e-4

// maxOpOrder bounds the search for the order of a linear part.
const maxOpOrder = 12

// SymOp is the operation v ↦ R·v + τ in cartesian coordinates.
// SymOp is a value type; every method returns a new op.
type SymOp struct {
	mat    geom.Mat3
	tau    geom.Vec3
	home   *geom.Lattice
	mapErr float64

	opType OpType
	label  string
	order  int
}

// NewSymOp builds an op from its cartesian linear part and translation.
// home, when non-nil, is the lattice used to decide whether intrinsic
// translations are lattice vectors.
func NewSymOp(mat geom.Mat3, tau geom.Vec3, home *geom.Lattice) SymOp {
	op := SymOp{mat: mat, tau: tau, home: home}
	op.classify()
	return op
}

// Identity returns the identity op bound to home.
func Identity(home *geom.Lattice) SymOp {
	return NewSymOp(geom.Identity(), geom.Vec3{}, home)
}

// Translation returns the pure translation by tau.
func Translation(tau geom.Vec3, home *geom.Lattice) SymOp {
	return NewSymOp(geom.Identity(), tau, home)
}

// Matrix returns the cartesian linear part.
func (op SymOp) Matrix() geom.Mat3 { return op.mat }

// Tau returns the cartesian translation.
func (op SymOp) Tau() geom.Vec3 { return op.tau }

// Lattice returns the home lattice, possibly nil.
func (op SymOp) Lattice() *geom.Lattice { return op.home }

// MapError returns the worst site-mapping error recorded for this op.
func (op SymOp) MapError() float64 { return op.mapErr }

// WithMapError returns op with its mapping error set to e.
func (op SymOp) WithMapError(e float64) SymOp {
	op.mapErr = e
	return op
}

// WithLattice returns op bound to a new home lattice and reclassified.
func (op SymOp) WithLattice(home *geom.Lattice) SymOp {
	op.home = home
	op.classify()
	return op
}

// WithTau returns op with translation tau and reclassified.
func (op SymOp) WithTau(tau geom.Vec3) SymOp {
	op.tau = tau
	op.classify()
	return op
}

// Apply returns R·v + τ.
func (op SymOp) Apply(v geom.Vec3) geom.Vec3 {
	return op.mat.MulVec(v).Add(op.tau)
}

// ApplyNoTrans returns R·v.
func (op SymOp) ApplyNoTrans(v geom.Vec3) geom.Vec3 {
	return op.mat.MulVec(v)
}

// Mul returns the composition op·other (other acts first).
func (op SymOp) Mul(other SymOp) SymOp {
	home := op.home
	if home == nil {
		home = other.home
	}
	out := NewSymOp(op.mat.Mul(other.mat), op.mat.MulVec(other.tau).Add(op.tau), home)
	out.mapErr = math.Max(op.mapErr, other.mapErr)
	return out
}

// Inverse returns (Rᵀ, -Rᵀτ).
func (op SymOp) Inverse() SymOp {
	rt := op.mat.T()
	out := NewSymOp(rt, rt.MulVec(op.tau).Neg(), op.home)
	out.mapErr = op.mapErr
	return out
}

// Equal compares linear parts and translations exactly within tol.
func (op SymOp) Equal(other SymOp, tol float64) bool {
	return op.mat.AlmostEqual(other.mat, tol) && op.tau.AlmostEqual(other.tau, tol)
}

// EqualPeriodic compares linear parts within tol and translations modulo
// lat. A nil lat falls back to Equal.
func (op SymOp) EqualPeriodic(other SymOp, lat *geom.Lattice, tol float64) bool {
	if !op.mat.AlmostEqual(other.mat, tol) {
		return false
	}
	if lat == nil {
		return op.tau.AlmostEqual(other.tau, tol)
	}
	return lat.IsLatticeVector(op.tau.Sub(other.tau), tol)
}

// IsIdentity reports whether op is the identity modulo its home lattice.
func (op SymOp) IsIdentity(tol float64) bool {
	return op.EqualPeriodic(Identity(op.home), op.home, tol)
}

// FracMatrix returns the linear part in fractional coordinates of lat,
// L⁻¹·R·L. For a symmetry of lat the result is an integer matrix.
func (op SymOp) FracMatrix(lat *geom.Lattice) geom.Mat3 {
	return lat.InverseMatrix().Mul(op.mat).Mul(lat.Matrix())
}

// FracTau returns the translation in fractional coordinates of lat.
func (op SymOp) FracTau(lat *geom.Lattice) geom.Vec3 {
	return lat.ToFrac(op.tau)
}

// Type returns the classification.
func (op SymOp) Type() OpType { return op.opType }

// Label returns the point-group class label: 1, 2, 3, 4, 6, -1, m, -3, -4 or -6.
func (op SymOp) Label() string { return op.label }

// Order returns the smallest k with Rᵏ = I, or 0 if none up to 12.
func (op SymOp) Order() int { return op.order }

// Det returns the determinant of the linear part rounded to ±1.
func (op SymOp) Det() int {
	if op.mat.Det() < 0 {
		return -1
	}
	return 1
}

// RotationAngle returns the rotation angle of the proper part det·R in degrees.
func (op SymOp) RotationAngle() float64 {
	proper := op.mat.Scale(float64(op.Det()))
	c := (proper.Trace() - 1) / 2
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}

// Axis returns the unit rotation axis of det·R, or the zero vector for ±I.
func (op SymOp) Axis() geom.Vec3 {
	proper := op.mat.Scale(float64(op.Det()))
	if proper.AlmostEqual(geom.Identity(), classifyTol) {
		return geom.Vec3{}
	}
	// for θ = 180° the antisymmetric part vanishes; use a column of R + I
	anti := geom.Vec3{
		proper[2][1] - proper[1][2],
		proper[0][2] - proper[2][0],
		proper[1][0] - proper[0][1],
	}
	if anti.Norm() > classifyTol {
		return anti.Normalize()
	}
	sym := proper.Add(geom.Identity())
	best := sym.Col(0)
	for j := 1; j < 3; j++ {
		if c := sym.Col(j); c.Norm() > best.Norm() {
			best = c
		}
	}
	return best.Normalize()
}

// IntrinsicTranslation returns (1/k)·Σⱼ Rʲ·τ over one period k of R. It
// is the screw or glide component of op, zero for pure rotations.
func (op SymOp) IntrinsicTranslation() geom.Vec3 {
	k := op.order
	if k == 0 {
		return geom.Vec3{}
	}
	sum := geom.Vec3{}
	p := geom.Identity()
	for j := 0; j < k; j++ {
		sum = sum.Add(p.MulVec(op.tau))
		p = op.mat.Mul(p)
	}
	return sum.Scale(1 / float64(k))
}

func (op SymOp) isLatticeShift(v geom.Vec3) bool {
	if op.home == nil {
		return v.Norm() < classifyTol
	}
	return op.home.IsLatticeVector(v, classifyTol)
}

func (op *SymOp) classify() {
	op.order = 0
	p := op.mat
	for k := 1; k <= maxOpOrder; k++ {
		if p.AlmostEqual(geom.Identity(), classifyTol) {
			op.order = k
			break
		}
		p = op.mat.Mul(p)
	}

	n := 1
	if angle := op.RotationAngle(); angle > 1 {
		n = int(math.Round(360 / angle))
	}
	shifted := !op.isLatticeShift(op.IntrinsicTranslation())

	if op.Det() > 0 {
		op.label = fmt.Sprintf("%d", n)
		switch {
		case n == 1 && shifted:
			op.opType = OpTranslation
		case n == 1:
			op.opType = OpIdentity
		case shifted:
			op.opType = OpScrew
		default:
			op.opType = OpRotation
		}
		return
	}
	switch n {
	case 1:
		op.label, op.opType = "-1", OpInversion
	case 2:
		op.label = "m"
		op.opType = OpMirror
		if shifted {
			op.opType = OpGlide
		}
	default:
		op.label, op.opType = fmt.Sprintf("-%d", n), OpRotoinversion
	}
}

// String renders the type, label and translation.
func (op SymOp) String() string {
	return fmt.Sprintf("%s(%s) tau=[%.6g, %.6g, %.6g]", op.opType, op.label, op.tau[0], op.tau[1], op.tau[2])
}
