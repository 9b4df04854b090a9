/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package curve

import (
	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/internal"
)

// AffinePoint is a point on a Montgomery curve given by its affine
// coordinates. Difference points carry no y-coordinate: the protocol
// is x-only and never consults it, so reading y on such a point is an
// error rather than a silent zero.
type AffinePoint struct {
	X      field.Fp2Element
	y      field.Fp2Element
	yKnown bool
}

// NewAffinePoint builds a point with both coordinates defined.
func NewAffinePoint(x, y field.Fp2Element) AffinePoint {
	return AffinePoint{X: x, y: y, yKnown: true}
}

// NewDifferencePoint builds an x-only point, as used for the public
// basis difference points.
func NewDifferencePoint(x field.Fp2Element) AffinePoint {
	return AffinePoint{X: x}
}

// Y returns the y-coordinate, or an error for x-only points.
func (p AffinePoint) Y() (field.Fp2Element, error) {
	if !p.yKnown {
		return field.Fp2Element{}, internal.UndefinedY
	}
	return p.y, nil
}

// ProjectivePoint is an x-only point (X : Z). The point at infinity is
// encoded as Z = 0.
type ProjectivePoint struct {
	X field.Fp2Element
	Z field.Fp2Element
}

// Projective lifts an affine point to (x : 1).
func (p AffinePoint) Projective(f *field.Fp2) ProjectivePoint {
	return ProjectivePoint{X: p.X, Z: f.One()}
}

// Normalize returns the affine x-coordinate X/Z of a finite point.
func Normalize(f *field.Fp2, p ProjectivePoint) field.Fp2Element {
	return f.Mul(p.X, f.Inv(p.Z))
}

// IsInfinity reports whether p encodes the point at infinity.
func IsInfinity(f *field.Fp2, p ProjectivePoint) bool {
	return f.IsZero(p.Z)
}

// CondSwapPoints exchanges p and q when choice is 1, in constant time
// on the optimized engine.
func CondSwapPoints(f *field.Fp2, p, q *ProjectivePoint, choice uint8) {
	f.CondSwap(&p.X, &q.X, choice)
	f.CondSwap(&p.Z, &q.Z, choice)
}

// Wipe overwrites the point's coordinates.
func (p *ProjectivePoint) Wipe() {
	p.X.Wipe()
	p.Z.Wipe()
}
