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

// Package curve implements x-only point arithmetic on Montgomery
// curves B*y^2 = x^3 + A*x^2 + x with B = 1 over GF(p^2). Doubling and
// tripling work on the projective curve constants (A24plus : C24) =
// (A + 2C : 4C) and (A24plus : A24minus) = (A + 2C : A - 2C), which the
// isogeny layer updates as it walks between curves.
package curve

import "github.com/fentec-project/sike/field"

// XDbl doubles a projective point on the curve given by
// (A24plus : C24).
func XDbl(f *field.Fp2, p ProjectivePoint, a24plus, c24 field.Fp2Element) ProjectivePoint {
	t0 := f.Sub(p.X, p.Z)
	t1 := f.Add(p.X, p.Z)
	t0 = f.Sqr(t0)
	t1 = f.Sqr(t1)
	z2 := f.Mul(c24, t0)
	x2 := f.Mul(z2, t1)
	t1 = f.Sub(t1, t0)
	t0 = f.Mul(a24plus, t1)
	z2 = f.Add(z2, t0)
	z2 = f.Mul(z2, t1)
	return ProjectivePoint{X: x2, Z: z2}
}

// XDblE applies XDbl e times.
func XDblE(f *field.Fp2, p ProjectivePoint, a24plus, c24 field.Fp2Element, e int) ProjectivePoint {
	for i := 0; i < e; i++ {
		p = XDbl(f, p, a24plus, c24)
	}
	return p
}

// XTpl triples a projective point on the curve given by
// (A24minus : A24plus).
func XTpl(f *field.Fp2, p ProjectivePoint, a24minus, a24plus field.Fp2Element) ProjectivePoint {
	t0 := f.Sub(p.X, p.Z)
	t2 := f.Sqr(t0)
	t1 := f.Add(p.X, p.Z)
	t3 := f.Sqr(t1)
	t4 := f.Add(t1, t0)
	t0 = f.Sub(t1, t0)
	t1 = f.Sqr(t4)
	t1 = f.Sub(t1, t3)
	t1 = f.Sub(t1, t2)
	t5 := f.Mul(t3, a24plus)
	t3 = f.Mul(t5, t3)
	t6 := f.Mul(t2, a24minus)
	t2 = f.Mul(t2, t6)
	t3 = f.Sub(t2, t3)
	t2 = f.Sub(t5, t6)
	t1 = f.Mul(t2, t1)
	t2 = f.Add(t3, t1)
	t2 = f.Sqr(t2)
	x3 := f.Mul(t2, t4)
	t1 = f.Sub(t3, t1)
	t1 = f.Sqr(t1)
	z3 := f.Mul(t1, t0)
	return ProjectivePoint{X: x3, Z: z3}
}

// XTplE applies XTpl e times.
func XTplE(f *field.Fp2, p ProjectivePoint, a24minus, a24plus field.Fp2Element, e int) ProjectivePoint {
	for i := 0; i < e; i++ {
		p = XTpl(f, p, a24minus, a24plus)
	}
	return p
}

// XAdd computes P + Q by differential addition, given the difference
// point D = P - Q.
func XAdd(f *field.Fp2, p, q, d ProjectivePoint) ProjectivePoint {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t2 := f.Sub(q.X, q.Z)
	t3 := f.Add(q.X, q.Z)
	t0 = f.Mul(t0, t2)
	t1 = f.Mul(t1, t3)
	x := f.Sqr(f.Add(t0, t1))
	z := f.Sqr(f.Sub(t0, t1))
	return ProjectivePoint{X: f.Mul(d.Z, x), Z: f.Mul(d.X, z)}
}

// XDblAdd computes (2P, P+Q) given the difference point D = P - Q and
// the affine constant a24 = (A+2)/4.
func XDblAdd(f *field.Fp2, p, q, d ProjectivePoint, a24 field.Fp2Element) (ProjectivePoint, ProjectivePoint) {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	x2 := f.Sqr(t0)
	t2 := f.Sub(q.X, q.Z)
	x3 := f.Add(q.X, q.Z)
	t0 = f.Mul(t0, t2)
	z2 := f.Sqr(t1)
	t1 = f.Mul(t1, x3)
	t2 = f.Sub(x2, z2)
	x2 = f.Mul(x2, z2)
	x3 = f.Mul(a24, t2)
	z3 := f.Sub(t0, t1)
	z2 = f.Add(x3, z2)
	x3 = f.Add(t0, t1)
	z2 = f.Mul(z2, t2)
	z3 = f.Sqr(z3)
	x3 = f.Sqr(x3)
	z3 = f.Mul(d.X, z3)
	x3 = f.Mul(d.Z, x3)
	return ProjectivePoint{X: x2, Z: z2}, ProjectivePoint{X: x3, Z: z3}
}

// Ladder3Pt computes P + m*Q with the Montgomery three-point ladder,
// given the affine x-coordinates of P, Q and P-Q on the curve with
// coefficient a. The scalar is a little-endian byte string of which
// nbits bits are consumed, one constant-time swap and one XDblAdd per
// bit.
func Ladder3Pt(f *field.Fp2, scalar []byte, nbits int, xP, xQ, xPQ, a field.Fp2Element) ProjectivePoint {
	// The registers are swapped in place below, so they must not share
	// storage with the caller's elements.
	r0 := ProjectivePoint{X: f.Copy(xQ), Z: f.One()}
	u := ProjectivePoint{X: f.Copy(xPQ), Z: f.One()}
	v := ProjectivePoint{X: f.Copy(xP), Z: f.One()}
	a24 := f.Add(a, f.Generate(2))
	a24 = f.Mul(a24, f.Inv(f.Generate(4)))
	var prev uint8
	for i := 0; i < nbits; i++ {
		bit := (scalar[i>>3] >> (i & 7)) & 1
		CondSwapPoints(f, &u, &v, bit^prev)
		r0, u = XDblAdd(f, r0, u, v, a24)
		prev = bit
	}
	CondSwapPoints(f, &u, &v, prev)
	return v
}

// JInvariant computes the j-invariant 256*(A^2 - 3C^2)^3 /
// (C^4 * (A^2 - 4C^2)) of the curve (A : C).
func JInvariant(f *field.Fp2, a, c field.Fp2Element) field.Fp2Element {
	t0 := f.Sqr(a)
	t1 := f.Sqr(c)
	t2 := f.Add(t1, t1)
	num := f.Sub(t0, f.Add(t2, t1))
	num = f.Mul(num, f.Sqr(num))
	for i := 0; i < 8; i++ {
		num = f.Double(num)
	}
	den := f.Sub(t0, f.Add(t2, t2))
	den = f.Mul(f.Sqr(t1), den)
	return f.Mul(num, f.Inv(den))
}

// RecoverCurveCoefficient reconstructs the Montgomery coefficient A
// from the affine x-coordinates of P, Q and P-Q via
// A = (1 - xP*xQ - xP*xR - xQ*xR)^2 / (4*xP*xQ*xR) - xP - xQ - xR.
func RecoverCurveCoefficient(f *field.Fp2, xP, xQ, xR field.Fp2Element) field.Fp2Element {
	t1 := f.Add(xP, xQ)
	t0 := f.Mul(xP, xQ)
	a := f.Mul(xR, t1)
	a = f.Add(a, t0)
	t0 = f.Mul(t0, xR)
	a = f.Sub(a, f.One())
	t0 = f.Double(f.Double(t0))
	t1 = f.Add(t1, xR)
	a = f.Sqr(a)
	a = f.Mul(a, f.Inv(t0))
	return f.Sub(a, t1)
}

// CodomainFromPlusMinus recovers the affine coefficient A from the
// projective pair (A24plus : A24minus) = (A + 2C : A - 2C).
func CodomainFromPlusMinus(f *field.Fp2, a24plus, a24minus field.Fp2Element) field.Fp2Element {
	c := f.Sub(a24plus, a24minus)
	c = f.Mul(c, f.Inv(f.Generate(4)))
	a := f.Add(a24plus, a24minus)
	a = f.Mul(a, f.Inv(f.Generate(2)))
	return f.Mul(a, f.Inv(c))
}

// CodomainFromPlusC recovers the affine coefficient A from the
// projective pair (A24plus : C24) = (A + 2C : 4C).
func CodomainFromPlusC(f *field.Fp2, a24plus, c24 field.Fp2Element) field.Fp2Element {
	a := f.Double(f.Double(a24plus))
	a = f.Sub(a, f.Double(c24))
	return f.Mul(a, f.Inv(c24))
}
