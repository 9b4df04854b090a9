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

// Package isogeny evaluates isogenies of degree 2^e and 3^e between
// Montgomery curves as compositions of 2-, 3- and 4-isogeny steps.
// Each step has a kernel routine producing the codomain curve
// constants plus evaluation coefficients, and an evaluation routine
// pushing points through.
package isogeny

import (
	"github.com/fentec-project/sike/curve"
	"github.com/fentec-project/sike/field"
)

// Get4Isog computes the degree-4 step with kernel point k of order 4.
// It returns the codomain constants (A24plus : C24) and the three
// evaluation coefficients.
func Get4Isog(f *field.Fp2, k curve.ProjectivePoint) (field.Fp2Element, field.Fp2Element, [3]field.Fp2Element) {
	var coeff [3]field.Fp2Element
	coeff[1] = f.Sub(k.X, k.Z)
	coeff[2] = f.Add(k.X, k.Z)
	coeff[0] = f.Sqr(k.Z)
	coeff[0] = f.Double(coeff[0])
	c24 := f.Sqr(coeff[0])
	coeff[0] = f.Double(coeff[0])
	a24plus := f.Sqr(k.X)
	a24plus = f.Double(a24plus)
	a24plus = f.Sqr(a24plus)
	return a24plus, c24, coeff
}

// Eval4Isog pushes a point through the degree-4 step described by
// coeff.
func Eval4Isog(f *field.Fp2, p curve.ProjectivePoint, coeff [3]field.Fp2Element) curve.ProjectivePoint {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	x := f.Mul(t0, coeff[1])
	z := f.Mul(t1, coeff[2])
	t0 = f.Mul(t0, t1)
	t0 = f.Mul(t0, coeff[0])
	t1 = f.Add(x, z)
	z = f.Sub(x, z)
	t1 = f.Sqr(t1)
	z = f.Sqr(z)
	x = f.Add(t0, t1)
	t0 = f.Sub(z, t0)
	x = f.Mul(x, t1)
	z = f.Mul(z, t0)
	return curve.ProjectivePoint{X: x, Z: z}
}

// Get2Isog computes the degree-2 step with kernel point k of order 2.
func Get2Isog(f *field.Fp2, k curve.ProjectivePoint) (field.Fp2Element, field.Fp2Element) {
	a24plus := f.Sqr(k.X)
	c24 := f.Sqr(k.Z)
	a24plus = f.Sub(c24, a24plus)
	return a24plus, c24
}

// Eval2Isog pushes a point through the degree-2 step with kernel k.
func Eval2Isog(f *field.Fp2, p, k curve.ProjectivePoint) curve.ProjectivePoint {
	t0 := f.Add(k.X, k.Z)
	t1 := f.Sub(k.X, k.Z)
	t2 := f.Add(p.X, p.Z)
	t3 := f.Sub(p.X, p.Z)
	t0 = f.Mul(t0, t3)
	t1 = f.Mul(t1, t2)
	t2 = f.Add(t0, t1)
	t3 = f.Sub(t0, t1)
	x := f.Mul(p.X, t2)
	z := f.Mul(p.Z, t3)
	return curve.ProjectivePoint{X: x, Z: z}
}

// Get3Isog computes the degree-3 step with kernel point k of order 3.
// It returns the codomain constants (A24minus : A24plus) and the two
// evaluation coefficients.
func Get3Isog(f *field.Fp2, k curve.ProjectivePoint) (field.Fp2Element, field.Fp2Element, [2]field.Fp2Element) {
	var coeff [2]field.Fp2Element
	coeff[0] = f.Sub(k.X, k.Z)
	t0 := f.Sqr(coeff[0])
	coeff[1] = f.Add(k.X, k.Z)
	t1 := f.Sqr(coeff[1])
	t2 := f.Add(t0, t1)
	t3 := f.Add(coeff[0], coeff[1])
	t3 = f.Sqr(t3)
	t3 = f.Sub(t3, t2)
	t2 = f.Add(t1, t3)
	t3 = f.Add(t3, t0)
	t4 := f.Add(t3, t0)
	t4 = f.Double(t4)
	t4 = f.Add(t1, t4)
	a24minus := f.Mul(t2, t4)
	t4 = f.Add(t1, t2)
	t4 = f.Double(t4)
	t4 = f.Add(t0, t4)
	a24plus := f.Mul(t3, t4)
	return a24minus, a24plus, coeff
}

// Eval3Isog pushes a point through the degree-3 step described by
// coeff.
func Eval3Isog(f *field.Fp2, p curve.ProjectivePoint, coeff [2]field.Fp2Element) curve.ProjectivePoint {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t0 = f.Mul(coeff[0], t0)
	t1 = f.Mul(coeff[1], t1)
	t2 := f.Add(t0, t1)
	t0 = f.Sub(t1, t0)
	t2 = f.Sqr(t2)
	t0 = f.Sqr(t0)
	x := f.Mul(p.X, t2)
	z := f.Mul(p.Z, t0)
	return curve.ProjectivePoint{X: x, Z: z}
}
