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

package field

import (
	"fmt"

	"github.com/fentec-project/sike/internal"
)

// Fp2 is the context for arithmetic over GF(p^2) = GF(p)[i]/(i^2 + 1).
// It shares the engine of its underlying prime-field context.
type Fp2 struct {
	Fp *Fp
}

// Fp2Element is a + b*i with both components reduced mod p.
type Fp2Element struct {
	A FpElement // real part
	B FpElement // imaginary part
}

// NewFp2 wraps a prime-field context into its quadratic extension.
func NewFp2(fp *Fp) *Fp2 {
	return &Fp2{Fp: fp}
}

// Zero returns the additive identity.
func (f *Fp2) Zero() Fp2Element {
	return Fp2Element{A: f.Fp.Zero(), B: f.Fp.Zero()}
}

// One returns the multiplicative identity.
func (f *Fp2) One() Fp2Element {
	return Fp2Element{A: f.Fp.One(), B: f.Fp.Zero()}
}

// Generate lifts a small integer n to (n mod p) + 0*i.
func (f *Fp2) Generate(n uint64) Fp2Element {
	return Fp2Element{A: f.Fp.FromUint64(n), B: f.Fp.Zero()}
}

// Add returns x + y componentwise.
func (f *Fp2) Add(x, y Fp2Element) Fp2Element {
	return Fp2Element{A: f.Fp.Add(x.A, y.A), B: f.Fp.Add(x.B, y.B)}
}

// Sub returns x - y componentwise.
func (f *Fp2) Sub(x, y Fp2Element) Fp2Element {
	return Fp2Element{A: f.Fp.Sub(x.A, y.A), B: f.Fp.Sub(x.B, y.B)}
}

// Neg returns -x.
func (f *Fp2) Neg(x Fp2Element) Fp2Element {
	return Fp2Element{A: f.Fp.Neg(x.A), B: f.Fp.Neg(x.B)}
}

// Double returns x + x.
func (f *Fp2) Double(x Fp2Element) Fp2Element {
	return f.Add(x, x)
}

// Mul returns x * y using one level of Karatsuba: with t = a0*b0 and
// u = a1*b1, the product is (t - u) + ((a0+a1)(b0+b1) - t - u)*i.
func (f *Fp2) Mul(x, y Fp2Element) Fp2Element {
	t := f.Fp.Mul(x.A, y.A)
	u := f.Fp.Mul(x.B, y.B)
	s := f.Fp.Mul(f.Fp.Add(x.A, x.B), f.Fp.Add(y.A, y.B))
	return Fp2Element{
		A: f.Fp.Sub(t, u),
		B: f.Fp.Sub(f.Fp.Sub(s, t), u),
	}
}

// Sqr returns x * x as ((a0+a1)(a0-a1), 2*a0*a1).
func (f *Fp2) Sqr(x Fp2Element) Fp2Element {
	a := f.Fp.Mul(f.Fp.Add(x.A, x.B), f.Fp.Sub(x.A, x.B))
	b := f.Fp.Mul(x.A, x.B)
	return Fp2Element{A: a, B: f.Fp.Add(b, b)}
}

// Inv returns x^-1 by multiplying with the conjugate and inverting the
// norm a0^2 + a1^2 in the prime field.
func (f *Fp2) Inv(x Fp2Element) Fp2Element {
	norm := f.Fp.Add(f.Fp.Sqr(x.A), f.Fp.Sqr(x.B))
	ninv := f.Fp.Inv(norm)
	return Fp2Element{
		A: f.Fp.Mul(x.A, ninv),
		B: f.Fp.Neg(f.Fp.Mul(x.B, ninv)),
	}
}

// Eq reports whether x and y represent the same extension-field value.
func (f *Fp2) Eq(x, y Fp2Element) bool {
	ea := f.Fp.Eq(x.A, y.A)
	eb := f.Fp.Eq(x.B, y.B)
	return ea && eb
}

// IsZero reports whether x is the additive identity.
func (f *Fp2) IsZero(x Fp2Element) bool {
	za := f.Fp.IsZero(x.A)
	zb := f.Fp.IsZero(x.B)
	return za && zb
}

// Copy returns an element with storage independent of x.
func (f *Fp2) Copy(x Fp2Element) Fp2Element {
	return Fp2Element{A: f.Fp.Copy(x.A), B: f.Fp.Copy(x.B)}
}

// CondSwap exchanges x and y when choice is 1.
func (f *Fp2) CondSwap(x, y *Fp2Element, choice uint8) {
	f.Fp.CondSwap(&x.A, &y.A, choice)
	f.Fp.CondSwap(&x.B, &y.B, choice)
}

// ToBytes serializes x as the real component followed by the imaginary
// component, each in the fixed-length canonical form.
func (f *Fp2) ToBytes(x Fp2Element) []byte {
	out := make([]byte, 0, 2*f.Fp.Bytes)
	out = append(out, f.Fp.ToBytes(x.A)...)
	out = append(out, f.Fp.ToBytes(x.B)...)
	return out
}

// FromBytes parses the serialized form produced by ToBytes.
func (f *Fp2) FromBytes(b []byte) (Fp2Element, error) {
	if len(b) != 2*f.Fp.Bytes {
		return Fp2Element{}, internal.MalformedInput
	}
	a, err := f.Fp.FromBytes(b[:f.Fp.Bytes])
	if err != nil {
		return Fp2Element{}, err
	}
	bb, err := f.Fp.FromBytes(b[f.Fp.Bytes:])
	if err != nil {
		return Fp2Element{}, err
	}
	return Fp2Element{A: a, B: bb}, nil
}

// String renders x as hex for debugging and test output.
func (f *Fp2) String(x Fp2Element) string {
	return fmt.Sprintf("%x + %x*i", f.Fp.ToBytes(x.A), f.Fp.ToBytes(x.B))
}

// Wipe overwrites both components.
func (e *Fp2Element) Wipe() {
	e.A.Wipe()
	e.B.Wipe()
}
