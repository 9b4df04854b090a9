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

import "math/bits"

// Limb arithmetic of the optimized engine. Elements are little-endian
// limb arrays in Montgomery form; every exported result is canonical,
// 0 <= v < p. No branch depends on element values.

// addLimbs computes z = a + b mod p.
func (f *Fp) addLimbs(z, a, b []uint64) {
	n := f.Words
	sum := make([]uint64, n)
	var carry uint64
	for i := 0; i < n; i++ {
		sum[i], carry = bits.Add64(a[i], b[i], carry)
	}
	diff := make([]uint64, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		diff[i], borrow = bits.Sub64(sum[i], f.p[i], borrow)
	}
	ctSelect(z, diff, sum, carry|(borrow^1))
}

// subLimbs computes z = a - b mod p.
func (f *Fp) subLimbs(z, a, b []uint64) {
	n := f.Words
	var borrow uint64
	for i := 0; i < n; i++ {
		z[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	mask := uint64(0) - borrow
	var carry uint64
	for i := 0; i < n; i++ {
		z[i], carry = bits.Add64(z[i], f.p[i]&mask, carry)
	}
}

// mulLimbs computes z = a * b * R^-1 mod p by CIOS interleaved
// multiply-reduce: for each limb of b, accumulate a*b[i], cancel the
// low limb with u = t[0]*mu times p, and shift one limb down.
func (f *Fp) mulLimbs(z, a, b []uint64) {
	n := f.Words
	t := make([]uint64, n+2)
	for i := 0; i < n; i++ {
		var c uint64
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(a[j], b[i])
			s, c1 := bits.Add64(t[j], lo, 0)
			s, c2 := bits.Add64(s, c, 0)
			t[j] = s
			c = hi + c1 + c2
		}
		s, c1 := bits.Add64(t[n], c, 0)
		t[n] = s
		t[n+1] = c1

		u := t[0] * f.mu
		c = 0
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul64(u, f.p[j])
			s, c1 := bits.Add64(t[j], lo, 0)
			s, c2 := bits.Add64(s, c, 0)
			t[j] = s
			c = hi + c1 + c2
		}
		s, c1 = bits.Add64(t[n], c, 0)
		t[n] = s
		t[n+1] += c1

		copy(t, t[1:])
		t[n+1] = 0
	}
	// t[:n] plus the extra word t[n] is in [0, 2p); one conditional
	// subtraction makes it canonical.
	diff := make([]uint64, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		diff[i], borrow = bits.Sub64(t[i], f.p[i], borrow)
	}
	ctSelect(z, diff, t[:n], t[n]|(borrow^1))
}

// ctSelect sets z = x when bit is 1 and z = y when bit is 0, without
// branching.
func ctSelect(z, x, y []uint64, bit uint64) {
	mask := uint64(0) - (bit & 1)
	for i := range z {
		z[i] = y[i] ^ (mask & (x[i] ^ y[i]))
	}
}

// CondSwap exchanges a and b when choice is 1. The optimized engine
// swaps by arithmetic masking; the reference engine, being built on
// math/big, is variable-time throughout and simply swaps.
func (f *Fp) CondSwap(a, b *FpElement, choice uint8) {
	if f.mode == Reference {
		if choice == 1 {
			*a, *b = *b, *a
		}
		return
	}
	mask := uint64(0) - uint64(choice&1)
	for i := range a.limbs {
		d := mask & (a.limbs[i] ^ b.limbs[i])
		a.limbs[i] ^= d
		b.limbs[i] ^= d
	}
}
