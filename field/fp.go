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
	"encoding/binary"
	"math/big"

	"github.com/fentec-project/sike/internal"
)

// Mode selects which of the two arithmetic engines a field context uses.
// Both engines implement the same operations and produce identical
// serialized results.
type Mode int

const (
	// Reference delegates to math/big, reducing eagerly after each
	// operation. It is easy to audit but takes variable time. Wipe
	// clears an element's own words, but temporaries that math/big
	// allocates internally are not wiped.
	Reference Mode = iota
	// Optimized keeps elements in Montgomery form as fixed arrays of
	// 64-bit limbs and runs in constant time.
	Optimized
)

// InvChain is the tabulated sliding-window chain computing x^((p-3)/4),
// the core of the constant-time inversion x^(p-2). Starting from
// acc = x^Initial, each step performs Pow[i] squarings followed by a
// multiplication with x^Mul[i] from a window of precomputed odd powers
// (a zero entry means squarings only).
type InvChain struct {
	Initial int
	Pow     []int
	Mul     []int
}

// Fp is the context for arithmetic modulo a prime p. It carries the
// Montgomery constants of the optimized engine, derived from p, so that
// elements themselves stay plain containers.
type Fp struct {
	// P is the prime modulus.
	P *big.Int
	// Words is the number of 64-bit limbs per element.
	Words int
	// Bytes is the serialized length of an element.
	Bytes int

	mode  Mode
	p     []uint64 // p
	p1    []uint64 // p + 1
	px2   []uint64 // 2p
	pr2   []uint64 // R^2 mod p, R = 2^(64*Words)
	mu    uint64   // -p^-1 mod 2^64
	chain InvChain
}

// FpElement is a residue mod p. Exactly one representation is live,
// depending on the engine of the owning context: a Montgomery-form limb
// array, or a canonical big integer.
type FpElement struct {
	limbs []uint64
	val   *big.Int
}

// NewFp builds a field context for the prime p. The Montgomery
// constants are derived once here; chain is the tabulated inversion
// chain of the parameter set.
func NewFp(p *big.Int, mode Mode, chain InvChain) *Fp {
	words := (p.BitLen() + 63) / 64
	f := &Fp{
		P:     new(big.Int).Set(p),
		Words: words,
		Bytes: (p.BitLen() + 7) / 8,
		mode:  mode,
		chain: chain,
	}
	f.p = limbsFromBig(p, words)
	f.p1 = limbsFromBig(new(big.Int).Add(p, big.NewInt(1)), words)
	f.px2 = limbsFromBig(new(big.Int).Lsh(p, 1), words)
	r := new(big.Int).Lsh(big.NewInt(1), uint(64*words))
	f.pr2 = limbsFromBig(new(big.Int).Exp(r, big.NewInt(2), p), words)
	w := new(big.Int).Lsh(big.NewInt(1), 64)
	muInv := new(big.Int).ModInverse(p, w)
	f.mu = new(big.Int).Sub(w, muInv).Uint64()
	return f
}

// Mode returns the engine this context was built with.
func (f *Fp) Mode() Mode { return f.mode }

// Zero returns the additive identity.
func (f *Fp) Zero() FpElement {
	if f.mode == Reference {
		return FpElement{val: new(big.Int)}
	}
	return FpElement{limbs: make([]uint64, f.Words)}
}

// One returns the multiplicative identity.
func (f *Fp) One() FpElement {
	return f.FromUint64(1)
}

// FromUint64 lifts a small integer into the field.
func (f *Fp) FromUint64(n uint64) FpElement {
	if f.mode == Reference {
		return FpElement{val: new(big.Int).Mod(new(big.Int).SetUint64(n), f.P)}
	}
	raw := make([]uint64, f.Words)
	raw[0] = n
	e := FpElement{limbs: make([]uint64, f.Words)}
	f.mulLimbs(e.limbs, raw, f.pr2)
	return e
}

// Add returns a + b.
func (f *Fp) Add(a, b FpElement) FpElement {
	if f.mode == Reference {
		v := new(big.Int).Add(a.val, b.val)
		return FpElement{val: v.Mod(v, f.P)}
	}
	e := FpElement{limbs: make([]uint64, f.Words)}
	f.addLimbs(e.limbs, a.limbs, b.limbs)
	return e
}

// Sub returns a - b.
func (f *Fp) Sub(a, b FpElement) FpElement {
	if f.mode == Reference {
		v := new(big.Int).Sub(a.val, b.val)
		return FpElement{val: v.Mod(v, f.P)}
	}
	e := FpElement{limbs: make([]uint64, f.Words)}
	f.subLimbs(e.limbs, a.limbs, b.limbs)
	return e
}

// Neg returns -a.
func (f *Fp) Neg(a FpElement) FpElement {
	return f.Sub(f.Zero(), a)
}

// Mul returns a * b.
func (f *Fp) Mul(a, b FpElement) FpElement {
	if f.mode == Reference {
		v := new(big.Int).Mul(a.val, b.val)
		return FpElement{val: v.Mod(v, f.P)}
	}
	e := FpElement{limbs: make([]uint64, f.Words)}
	f.mulLimbs(e.limbs, a.limbs, b.limbs)
	return e
}

// Sqr returns a * a.
func (f *Fp) Sqr(a FpElement) FpElement {
	return f.Mul(a, a)
}

// Inv returns a^-1. The result for a = 0 is 0; callers guard the
// zero case where it matters.
func (f *Fp) Inv(a FpElement) FpElement {
	if f.mode == Reference {
		v := new(big.Int).ModInverse(a.val, f.P)
		if v == nil {
			v = new(big.Int)
		}
		return FpElement{val: v}
	}
	// x^(p-2) = x * ((x^2)^((p-3)/4))^2, using the tabulated window
	// chain for the (p-3)/4 power.
	t := f.Sqr(a)
	t = f.p34(t)
	t = f.Sqr(t)
	return f.Mul(t, a)
}

// p34 computes x^((p-3)/4) with the tabulated sliding-window chain.
func (f *Fp) p34(x FpElement) FpElement {
	// lookup[i] = x^(2i+1)
	var lookup [16]FpElement
	xx := f.Sqr(x)
	lookup[0] = x
	for i := 1; i < 16; i++ {
		lookup[i] = f.Mul(lookup[i-1], xx)
	}
	acc := lookup[f.chain.Initial/2]
	for i := range f.chain.Pow {
		for k := 0; k < f.chain.Pow[i]; k++ {
			acc = f.Sqr(acc)
		}
		if f.chain.Mul[i] != 0 {
			acc = f.Mul(acc, lookup[f.chain.Mul[i]/2])
		}
	}
	return acc
}

// IsZero reports whether a is the additive identity. Constant time on
// the optimized engine.
func (f *Fp) IsZero(a FpElement) bool {
	if f.mode == Reference {
		return a.val.Sign() == 0
	}
	var acc uint64
	for _, w := range a.limbs {
		acc |= w
	}
	return acc == 0
}

// Eq reports whether a and b represent the same residue. Constant time
// on the optimized engine; both representations are canonical so a
// limb-wise comparison suffices.
func (f *Fp) Eq(a, b FpElement) bool {
	if f.mode == Reference {
		return a.val.Cmp(b.val) == 0
	}
	var acc uint64
	for i := range a.limbs {
		acc |= a.limbs[i] ^ b.limbs[i]
	}
	return acc == 0
}

// ToBytes serializes a to its fixed-length canonical form, most
// significant byte first.
func (f *Fp) ToBytes(a FpElement) []byte {
	out := make([]byte, f.Bytes)
	if f.mode == Reference {
		a.val.FillBytes(out)
		return out
	}
	// leave Montgomery form: multiply by 1
	one := make([]uint64, f.Words)
	one[0] = 1
	raw := make([]uint64, f.Words)
	f.mulLimbs(raw, a.limbs, one)
	bigFromLimbs(raw).FillBytes(out)
	return out
}

// FromBytes parses a fixed-length big-endian encoding. Values outside
// [0, p) are rejected.
func (f *Fp) FromBytes(b []byte) (FpElement, error) {
	if len(b) != f.Bytes {
		return FpElement{}, internal.MalformedInput
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.P) >= 0 {
		return FpElement{}, internal.MalformedInput
	}
	if f.mode == Reference {
		return FpElement{val: v}, nil
	}
	e := FpElement{limbs: make([]uint64, f.Words)}
	f.mulLimbs(e.limbs, limbsFromBig(v, f.Words), f.pr2)
	return e, nil
}

// Copy returns an element with storage independent of a. Operations
// that mutate in place, such as CondSwap, must not run on shared
// storage.
func (f *Fp) Copy(a FpElement) FpElement {
	if f.mode == Reference {
		return FpElement{val: new(big.Int).Set(a.val)}
	}
	e := FpElement{limbs: make([]uint64, len(a.limbs))}
	copy(e.limbs, a.limbs)
	return e
}

// Wipe overwrites the element's storage.
func (e *FpElement) Wipe() {
	for i := range e.limbs {
		e.limbs[i] = 0
	}
	if e.val != nil {
		words := e.val.Bits()
		for i := range words {
			words[i] = 0
		}
		e.val.SetInt64(0)
	}
}

func limbsFromBig(v *big.Int, words int) []uint64 {
	buf := make([]byte, words*8)
	v.FillBytes(buf)
	l := make([]uint64, words)
	for i := 0; i < words; i++ {
		l[i] = binary.BigEndian.Uint64(buf[(words-1-i)*8:])
	}
	return l
}

func bigFromLimbs(l []uint64) *big.Int {
	buf := make([]byte, len(l)*8)
	for i, w := range l {
		binary.BigEndian.PutUint64(buf[(len(l)-1-i)*8:], w)
	}
	return new(big.Int).SetBytes(buf)
}
