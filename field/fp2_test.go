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

package field_test

import (
	"testing"

	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/params"
	"github.com/stretchr/testify/assert"
)

func fp2Context(t *testing.T, mode field.Mode) *field.Fp2 {
	prm, err := params.NewSikeParam("SIKEp434", mode)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	return prm.Fp2
}

func randomFp2(t *testing.T, f *field.Fp2) field.Fp2Element {
	return field.Fp2Element{
		A: randomElement(t, f.Fp),
		B: randomElement(t, f.Fp),
	}
}

func testFp2Laws(t *testing.T, mode field.Mode) {
	f := fp2Context(t, mode)
	x := randomFp2(t, f)
	y := randomFp2(t, f)
	z := randomFp2(t, f)

	assert.True(t, f.Eq(f.Mul(x, f.One()), x), "x * 1 should equal x")
	assert.True(t, f.Eq(f.Add(x, f.Zero()), x), "x + 0 should equal x")
	assert.True(t, f.Eq(f.Mul(x, y), f.Mul(y, x)), "multiplication should commute")
	assert.True(t, f.Eq(f.Mul(f.Mul(x, y), z), f.Mul(x, f.Mul(y, z))),
		"multiplication should associate")
	assert.True(t, f.Eq(f.Mul(x, f.Add(y, z)), f.Add(f.Mul(x, y), f.Mul(x, z))),
		"multiplication should distribute over addition")
	assert.True(t, f.Eq(f.Sqr(x), f.Mul(x, x)), "squaring should match multiplication")
	if !f.IsZero(x) {
		assert.True(t, f.Eq(f.Mul(x, f.Inv(x)), f.One()), "x * x^-1 should equal 1")
	}

	// i^2 = -1
	i := field.Fp2Element{A: f.Fp.Zero(), B: f.Fp.One()}
	assert.True(t, f.Eq(f.Sqr(i), f.Neg(f.One())), "i squared should equal -1")
}

func TestFp2_Laws(t *testing.T) {
	for _, mode := range []field.Mode{field.Reference, field.Optimized} {
		t.Run(modeName(mode), func(t *testing.T) {
			testFp2Laws(t, mode)
		})
	}
}

func TestFp2_BytesRoundTrip(t *testing.T) {
	f := fp2Context(t, field.Optimized)
	x := randomFp2(t, f)
	b := f.ToBytes(x)
	assert.Equal(t, 2*f.Fp.Bytes, len(b))
	back, err := f.FromBytes(b)
	if err != nil {
		t.Fatalf("Error during deserialization: %v", err)
	}
	assert.True(t, f.Eq(x, back), "round trip should preserve the element")
}

func TestFp2_ReferenceMatchesOptimized(t *testing.T) {
	ref := fp2Context(t, field.Reference)
	opt := fp2Context(t, field.Optimized)
	x := randomFp2(t, opt)
	y := randomFp2(t, opt)
	xr, _ := ref.FromBytes(opt.ToBytes(x))
	yr, _ := ref.FromBytes(opt.ToBytes(y))

	assert.Equal(t, ref.ToBytes(ref.Add(xr, yr)), opt.ToBytes(opt.Add(x, y)))
	assert.Equal(t, ref.ToBytes(ref.Sub(xr, yr)), opt.ToBytes(opt.Sub(x, y)))
	assert.Equal(t, ref.ToBytes(ref.Mul(xr, yr)), opt.ToBytes(opt.Mul(x, y)))
	assert.Equal(t, ref.ToBytes(ref.Sqr(xr)), opt.ToBytes(opt.Sqr(x)))
	assert.Equal(t, ref.ToBytes(ref.Inv(xr)), opt.ToBytes(opt.Inv(x)))
}

func TestFp2_CondSwap(t *testing.T) {
	f := fp2Context(t, field.Optimized)
	x := randomFp2(t, f)
	y := randomFp2(t, f)
	xb, yb := f.ToBytes(x), f.ToBytes(y)

	f.CondSwap(&x, &y, 0)
	assert.Equal(t, xb, f.ToBytes(x), "choice 0 should leave operands in place")
	f.CondSwap(&x, &y, 1)
	assert.Equal(t, yb, f.ToBytes(x), "choice 1 should exchange operands")
	assert.Equal(t, xb, f.ToBytes(y), "choice 1 should exchange operands")
}
