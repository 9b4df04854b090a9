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

package params_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/sike/curve"
	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/params"
	"github.com/stretchr/testify/assert"
)

type variantSizes struct {
	name         string
	fpBytes      int
	publicKey    int
	secretKey    int
	ciphertext   int
	messageBytes int
}

var sizeTable = []variantSizes{
	{"SIKEp434", 55, 330, 374, 346, 16},
	{"SIKEp503", 63, 378, 434, 402, 24},
	{"SIKEp610", 77, 462, 524, 486, 24},
	{"SIKEp751", 94, 564, 644, 596, 32},
}

func TestParams_Sizes(t *testing.T) {
	for _, v := range sizeTable {
		t.Run(v.name, func(t *testing.T) {
			prm, err := params.NewSikeParam(v.name, field.Optimized)
			if err != nil {
				t.Fatalf("Error during parameter construction: %v", err)
			}
			assert.Equal(t, v.fpBytes, prm.Fp2.Fp.Bytes)
			assert.Equal(t, v.publicKey, prm.PublicKeyBytes)
			assert.Equal(t, v.secretKey, prm.SecretKeyBytes)
			assert.Equal(t, v.ciphertext, prm.CiphertextBytes)
			assert.Equal(t, v.messageBytes, prm.MessageBytes)
		})
	}
}

func TestParams_Invariants(t *testing.T) {
	for _, v := range sizeTable {
		t.Run(v.name, func(t *testing.T) {
			prm, err := params.NewSikeParam(v.name, field.Optimized)
			if err != nil {
				t.Fatalf("Error during parameter construction: %v", err)
			}
			p := prm.Fp2.Fp.P

			// p = 2^eA * 3^eB - 1 and p = 3 mod 4
			expected := new(big.Int).Mul(prm.OrdA, prm.OrdB)
			expected.Sub(expected, big.NewInt(1))
			assert.Zero(t, p.Cmp(expected), "prime should match the torsion orders")
			assert.Equal(t, int64(3), new(big.Int).Mod(p, big.NewInt(4)).Int64(),
				"prime should be 3 mod 4")

			assert.Equal(t, prm.EA, prm.BitsA)
			assert.Equal(t, prm.OrdB.BitLen()-1, prm.BitsB)
			assert.True(t, prm.OrdB.BitLen() <= prm.SecretKeyBBytes*8+1)

			// strategies hold one split per interior row
			assert.Equal(t, prm.TreeRowsA-1, len(prm.StrategyA))
			assert.Equal(t, prm.TreeRowsB-1, len(prm.StrategyB))
			for _, s := range prm.StrategyA {
				assert.True(t, s >= 1 && s < prm.TreeRowsA, "strategy split out of range")
			}
			for _, s := range prm.StrategyB {
				assert.True(t, s >= 1 && s < prm.TreeRowsB, "strategy split out of range")
			}
		})
	}
}

func TestParams_BasisOnBaseCurve(t *testing.T) {
	for _, v := range sizeTable {
		t.Run(v.name, func(t *testing.T) {
			prm, err := params.NewSikeParam(v.name, field.Optimized)
			if err != nil {
				t.Fatalf("Error during parameter construction: %v", err)
			}
			f := prm.Fp2
			six := f.Generate(6)
			a := curve.RecoverCurveCoefficient(f, prm.PA.X, prm.QA.X, prm.RA.X)
			assert.True(t, f.Eq(a, six), "A-side basis should lie on the base curve")
			a = curve.RecoverCurveCoefficient(f, prm.PB.X, prm.QB.X, prm.RB.X)
			assert.True(t, f.Eq(a, six), "B-side basis should lie on the base curve")
		})
	}
}

func TestParams_UnknownVariant(t *testing.T) {
	_, err := params.NewSikeParam("SIKEp1024", field.Optimized)
	assert.Error(t, err, "unknown variant should be rejected")
}
