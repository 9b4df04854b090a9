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

// Package params holds the immutable per-variant constant tables of the
// four standard parameter sets SIKEp434, SIKEp503, SIKEp610 and
// SIKEp751: the field prime, the public torsion bases, the tabulated
// isogeny strategies and the derived sizes and masks.
package params

import (
	"math/big"

	"github.com/fentec-project/sike/curve"
	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/internal"
)

// pointHex is a tabulated affine point; difference points leave the
// y-coordinate strings empty.
type pointHex struct {
	x, xi, y, yi string
}

// variant is the raw tabulated form of one parameter set.
type variant struct {
	name                      string
	eA, eB                    int
	messageBytes, cryptoBytes int
	chainInitial              int
	chainPow, chainMul        []int
	pa, qa, ra, pb, qb, rb    pointHex
	strategyA, strategyB      []int
}

var variants = map[string]*variant{
	"SIKEp434": sikeP434,
	"SIKEp503": sikeP503,
	"SIKEp610": sikeP610,
	"SIKEp751": sikeP751,
}

// SikeParam is the built, immutable parameter table of one variant.
type SikeParam struct {
	Name string
	// Fp2 is the extension-field context all arithmetic runs in.
	Fp2 *field.Fp2

	EA, EB     int
	OrdA, OrdB *big.Int

	// Secret scalars on each side have BitsA/BitsB significant bits;
	// the masks clamp the top byte of a freshly drawn scalar.
	BitsA, BitsB int
	MaskA, MaskB byte

	MessageBytes, CryptoBytes        int
	SecretKeyABytes, SecretKeyBBytes int
	PublicKeyBytes                   int
	CiphertextBytes                  int
	SecretKeyBytes                   int

	// Torsion bases. RA and RB are difference points and carry no
	// y-coordinate.
	PA, QA, RA curve.AffinePoint
	PB, QB, RB curve.AffinePoint

	TreeRowsA, TreeRowsB int
	StrategyA, StrategyB []int
}

// NewSikeParam builds the parameter table for the named variant with
// the requested arithmetic engine. The variant name is one of
// "SIKEp434", "SIKEp503", "SIKEp610", "SIKEp751".
func NewSikeParam(name string, mode field.Mode) (*SikeParam, error) {
	v, ok := variants[name]
	if !ok {
		return nil, internal.UnknownVariant
	}

	ordA := new(big.Int).Lsh(big.NewInt(1), uint(v.eA))
	ordB := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(v.eB)), nil)
	p := new(big.Int).Mul(ordA, ordB)
	p.Sub(p, big.NewInt(1))

	fp := field.NewFp(p, mode, field.InvChain{
		Initial: v.chainInitial,
		Pow:     v.chainPow,
		Mul:     v.chainMul,
	})
	f := field.NewFp2(fp)

	bitsB := ordB.BitLen() - 1
	skABytes := (v.eA + 7) / 8
	skBBytes := (bitsB + 7) / 8

	prm := &SikeParam{
		Name:            v.name,
		Fp2:             f,
		EA:              v.eA,
		EB:              v.eB,
		OrdA:            ordA,
		OrdB:            ordB,
		BitsA:           v.eA,
		BitsB:           bitsB,
		MaskA:           byte(1<<uint(v.eA-8*(skABytes-1))) - 1,
		MaskB:           byte(1<<uint(bitsB-8*(skBBytes-1))) - 1,
		MessageBytes:    v.messageBytes,
		CryptoBytes:     v.cryptoBytes,
		SecretKeyABytes: skABytes,
		SecretKeyBBytes: skBBytes,
		PublicKeyBytes:  6 * fp.Bytes,
		TreeRowsA:       v.eA / 2,
		TreeRowsB:       v.eB,
		StrategyA:       v.strategyA,
		StrategyB:       v.strategyB,
	}
	prm.CiphertextBytes = prm.PublicKeyBytes + prm.MessageBytes
	prm.SecretKeyBytes = prm.MessageBytes + prm.SecretKeyBBytes + prm.PublicKeyBytes

	var err error
	if prm.PA, err = parsePoint(f, v.pa); err != nil {
		return nil, err
	}
	if prm.QA, err = parsePoint(f, v.qa); err != nil {
		return nil, err
	}
	if prm.RA, err = parsePoint(f, v.ra); err != nil {
		return nil, err
	}
	if prm.PB, err = parsePoint(f, v.pb); err != nil {
		return nil, err
	}
	if prm.QB, err = parsePoint(f, v.qb); err != nil {
		return nil, err
	}
	if prm.RB, err = parsePoint(f, v.rb); err != nil {
		return nil, err
	}
	return prm, nil
}

func parsePoint(f *field.Fp2, ph pointHex) (curve.AffinePoint, error) {
	x, err := parseFp2(f, ph.x, ph.xi)
	if err != nil {
		return curve.AffinePoint{}, err
	}
	if ph.y == "" {
		return curve.NewDifferencePoint(x), nil
	}
	y, err := parseFp2(f, ph.y, ph.yi)
	if err != nil {
		return curve.AffinePoint{}, err
	}
	return curve.NewAffinePoint(x, y), nil
}

func parseFp2(f *field.Fp2, re, im string) (field.Fp2Element, error) {
	a, err := parseFp(f.Fp, re)
	if err != nil {
		return field.Fp2Element{}, err
	}
	b, err := parseFp(f.Fp, im)
	if err != nil {
		return field.Fp2Element{}, err
	}
	return field.Fp2Element{A: a, B: b}, nil
}

func parseFp(f *field.Fp, s string) (field.FpElement, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return field.FpElement{}, internal.MalformedInput
	}
	return f.FromBytes(v.FillBytes(make([]byte, f.Bytes)))
}
