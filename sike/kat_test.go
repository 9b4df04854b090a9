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

package sike_test

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/params"
	"github.com/fentec-project/sike/sike"
	sha256 "github.com/minio/sha256-simd"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

// Known-answer vectors. Key generation draws from a SHAKE256 stream
// seeded with 32 0x00 bytes, encapsulation from one seeded with 32
// 0x01 bytes; the digests pin the resulting keys and ciphertexts.
type katVector struct {
	name       string
	pkDigest   string
	skDigest   string
	ctDigest   string
	ss         string
	ssTampered string
}

var katVectors = []katVector{
	{
		name:       "SIKEp434",
		pkDigest:   "808d7b4c438a51939f3093afdc904bab9fea52239afe681cc849c8d6d7c21721",
		skDigest:   "c5f3b6de94e156aa2aecf16b7fc8e86e0c33614f7868cacd87207cfdbbdeb2f4",
		ctDigest:   "cefab31bff2ff8af6f871cfa3d2cdf542efa07a9520ae94e3b11159cd1ca38c1",
		ss:         "e2161adf795a4138ba3f8bd0aafcd623",
		ssTampered: "56c278d140329912b4f4f1bd765bbb4a",
	},
	{
		name:       "SIKEp503",
		pkDigest:   "f3e82bfe82043e55314aaac2f4f01009e6b7b355f5c9eadd74564f08f6289989",
		skDigest:   "6ffda86c1f0c87fd460d1770bc30a2c9265817948a097d4fff77759983d3904a",
		ctDigest:   "348f5e9bae03aa7e8ef793bbdc64b8e90c79d2afe5a6ff72ea8a97a2f63ca5a0",
		ss:         "490f31eb207ba7dc81005487304f2f493c3b3e14d74f17e8",
		ssTampered: "6e584abd762e4cd0267647d02daeea85af6a5ab3b857b3f4",
	},
	{
		name:       "SIKEp610",
		pkDigest:   "2e7a45fb0711c89f90b44e4615a32f50b310cb353ca0ef7411d71881983e0aab",
		skDigest:   "a6a4c2a3380699b26a94472bbe12a499991bdbf97a8302d0954e705642aafa82",
		ctDigest:   "9388c21fa36004464d30693dbc5d9f7e93157d5ef90455bef2c58dcce8536cf8",
		ss:         "713356de9800d8b6ee3c85b369db69d95213adabd5b27c31",
		ssTampered: "99091a61986d6c278847be351d8f9f0c3a1fc2d544ee91d7",
	},
	{
		name:       "SIKEp751",
		pkDigest:   "fb72a4d1591578be3f72654c71546fb225081f42284315763a844e983237346c",
		skDigest:   "9454ff192418d0bb4c2f0fb85887f9a8c276f35faac8fab875831b3c7536b984",
		ctDigest:   "8214829cf9a29b3e3b943676f484df1748ec45ce8a328d3d3102f835bd6a202c",
		ss:         "bdeffd74bbb104949d151f68e30386de806e1d3e667f5da36b743bf899a63058",
		ssTampered: "82909ef74eef985c263dd78d2544fa5d1baad4bb22b3d310fd663bb8de719d8b",
	},
}

// newShakeReader expands a seed into a deterministic byte stream, the
// way the known-answer harness drives the KEM.
func newShakeReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}

func testKat(t *testing.T, vec katVector) {
	prm, err := params.NewSikeParam(vec.name, field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}

	pk, sk, err := sike.GenerateKeyPair(prm, newShakeReader(bytes.Repeat([]byte{0x00}, 32)))
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	pkDigest := sha256.Sum256(pk)
	skDigest := sha256.Sum256(sk)
	assert.Equal(t, vec.pkDigest, hex.EncodeToString(pkDigest[:]), "public key should match")
	assert.Equal(t, vec.skDigest, hex.EncodeToString(skDigest[:]), "secret key should match")

	parsed, err := sike.NewPublicKeyFromBytes(prm, pk)
	if err != nil {
		t.Fatalf("Error during deserialization: %v", err)
	}
	fp := sike.Fingerprint(parsed)
	assert.Equal(t, pkDigest, fp, "fingerprint should be the digest of the wire form")

	ct, ss, err := sike.Encapsulate(prm, pk, newShakeReader(bytes.Repeat([]byte{0x01}, 32)))
	if err != nil {
		t.Fatalf("Error during encapsulation: %v", err)
	}
	ctDigest := sha256.Sum256(ct)
	assert.Equal(t, vec.ctDigest, hex.EncodeToString(ctDigest[:]), "ciphertext should match")
	assert.Equal(t, vec.ss, hex.EncodeToString(ss), "session key should match")

	ssD, err := sike.Decapsulate(prm, sk, ct)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.Equal(t, vec.ss, hex.EncodeToString(ssD), "decapsulated key should match")

	tampered := make([]byte, len(ct))
	copy(tampered, ct)
	tampered[0] ^= 1
	ssT, err := sike.Decapsulate(prm, sk, tampered)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.Equal(t, vec.ssTampered, hex.EncodeToString(ssT), "rejection key should match")
}

func TestSike_KnownAnswer(t *testing.T) {
	for _, vec := range katVectors {
		t.Run(vec.name, func(t *testing.T) {
			testKat(t, vec)
		})
	}
}
