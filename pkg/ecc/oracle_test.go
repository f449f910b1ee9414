// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ecc

import (
	"crypto/elliptic"
	"math/big"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/stretchr/testify/require"
)

const ORACLE_ITERATIONS = 25

// Generate a random non-zero scalar below n.
func randScalar(rng *rand.Rand, n *big.Int) *big.Int {
	for {
		k := new(big.Int).Rand(rng, n)
		if k.Sign() != 0 {
			return k
		}
	}
}

func scalarBaseMul(t *testing.T, curve *NamedCurve, k *big.Int) (*big.Int, *big.Int) {
	t.Helper()
	//
	g, err := curve.Generator()
	require.NoError(t, err)
	//
	kg, err := g.ScalarMul(k)
	require.NoError(t, err)
	//
	x, ok := kg.X()
	require.True(t, ok, "%s·G is infinity", k)
	y, _ := kg.Y()
	//
	return x.Num(), y.Num()
}

func requireCoordinate(t *testing.T, expected *big.Int, actual *big.Int, k *big.Int) {
	t.Helper()
	require.Zero(t, expected.Cmp(actual), "k=%s: expected %s, got %s", k, expected, actual)
}

func Test_Oracle_DeadBeef(t *testing.T) {
	expected, _ := new(big.Int).SetString("76d2fdf1302d1fa9556f4df94ec84cefba6d482e54f47c6c2a238c1baa560f0e", 16)
	k := big.NewInt(0xdeadbeef)
	x, _ := scalarBaseMul(t, Secp256k1(), k)
	//
	requireCoordinate(t, expected, x, k)
}

func Test_Oracle_Btcec(t *testing.T) {
	var (
		rng   = rand.New(rand.NewSource(1))
		curve = Secp256k1()
	)
	//
	for i := 0; i < ORACLE_ITERATIONS; i++ {
		k := randScalar(rng, curve.N)
		x, y := scalarBaseMul(t, curve, k)
		_, pub := btcec.PrivKeyFromBytes(k.Bytes())
		//
		requireCoordinate(t, pub.X(), x, k)
		requireCoordinate(t, pub.Y(), y, k)
	}
}

func Test_Oracle_GnarkSecp256k1(t *testing.T) {
	var (
		rng   = rand.New(rand.NewSource(2))
		curve = Secp256k1()
		_, g  = secp256k1.Generators()
	)
	//
	for i := 0; i < ORACLE_ITERATIONS; i++ {
		var (
			kg     secp256k1.G1Affine
			ex, ey big.Int
		)
		//
		k := randScalar(rng, curve.N)
		x, y := scalarBaseMul(t, curve, k)
		kg.ScalarMultiplication(&g, k)
		kg.X.BigInt(&ex)
		kg.Y.BigInt(&ey)
		//
		requireCoordinate(t, &ex, x, k)
		requireCoordinate(t, &ey, y, k)
	}
}

func Test_Oracle_P256(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(3))
		curve  = P256()
		oracle = elliptic.P256()
	)
	//
	for i := 0; i < ORACLE_ITERATIONS; i++ {
		k := randScalar(rng, curve.N)
		x, y := scalarBaseMul(t, curve, k)
		ex, ey := oracle.ScalarBaseMult(k.Bytes())
		//
		requireCoordinate(t, ex, x, k)
		requireCoordinate(t, ey, y, k)
	}
}
