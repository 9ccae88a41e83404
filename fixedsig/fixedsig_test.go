// Copyright 2024 The Bijective Goedel Numberings Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixedsig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sig is a small signature: two variables, one constant, and two function
// symbols ("pair" of arity 2 and "neg" of arity 1), all string-labeled.
func sig() Signature[string, string] {
	return Signature[string, string]{
		Vars:   []string{"x", "y"},
		Consts: []string{"zero"},
		Funs: []FunSymbol[string]{
			{Symbol: "neg", Arity: 1},
			{Symbol: "pair", Arity: 2},
		},
	}
}

func TestNatToTermBoundaryValues(t *testing.T) {
	s := sig()

	v, err := s.NatToTerm(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, FVar[string, string]{X: "x"}, v)

	v, err = s.NatToTerm(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, FVar[string, string]{X: "y"}, v)

	v, err = s.NatToTerm(big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, FConst[string, string]{X: "zero"}, v)
}

func TestFixedSigRoundTripManyCodes(t *testing.T) {
	s := sig()
	for n := int64(0); n < 2000; n++ {
		term, err := s.NatToTerm(big.NewInt(n))
		require.NoError(t, err, "n=%d", n)
		back, err := s.TermToNat(term)
		require.NoError(t, err, "n=%d term=%#v", n, term)
		assert.Zero(t, back.Cmp(big.NewInt(n)), "n=%d term=%#v back=%v", n, term, back)
	}
}

func TestFixedSigRoundTripFromTerm(t *testing.T) {
	s := sig()
	terms := []Term[string, string]{
		FVar[string, string]{X: "x"},
		FConst[string, string]{X: "zero"},
		FFun[string, string]{Symbol: "neg", Children: []Term[string, string]{
			FVar[string, string]{X: "x"},
		}},
		FFun[string, string]{Symbol: "pair", Children: []Term[string, string]{
			FVar[string, string]{X: "x"},
			FConst[string, string]{X: "zero"},
		}},
		FFun[string, string]{Symbol: "pair", Children: []Term[string, string]{
			FFun[string, string]{Symbol: "neg", Children: []Term[string, string]{FVar[string, string]{X: "y"}}},
			FFun[string, string]{Symbol: "neg", Children: []Term[string, string]{FConst[string, string]{X: "zero"}}},
		}},
	}
	for _, term := range terms {
		n, err := s.TermToNat(term)
		require.NoError(t, err)
		back, err := s.NatToTerm(n)
		require.NoError(t, err)
		assert.Equal(t, term, back)
	}
}

func TestTermToNatUnknownSymbol(t *testing.T) {
	s := sig()

	_, err := s.TermToNat(FVar[string, string]{X: "z"})
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	_, err = s.TermToNat(FConst[string, string]{X: "one"})
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	_, err = s.TermToNat(FFun[string, string]{Symbol: "neg", Children: []Term[string, string]{
		FVar[string, string]{X: "x"},
		FVar[string, string]{X: "y"},
	}}) // wrong arity for "neg"
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestEmptySignature(t *testing.T) {
	s := Signature[string, string]{}
	_, err := s.NatToTerm(big.NewInt(0))
	assert.ErrorIs(t, err, ErrEmptySignature)
}

func TestNatToTermNoFunctionsOutOfRange(t *testing.T) {
	// lv+lc=1, lf=0: n=0 decodes fine, but n>=lv+lc has nothing to decode
	// into and must return an error, not panic.
	s := Signature[string, string]{Vars: []string{"x"}}

	v, err := s.NatToTerm(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, FVar[string, string]{X: "x"}, v)

	_, err = s.NatToTerm(big.NewInt(1))
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	_, err = s.NatToTerm(big.NewInt(5))
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestFunctionsOnlySignatureDecodable(t *testing.T) {
	// lv+lc=0 but lf>=1: every n decodes to some FFun tree.
	s := Signature[string, string]{
		Funs: []FunSymbol[string]{
			{Symbol: "leaf", Arity: 0},
			{Symbol: "node", Arity: 2},
		},
	}
	for n := int64(0); n < 100; n++ {
		term, err := s.NatToTerm(big.NewInt(n))
		require.NoError(t, err, "n=%d", n)
		back, err := s.TermToNat(term)
		require.NoError(t, err)
		assert.Zero(t, back.Cmp(big.NewInt(n)))
	}
}

func TestBDigitRoundTrip(t *testing.T) {
	for b := 1; b <= 5; b++ {
		for d := 0; d < b; d++ {
			for m := int64(0); m < 20; m++ {
				n := putBDigit(b, d, big.NewInt(m))
				gotD, gotM := getBDigit(b, n)
				assert.Equal(t, d, gotD, "b=%d d=%d m=%d", b, d, m)
				assert.Zero(t, gotM.Cmp(big.NewInt(m)), "b=%d d=%d m=%d", b, d, m)
			}
		}
	}
}

func TestDeepFixedSigTermDoesNotOverflow(t *testing.T) {
	s := Signature[string, string]{
		Vars: []string{"x"},
		Funs: []FunSymbol[string]{{Symbol: "succ", Arity: 1}},
	}
	term := Term[string, string](FVar[string, string]{X: "x"})
	for i := 0; i < 200000; i++ {
		term = FFun[string, string]{Symbol: "succ", Children: []Term[string, string]{term}}
	}
	n, err := s.TermToNat(term)
	require.NoError(t, err)
	back, err := s.NatToTerm(n)
	require.NoError(t, err)
	assert.Equal(t, term, back)
}
