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

package term

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

func nodeCount(t Term) int {
	switch v := t.(type) {
	case Var:
		return 1
	case Fun:
		n := 1
		for _, c := range v.Children {
			n += nodeCount(c)
		}
		return n
	}
	return 0
}

func TestSkeletonLength(t *testing.T) {
	terms := []Term{
		Var{I: bi(0)},
		Fun{F: bi(3), Children: nil},
		Fun{F: bi(1), Children: []Term{Var{I: bi(2)}}},
		Fun{F: bi(7), Children: []Term{
			Var{I: bi(1)},
			Fun{F: bi(2), Children: nil},
			Fun{F: bi(3), Children: []Term{Var{I: bi(9)}, Var{I: bi(8)}}},
		}},
	}
	for _, tm := range terms {
		pars, syms := ToPair(tm)
		assert.Equal(t, 2*nodeCount(tm), len(pars))
		assert.Equal(t, nodeCount(tm), len(syms))
	}
}

func TestToPairFromPairRoundTrip(t *testing.T) {
	terms := []Term{
		Var{I: bi(0)},
		Var{I: bi(42)},
		Fun{F: bi(0), Children: nil},
		Fun{F: bi(5), Children: []Term{Var{I: bi(2)}}},
		Fun{F: bi(7), Children: []Term{
			Var{I: bi(1)},
			Fun{F: bi(2), Children: nil},
			Fun{F: bi(3), Children: []Term{Var{I: bi(9)}, Var{I: bi(8)}}},
		}},
	}
	for _, tm := range terms {
		pars, syms := ToPair(tm)
		back, err := FromPair(pars, syms)
		require.NoError(t, err)
		assert.Equal(t, tm, back)
	}
}

func TestFromPairMalformed(t *testing.T) {
	_, syms := ToPair(Fun{F: bi(5), Children: []Term{Var{I: bi(2)}}})

	// truncated skeleton
	_, err := FromPair([]byte{0}, syms)
	assert.ErrorIs(t, err, ErrMalformedPair)

	// extra trailing bits
	_, err = FromPair([]byte{0, 0, 1, 1, 0, 1}, syms)
	assert.ErrorIs(t, err, ErrMalformedPair)

	// mismatched sym count
	_, err = FromPair([]byte{0, 0, 1, 1}, syms[:0])
	assert.ErrorIs(t, err, ErrMalformedPair)

	// bad bit value
	_, err = FromPair([]byte{0, 2}, syms)
	assert.ErrorIs(t, err, ErrMalformedPair)
}

func TestVarAndNullaryFunShareLeafShape(t *testing.T) {
	v := Var{I: bi(5)}
	f := Fun{F: bi(5), Children: nil}

	parsV, symsV := ToPair(v)
	parsF, symsF := ToPair(f)
	assert.Equal(t, parsV, parsF)
	assert.NotEqual(t, symsV[0], symsF[0])

	backV, err := FromPair(parsV, symsV)
	require.NoError(t, err)
	assert.Equal(t, v, backV)

	backF, err := FromPair(parsF, symsF)
	require.NoError(t, err)
	assert.Equal(t, f, backF)
}

// buildChain constructs a right-leaning chain of depth n to exercise the
// iterative (non-recursive) split/join on deep terms.
func buildChain(n int) Term {
	t := Term(Var{I: bi(0)})
	for i := 1; i <= n; i++ {
		t = Fun{F: bi(int64(i)), Children: []Term{t}}
	}
	return t
}

func TestDeepChainDoesNotOverflow(t *testing.T) {
	deep := buildChain(200000)
	pars, syms := ToPair(deep)
	back, err := FromPair(pars, syms)
	require.NoError(t, err)
	assert.Equal(t, deep, back)
}
