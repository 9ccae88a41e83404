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

// Package catalan ranks and unranks balanced-parenthesis strings ("Catalan
// skeletons") against N, following Kreher & Stinson's combinatorial
// generation algorithm.
package catalan

import (
	"errors"
	"math/big"

	"github.com/krfkeith/bijective-goedel-numberings/combinatorics"
)

// ErrMalformedParens is returned by Rank when its input is not a balanced
// parenthesis string starting with an opening paren.
var ErrMalformedParens = errors.New("catalan: not a balanced parenthesis string")

// Pars is a balanced-parenthesis string: 0 means '(', 1 means ')'. A valid
// Pars has even length of at least 2, opens with 0 and closes with 1, and
// every prefix has at least as many 0s as 1s; the opening 0 is matched only
// by the closing 1, so the string is the skeleton of a single tree.
type Pars []byte

func validate(pars Pars) error {
	if len(pars) < 2 || len(pars)%2 != 0 {
		return ErrMalformedParens
	}
	if pars[0] != 0 || pars[len(pars)-1] != 1 {
		return ErrMalformedParens
	}
	excess := 0
	for idx, bit := range pars {
		switch bit {
		case 0:
			excess++
		case 1:
			excess--
		default:
			return ErrMalformedParens
		}
		if excess < 0 || (excess == 0 && idx < len(pars)-1) {
			return ErrMalformedParens
		}
	}
	if excess != 0 {
		return ErrMalformedParens
	}
	return nil
}

// m counts the balanced suffixes of length 2n-x that start in "excess-y"
// state; see spec.md §4.C.
func m(n, x, y int) *big.Int {
	nArg := big.NewInt(int64(2*n - x))
	k := n - (x+y)/2
	c1 := combinatorics.Binomial(nArg, k)
	c2 := combinatorics.Binomial(nArg, k-1)
	return new(big.Int).Sub(c1, c2)
}

// Rank returns the position of pars, in canonical order, among all valid
// Pars (single-tree skeletons). It returns ErrMalformedParens if pars is not
// a valid Pars, including a balanced string such as 0101 whose opening 0 is
// closed before the end.
func Rank(pars Pars) (*big.Int, error) {
	if err := validate(pars); err != nil {
		return nil, err
	}

	i := len(pars)/2 - 1 // number of opening parens in the interior, i.e. n_local
	y := 0
	lo := big.NewInt(0)
	for x := 1; x <= 2*i; x++ {
		if pars[x] == 0 {
			y++
		} else {
			lo.Add(lo, m(i, x, y+1))
			y--
		}
	}

	total := big.NewInt(0)
	for j := 0; j < i; j++ {
		total.Add(total, combinatorics.Catalan(j))
	}
	return total.Add(total, lo), nil
}

// Unrank is the inverse of Rank: it returns the nth valid Pars in canonical
// order. Unrank(0) is [0, 1], the single one-node tree.
func Unrank(n *big.Int) Pars {
	sum := big.NewInt(0)
	i := 0
	for {
		next := new(big.Int).Add(sum, combinatorics.Catalan(i))
		if next.Cmp(n) > 0 {
			break
		}
		sum = next
		i++
	}
	local := new(big.Int).Sub(n, sum)

	// interior is 1-indexed: interior[0] is an unused placeholder kept only
	// so the loop indices x=1..2i line up with Rank's own indexing.
	interior := make([]byte, 2*i+1)
	y := 0
	lo := big.NewInt(0)
	for x := 1; x <= 2*i; x++ {
		k := m(i, x, y+1)
		threshold := new(big.Int).Add(lo, k)
		if local.Cmp(threshold) < 0 {
			interior[x] = 0
			y++
		} else {
			interior[x] = 1
			lo.Add(lo, k)
			y--
		}
	}

	result := make(Pars, 0, 2*i+2)
	result = append(result, 0)
	result = append(result, interior[1:]...)
	result = append(result, 1)
	return result
}
