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

// Package cantor implements the generalized Cantor tupling bijection
// between N^k and N, with an efficient inverse via the combinatorial
// number system (combinadics).
package cantor

import (
	"math/big"

	"github.com/krfkeith/bijective-goedel-numberings/combinatorics"
)

// List2Set maps an arbitrary sequence of BigNats to a strictly increasing
// one (the canonical representation of a finite set of the same size), via
// a running prefix sum offset by position.
func List2Set(xs []*big.Int) []*big.Int {
	ys := make([]*big.Int, len(xs))
	sum := big.NewInt(0)
	for i, x := range xs {
		sum = new(big.Int).Add(sum, x)
		ys[i] = new(big.Int).Add(sum, big.NewInt(int64(i)))
	}
	return ys
}

// Set2List is the inverse of List2Set: given a strictly increasing
// sequence, it recovers the original arbitrary sequence.
func Set2List(ys []*big.Int) []*big.Int {
	xs := make([]*big.Int, len(ys))
	for i, y := range ys {
		if i == 0 {
			xs[0] = new(big.Int).Set(y)
			continue
		}
		xs[i] = new(big.Int).Sub(y, ys[i-1])
		xs[i].Sub(xs[i], big.NewInt(1))
		// Sub's in-place reuse of xs[i]'s already-allocated limb buffer can
		// leave a zero result with a non-nil (but empty) internal slice,
		// which differs from a literal big.NewInt(0) under reflect.DeepEqual.
		if xs[i].Sign() == 0 {
			xs[i] = new(big.Int)
		}
	}
	return xs
}

// FromCantorTuple maps a sequence of BigNats to a single BigNat, the
// generalized Cantor tupling code. The empty sequence maps to 0.
func FromCantorTuple(xs []*big.Int) *big.Int {
	ys := List2Set(xs)
	result := big.NewInt(0)
	for i, y := range ys {
		result.Add(result, combinatorics.Binomial(y, i+1))
	}
	return result
}

// firstBinomialLargerThan returns the smallest m such that
// Binomial(m, k) > n, searching in [k-1, n+k]. That range is valid because
// Binomial(n+k, k) > n for every k >= 1, n >= 0.
func firstBinomialLargerThan(k int, n *big.Int) *big.Int {
	lo := big.NewInt(int64(k - 1))
	hi := new(big.Int).Add(n, big.NewInt(int64(k)))
	one := big.NewInt(1)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1) // floor((lo+hi)/2); both operands non-negative
		if combinatorics.Binomial(mid, k).Cmp(n) > 0 {
			hi = mid
		} else {
			lo = new(big.Int).Add(mid, one)
		}
	}
	return lo
}

// ToCombinadics decomposes n into its length-k combinadic representation: a
// strictly decreasing sequence [m_k, m_{k-1}, ..., m_1] such that
// n = sum(Binomial(m_j, j)).
func ToCombinadics(k int, n *big.Int) []*big.Int {
	result := make([]*big.Int, 0, k)
	remaining := new(big.Int).Set(n)
	one := big.NewInt(1)
	for j := k; j >= 1; j-- {
		raw := firstBinomialLargerThan(j, remaining)
		mj := new(big.Int).Sub(raw, one)
		result = append(result, mj)
		remaining.Sub(remaining, combinatorics.Binomial(mj, j))
	}
	return result
}

// ToCantorTuple is the inverse of FromCantorTuple: given an arity k and a
// code n, it returns the length-k sequence that encodes to n. For k == 0 it
// returns the empty sequence for every n; only n == 0 round-trips there.
func ToCantorTuple(k int, n *big.Int) []*big.Int {
	if k == 0 {
		return []*big.Int{}
	}
	digits := ToCombinadics(k, n) // [m_k, ..., m_1], strictly decreasing
	ys := make([]*big.Int, k)
	for idx, mj := range digits {
		ys[k-1-idx] = mj
	}
	return Set2List(ys)
}
