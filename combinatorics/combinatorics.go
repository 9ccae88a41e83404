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

// Package combinatorics provides the two counting functions the rest of
// this module is built on: binomial coefficients and Catalan numbers,
// both over arbitrary-precision results.
package combinatorics

import (
	"sync"

	"math/big"
)

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set. n is arbitrary precision (it is, in practice, a Cantor-tuple code
// component and can be astronomically large); k is a machine int, since it
// is always a small structural index (a tuple arity or position) bounded by
// the size of the term being encoded. Binomial returns 0 for k < 0 or k > n.
func Binomial(n *big.Int, k int) *big.Int {
	if k < 0 {
		return big.NewInt(0)
	}
	kBig := big.NewInt(int64(k))
	if n.Cmp(kBig) < 0 {
		return big.NewInt(0)
	}

	// Symmetry: C(n,k) = C(n, n-k). This only ever fires when n < 2k, which
	// bounds n by 2k, so the swapped count below always fits an int even
	// though n itself is a *big.Int.
	iterations := k
	twoK := big.NewInt(int64(2 * k))
	if n.Cmp(twoK) < 0 {
		nInt := int(n.Int64())
		iterations = nInt - k
	}

	b := big.NewInt(1)
	one := big.NewInt(1)
	for i := 0; i < iterations; i++ {
		num := new(big.Int).Sub(n, big.NewInt(int64(i)))
		num.Mul(num, b)
		denom := new(big.Int).Add(big.NewInt(int64(i)), one)
		b = new(big.Int).Div(num, denom)
	}
	return b
}

var (
	catalanMu    sync.Mutex
	catalanCache = []*big.Int{big.NewInt(1)} // Catalan(0) = 1
)

// Catalan returns the nth Catalan number, the count of balanced-parenthesis
// strings of length 2n (equivalently, the number of distinct single-tree
// Pars skeletons with n+1 opening parentheses, i.e. of terms with n+1
// nodes). Results are memoized behind a mutex; the
// cache only ever grows and every entry is computed exactly once, so
// concurrent callers observe the same pure function a single-threaded
// caller would.
func Catalan(n int) *big.Int {
	catalanMu.Lock()
	defer catalanMu.Unlock()
	for len(catalanCache) <= n {
		j := int64(len(catalanCache))
		prev := catalanCache[len(catalanCache)-1]

		num := new(big.Int).Mul(big.NewInt(2), big.NewInt(2*j-1))
		num.Mul(num, prev)
		denom := big.NewInt(j + 1)
		catalanCache = append(catalanCache, new(big.Int).Div(num, denom))
	}
	return catalanCache[n]
}
