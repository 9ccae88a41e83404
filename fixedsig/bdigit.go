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

import "math/big"

// putBDigit encodes a bijective base-b digit d (0 <= d < b) and a
// remainder m into a single BigNat: 1 + d + b*m. Unlike standard base-b
// digits, this representation has no non-unique encoding of 0.
func putBDigit(b, d int, m *big.Int) *big.Int {
	result := new(big.Int).Mul(big.NewInt(int64(b)), m)
	result.Add(result, big.NewInt(int64(1+d)))
	return result
}

// getBDigit is the inverse of putBDigit: it extracts the digit d and
// remainder m from n.
func getBDigit(b int, n *big.Int) (d int, m *big.Int) {
	bBig := big.NewInt(int64(b))
	r := new(big.Int)
	q, _ := new(big.Int).QuoRem(n, bBig, r)
	if r.Sign() == 0 {
		return b - 1, new(big.Int).Sub(q, big.NewInt(1))
	}
	return int(r.Int64()) - 1, q
}
