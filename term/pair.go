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
	"errors"
	"math/big"

	"github.com/krfkeith/bijective-goedel-numberings/catalan"
)

// ErrMalformedPair is returned by FromPair when the skeleton and sym
// streams cannot be parsed as a single term, or are not fully consumed by
// the one they do parse.
var ErrMalformedPair = errors.New("term: skeleton/symbol pair is malformed")

var (
	two = big.NewInt(2)
	one = big.NewInt(1)
)

// canonicalZero normalizes a mathematically-zero result of Sub/Rsh (whose
// internal limb slice can be a non-nil empty slice rather than nil) to the
// same representation as a literal big.NewInt(0), so a decoded term
// compares equal to a hand-built one under reflect.DeepEqual. Non-zero
// values pass through unchanged.
func canonicalZero(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int)
	}
	return x
}

// ToPair splits t into its skeleton (a balanced-parenthesis Pars) and its
// sym stream, one BigNat per node, co-indexed with the skeleton's opening
// parens. A leaf (Var or nullary Fun) contributes the skeleton shape
// [0, 1]; the two cases are disambiguated only by the parity of the sym
// value emitted alongside it (even: Var, odd: nullary Fun) — this encoding
// is implemented with an explicit, heap-allocated work stack rather than
// native recursion so that arbitrarily deep terms cannot overflow a
// goroutine's call stack.
func ToPair(t Term) (catalan.Pars, []*big.Int) {
	var pars catalan.Pars
	var syms []*big.Int

	type frame struct {
		children []Term
		idx      int
	}
	var stack []frame

	node := t
	for {
		switch v := node.(type) {
		case Var:
			pars = append(pars, 0, 1)
			syms = append(syms, new(big.Int).Mul(v.I, two))
			node = nil
		case Fun:
			if len(v.Children) == 0 {
				pars = append(pars, 0, 1)
				sym := new(big.Int).Mul(v.F, two)
				sym.Add(sym, one)
				syms = append(syms, sym)
				node = nil
			} else {
				pars = append(pars, 0)
				syms = append(syms, new(big.Int).Set(v.F))
				stack = append(stack, frame{children: v.Children, idx: 0})
				node = v.Children[0]
				continue
			}
		}

		// node is nil: a leaf was just closed. Ascend the stack, advancing
		// to the next sibling or closing the parent frame.
		for {
			if len(stack) == 0 {
				return pars, syms
			}
			top := &stack[len(stack)-1]
			top.idx++
			if top.idx < len(top.children) {
				node = top.children[top.idx]
				break
			}
			pars = append(pars, 1)
			stack = stack[:len(stack)-1]
		}
	}
}

// FromPair reconstructs a Term from a (skeleton, syms) pair produced by
// ToPair. It returns ErrMalformedPair if the skeleton's grammar is
// violated or the two streams are not exhausted together. Like ToPair,
// the parse runs over an explicit work stack, never native recursion.
func FromPair(pars catalan.Pars, syms []*big.Int) (Term, error) {
	type frame struct {
		f        *big.Int
		children []Term
	}
	var stack []frame
	var result Term
	haveResult := false

	posPars, posSyms := 0, 0
	attach := func(node Term) {
		if len(stack) == 0 {
			result = node
			haveResult = true
			return
		}
		top := &stack[len(stack)-1]
		top.children = append(top.children, node)
	}

	for posPars < len(pars) {
		if haveResult {
			// A full term was already produced but input remains: malformed.
			return nil, ErrMalformedPair
		}
		switch pars[posPars] {
		case 0:
			if posPars+1 < len(pars) && pars[posPars+1] == 1 {
				// leaf: Var or nullary Fun, disambiguated by sym parity
				if posSyms >= len(syms) {
					return nil, ErrMalformedPair
				}
				x := syms[posSyms]
				posSyms++
				posPars += 2
				if x.Bit(0) == 0 {
					attach(Var{I: canonicalZero(new(big.Int).Rsh(x, 1))})
				} else {
					f := new(big.Int).Sub(x, one)
					f.Rsh(f, 1)
					attach(Fun{F: canonicalZero(f), Children: nil})
				}
			} else {
				// open a non-leaf Fun
				if posSyms >= len(syms) {
					return nil, ErrMalformedPair
				}
				f := syms[posSyms]
				posSyms++
				posPars++
				stack = append(stack, frame{f: f})
			}
		case 1:
			if len(stack) == 0 {
				return nil, ErrMalformedPair
			}
			posPars++
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			attach(Fun{F: top.f, Children: top.children})
		default:
			return nil, ErrMalformedPair
		}
	}

	if !haveResult || len(stack) != 0 || posSyms != len(syms) {
		return nil, ErrMalformedPair
	}
	return result, nil
}
