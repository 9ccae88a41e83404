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
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/krfkeith/bijective-goedel-numberings/cantor"
)

// NatToTerm decodes n to the unique Term it maps to under s. It returns
// ErrEmptySignature if s has no variables, constants, or functions at all.
// Vars, Consts, and s's nullary function symbols are all indexed directly,
// so every n < lv+lc+lz (lz = count of arity-0 Funs) decodes regardless of
// how many arity >= 1 function symbols s has. An n >= lv+lc+lz requires at
// least one arity >= 1 function symbol to decode into; if there is none,
// NatToTerm returns ErrSymbolNotFound rather than being total. It recurses
// with an explicit, heap-allocated work stack rather than native Go
// recursion, so a term whose size is proportional to an enormous n cannot
// overflow a goroutine's call stack.
func (s Signature[A, B]) NatToTerm(n *big.Int) (Term[A, B], error) {
	lv, lc := s.lv(), s.lc()
	zero, pos := s.splitFuns()
	lz, lf1 := len(zero), len(pos)
	if lv+lc+lz == 0 && lf1 == 0 {
		s.logger().Error("decoding against empty signature", zap.String("n", n.String()))
		return nil, fmt.Errorf("fixedsig: decoding %s: %w", n, ErrEmptySignature)
	}

	lvBig := big.NewInt(int64(lv))
	lvcBig := big.NewInt(int64(lv + lc))
	lvczBig := big.NewInt(int64(lv + lc + lz))
	one := big.NewInt(1)

	type task struct {
		n   *big.Int
		out *Term[A, B]
	}

	var result Term[A, B]
	stack := []task{{n: n, out: &result}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := cur.n

		switch {
		case v.Cmp(lvBig) < 0:
			*cur.out = FVar[A, B]{X: s.Vars[int(v.Int64())]}
		case v.Cmp(lvcBig) < 0:
			idx := new(big.Int).Sub(v, lvBig)
			*cur.out = FConst[A, B]{X: s.Consts[int(idx.Int64())]}
		case v.Cmp(lvczBig) < 0:
			idx := new(big.Int).Sub(v, lvcBig)
			fs := zero[int(idx.Int64())]
			*cur.out = FFun[A, B]{Symbol: fs.Symbol, Children: nil}
		default:
			if lf1 == 0 {
				s.logger().Error("n has no arity>=1 function symbols to decode into", zap.String("n", v.String()))
				return nil, fmt.Errorf("fixedsig: decoding %s: %w", n, ErrSymbolNotFound)
			}
			n1 := new(big.Int).Sub(v, lvczBig)
			n1.Add(n1, one)
			d, m := getBDigit(lf1, n1)
			if d < 0 || d >= lf1 {
				s.logger().Error("decoded out-of-range function digit", zap.Int("digit", d))
				return nil, fmt.Errorf("fixedsig: decoding %s: %w", n, ErrSymbolNotFound)
			}
			fs := pos[d]
			args := cantor.ToCantorTuple(fs.Arity, m)
			children := make([]Term[A, B], fs.Arity)
			*cur.out = FFun[A, B]{Symbol: fs.Symbol, Children: children}
			for i := 0; i < fs.Arity; i++ {
				stack = append(stack, task{n: args[i], out: &children[i]})
			}
		}
	}
	return result, nil
}

// TermToNat encodes t to the unique *big.Int it maps to under s. It
// returns ErrSymbolNotFound if t references a variable, constant, or
// (symbol, arity) pair absent from s. Like NatToTerm, it walks t with an
// explicit work stack rather than native recursion.
func (s Signature[A, B]) TermToNat(t Term[A, B]) (*big.Int, error) {
	lv, lc := s.lv(), s.lc()
	zero, pos := s.splitFuns()
	lz, lf1 := len(zero), len(pos)

	type workItem struct {
		isClose bool
		t       Term[A, B]
		sym     B
		arity   int
	}

	var stack []workItem
	var values []*big.Int
	stack = append(stack, workItem{t: t})

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.isClose {
			args := make([]*big.Int, item.arity)
			for i := item.arity - 1; i >= 0; i-- {
				args[i] = values[len(values)-1]
				values = values[:len(values)-1]
			}
			d := indexOfFunSlice(pos, item.sym, item.arity)
			if d < 0 {
				s.logger().Error("function symbol not in signature", zap.Any("symbol", item.sym), zap.Int("arity", item.arity))
				return nil, fmt.Errorf("fixedsig: encoding: function %v/%d: %w", item.sym, item.arity, ErrSymbolNotFound)
			}
			m := cantor.FromCantorTuple(args)
			n := putBDigit(lf1, d, m)
			n.Add(n, big.NewInt(int64(lv+lc+lz-1)))
			values = append(values, n)
			continue
		}

		switch v := item.t.(type) {
		case FVar[A, B]:
			idx := indexOf(s.Vars, v.X)
			if idx < 0 {
				s.logger().Error("variable not in signature", zap.Any("variable", v.X))
				return nil, fmt.Errorf("fixedsig: encoding: variable %v: %w", v.X, ErrSymbolNotFound)
			}
			values = append(values, big.NewInt(int64(idx)))
		case FConst[A, B]:
			idx := indexOf(s.Consts, v.X)
			if idx < 0 {
				s.logger().Error("constant not in signature", zap.Any("constant", v.X))
				return nil, fmt.Errorf("fixedsig: encoding: constant %v: %w", v.X, ErrSymbolNotFound)
			}
			values = append(values, big.NewInt(int64(lv+idx)))
		case FFun[A, B]:
			if len(v.Children) == 0 {
				idx := indexOfFunSlice(zero, v.Symbol, 0)
				if idx < 0 {
					s.logger().Error("nullary function symbol not in signature", zap.Any("symbol", v.Symbol))
					return nil, fmt.Errorf("fixedsig: encoding: function %v/0: %w", v.Symbol, ErrSymbolNotFound)
				}
				values = append(values, big.NewInt(int64(lv+lc+idx)))
				continue
			}
			stack = append(stack, workItem{isClose: true, sym: v.Symbol, arity: len(v.Children)})
			for i := len(v.Children) - 1; i >= 0; i-- {
				stack = append(stack, workItem{t: v.Children[i]})
			}
		}
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("fixedsig: encoding: %w", ErrSymbolNotFound)
	}
	return values[0], nil
}
