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

// Package fixedsig implements the fixed-signature variant of the
// bijection: a total map between N and the well-formed terms over a
// finite, caller-supplied signature of variables, constants, and
// arity-tagged function symbols.
//
// Building the Signature itself — validating the caller's arrays,
// rejecting duplicate symbols, and similar constructor ergonomics — is
// out of scope for this package; its mapping logic (NatToTerm, TermToNat)
// is the contract, and it trusts the Signature it is given.
package fixedsig

import (
	"errors"

	"go.uber.org/zap"
)

// ErrSymbolNotFound is returned by TermToNat when a variable, constant, or
// (symbol, arity) pair is absent from the signature.
var ErrSymbolNotFound = errors.New("fixedsig: symbol not present in signature")

// ErrEmptySignature is returned by NatToTerm when the signature has no
// variables, constants, or function symbols of any arity at all, so
// nothing is decodable.
var ErrEmptySignature = errors.New("fixedsig: signature has no variables, constants, or functions to decode into")

// FunSymbol names a function symbol and its fixed arity.
type FunSymbol[B comparable] struct {
	Symbol B
	Arity  int
}

// Signature is a finite term-algebra signature: lv = len(Vars) variables,
// lc = len(Consts) constants, lf = len(Funs) function symbols. A is the
// type of variable labels, B is the type of constant and function-symbol
// labels; both must be comparable, since NatToTerm/TermToNat compare
// values with Go's built-in == (via the comparable constraint) to find a
// value's position in Vars/Consts/Funs, or a (Symbol, Arity) pair's
// position in Funs. Callers using a struct for B should ensure all of its
// fields are themselves comparable.
type Signature[A comparable, B comparable] struct {
	Vars   []A
	Consts []B
	Funs   []FunSymbol[B]

	// Logger, if set, receives an Error-level entry immediately before
	// NatToTerm or TermToNat returns a wrapped error. A nil Logger logs
	// nothing.
	Logger *zap.Logger
}

func (s Signature[A, B]) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s Signature[A, B]) lv() int { return len(s.Vars) }
func (s Signature[A, B]) lc() int { return len(s.Consts) }

// splitFuns partitions s.Funs into nullary and non-nullary symbols. A
// nullary function symbol's argument space is the one-element set {()},
// which has no bijection with N the way an arity >= 1 symbol's argument
// space does via cantor.ToCantorTuple; NatToTerm/TermToNat therefore index
// nullary symbols directly, the same way they index Vars and Consts, and
// reserve the putBDigit/getBDigit digit scheme for arity >= 1 symbols only.
func (s Signature[A, B]) splitFuns() (zero, pos []FunSymbol[B]) {
	for _, f := range s.Funs {
		if f.Arity == 0 {
			zero = append(zero, f)
		} else {
			pos = append(pos, f)
		}
	}
	return zero, pos
}

func indexOf[T comparable](xs []T, x T) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func indexOfFunSlice[B comparable](fs []FunSymbol[B], symbol B, arity int) int {
	for i, f := range fs {
		if f.Symbol == symbol && f.Arity == arity {
			return i
		}
	}
	return -1
}

// Term is the sealed sum type FVar | FConst | FFun over a fixed signature.
type Term[A, B comparable] interface {
	isFixedTerm()
}

// FVar is a variable drawn from the signature's Vars.
type FVar[A, B comparable] struct {
	X A
}

func (FVar[A, B]) isFixedTerm() {}

// FConst is a constant drawn from the signature's Consts.
type FConst[A, B comparable] struct {
	X B
}

func (FConst[A, B]) isFixedTerm() {}

// FFun is a function symbol drawn from the signature's Funs, applied to
// exactly Arity children.
type FFun[A, B comparable] struct {
	Symbol   B
	Children []Term[A, B]
}

func (FFun[A, B]) isFixedTerm() {}
