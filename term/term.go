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

// Package term defines the infinite-signature term algebra's data model
// and the split/join that exposes it to the Catalan and Cantor codecs.
package term

import "math/big"

// Term is the sealed sum type Var | Fun. It is implemented by exactly the
// two types in this package; the private marker method keeps outside
// packages from adding new cases, which would break the exhaustive
// pattern-matching ToPair and FromPair depend on.
type Term interface {
	isTerm()
}

// Var is a variable labeled by a non-negative integer.
type Var struct {
	I *big.Int
}

func (Var) isTerm() {}

// Fun is a function symbol applied to an ordered (possibly empty) sequence
// of children. Fun with no children is a nullary function, distinct from
// Var even when the labels coincide.
type Fun struct {
	F        *big.Int
	Children []Term
}

func (Fun) isTerm() {}
