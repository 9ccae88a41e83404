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

package goedel

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/krfkeith/bijective-goedel-numberings/cantor"
	"github.com/krfkeith/bijective-goedel-numberings/catalan"
	"github.com/krfkeith/bijective-goedel-numberings/term"
)

// Term, Var and Fun re-export the infinite-signature term algebra's data
// model from package term, so that callers of this package rarely need to
// import it directly.
type (
	Term = term.Term
	Var  = term.Var
	Fun  = term.Fun
)

// Encoder realizes the infinite-signature bijection between Term and
// *big.Int. The zero value is not usable; construct one with NewEncoder.
type Encoder struct {
	log *zap.Logger
}

// Option configures an Encoder constructed with NewEncoder.
type Option func(*Encoder)

// WithLogger attaches a *zap.Logger to an Encoder. Without this option, or
// with a nil logger, an Encoder logs nothing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		if l == nil {
			l = zap.NewNop()
		}
		e.log = l
	}
}

// NewEncoder constructs an Encoder ready for use.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ToCode encodes t as the unique *big.Int it maps to.
func (e *Encoder) ToCode(t Term) (*big.Int, error) {
	pars, syms := term.ToPair(t)
	r, err := catalan.Rank(pars)
	if err != nil {
		e.log.Error("ranking term skeleton", zap.Error(err))
		return nil, fmt.Errorf("goedel: encoding term: %w", err)
	}
	x := cantor.FromCantorTuple(syms)
	return cantor.FromCantorTuple([]*big.Int{r, x}), nil
}

// FromCode decodes n to the unique Term it maps to. FromCode is total:
// every non-negative n decodes to some term.
func (e *Encoder) FromCode(n *big.Int) (Term, error) {
	rx := cantor.ToCantorTuple(2, n)
	r, x := rx[0], rx[1]
	pars := catalan.Unrank(r)
	treecount := len(pars) / 2
	syms := cantor.ToCantorTuple(treecount, x)
	t, err := term.FromPair(pars, syms)
	if err != nil {
		e.log.Error("joining term skeleton and symbols", zap.Error(err))
		return nil, fmt.Errorf("goedel: decoding code %s: %w", n, err)
	}
	return t, nil
}

var defaultEncoder = NewEncoder()

// ToCode encodes t using a package-level default Encoder.
func ToCode(t Term) (*big.Int, error) { return defaultEncoder.ToCode(t) }

// FromCode decodes n using a package-level default Encoder.
func FromCode(n *big.Int) (Term, error) { return defaultEncoder.FromCode(n) }
