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

// Package goedel establishes a total bijection between the natural
// numbers and the set of syntactically valid terms of a term algebra.
//
// Two variants are provided: this package's Encoder covers the
// infinite-signature variant, where variable and function-symbol labels
// are themselves drawn from an unbounded supply of natural numbers; the
// fixedsig subpackage covers the fixed-signature variant, where
// variables, constants, and function symbols are drawn from finite,
// caller-supplied sets.
//
// The bijection is built from three composable pieces, each usable on
// its own: package catalan ranks and unranks balanced-parenthesis
// strings, package cantor implements the generalized Cantor N-tupling
// bijection, and package term holds the term algebra's data model and
// the split/join between a term and a (skeleton, symbol-stream) pair.
package goedel
