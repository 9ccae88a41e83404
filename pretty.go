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

import "strings"

// Pretty renders t as a compact textual form: a variable renders as
// "v<i>", and a function symbol renders as "F<f>(c1,...,cn)", except that
// a nullary function renders as bare "F<f>" with no trailing parentheses.
func Pretty(t Term) string {
	var b strings.Builder
	prettyInto(&b, t)
	return b.String()
}

func prettyInto(b *strings.Builder, t Term) {
	switch v := t.(type) {
	case Var:
		b.WriteString("v")
		b.WriteString(v.I.String())
	case Fun:
		b.WriteString("F")
		b.WriteString(v.F.String())
		if len(v.Children) == 0 {
			return
		}
		b.WriteByte('(')
		for i, c := range v.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			prettyInto(b, c)
		}
		b.WriteByte(')')
	}
}
