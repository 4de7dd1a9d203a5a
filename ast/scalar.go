// Copyright 2020-2021 Dolthub, Inc.
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

package ast

// Get navigates one step of a column-reference chain: Over (nil at the
// innermost step) holds the rest of the chain, Name the step taken here. The
// annotator rewrites every Get chain into NameBound/HandleBound form before
// the rest of the middle end ever sees it; a bare Get only appears as
// surface input or as the terminal produced by rebind.
type Get struct {
	Over Node
	Name Symbol
}

func (*Get) isNode() {}

// Fun applies a named scalar function to Args.
type Fun struct {
	Name Symbol
	Args []Node
}

func (*Fun) isNode() {}

// Agg applies a named aggregate function to Args, optionally filtered by
// Filter, evaluated against the group exposed by an enclosing Group or
// Partition. Over is the (possibly empty) outer-navigation chain prefixing
// the aggregate, consumed by rebind during annotation.
type Agg struct {
	Name   Symbol
	Args   []Node
	Filter Node
	Over   Node
}

func (*Agg) isNode() {}

// Literal is a constant scalar value.
type Literal struct {
	Value interface{}
}

func (*Literal) isNode() {}

// Variable references a value bound by an enclosing Bind. Bind and Index are
// filled in by the annotator once the enclosing Bind is resolved lexically;
// on surface (pre-annotation) nodes only Name is set.
type Variable struct {
	Name  Symbol
	Bind  *ExtendedBind
	Index int
}

func (*Variable) isNode() {}

// Sort wraps a scalar expression with a sort direction, used in Order.By and
// Partition.OrderBy.
type Sort struct {
	Over Node
	Desc bool
}

func (*Sort) isNode() {}
