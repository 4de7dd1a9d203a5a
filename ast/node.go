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

// Package ast defines the operator-tree node shapes that flow through the
// middle end: the surface tabular/scalar variants a query is built from, and
// the middle-end-only variants the annotator introduces (Box, NameBound,
// HandleBound, ExtendedBind, ExtendedJoin).
//
// Node is a closed sum type: every concrete variant below implements the
// unexported isNode method, so no type outside this package can satisfy
// Node. Passes dispatch on concrete type via a type switch rather than a
// shared virtual method, so a node kind with no matching case in a pass is a
// missing switch arm, not a silent no-op.
package ast

import "github.com/dolthub-relbox/relbox/box"

// Symbol names a column, label, or table alias.
type Symbol = box.Symbol

// Node is implemented by every tabular and scalar tree node.
type Node interface {
	isNode()
}

// Table carries the declared shape of a base relation: its name and its
// columns in declared order.
type Table struct {
	Name    Symbol
	Columns []Symbol
}

// From is a leaf tabular node producing the rows of a base table.
type From struct {
	Table *Table
}

func (*From) isNode() {}

// Select projects a fixed, ordered list of scalar expressions, replacing the
// input row type entirely.
type Select struct {
	Over   Node
	Labels []Symbol
	List   []Node
}

func (*Select) isNode() {}

// Where filters rows of Over by a scalar predicate, passing the row type
// through unchanged.
type Where struct {
	Over      Node
	Condition Node
}

func (*Where) isNode() {}

// Join combines Over (left) with Joinee (right) under predicate On. The
// annotator always rewrites a surface Join into an ExtendedJoin.
type Join struct {
	Over   Node
	Joinee Node
	On     Node
}

func (*Join) isNode() {}

// Group collapses Over into one row per distinct combination of By, exposing
// By under Labels and making Over's row available for aggregation.
type Group struct {
	Over   Node
	Labels []Symbol
	By     []Node
}

func (*Group) isNode() {}

// Partition keeps every row of Over but annotates each with its partition
// group (windowing), ordered within the partition by OrderBy.
type Partition struct {
	Over    Node
	Labels  []Symbol
	By      []Node
	OrderBy []Node
}

func (*Partition) isNode() {}

// Append concatenates Over with every tabular node in List.
type Append struct {
	Over Node
	List []Node
}

func (*Append) isNode() {}

// As gives Over's row a single nested namespace name, used for table
// aliasing ahead of a Join.
type As struct {
	Over Node
	Name Symbol
}

func (*As) isNode() {}

// Define adds or replaces columns of Over by evaluating List against Labels,
// leaving every other column (and Over's group) untouched.
type Define struct {
	Over   Node
	Labels []Symbol
	List   []Node
}

func (*Define) isNode() {}

// Order sorts Over by By (a list of Sort nodes), passing the row type
// through unchanged.
type Order struct {
	Over Node
	By   []Node
}

func (*Order) isNode() {}

// Limit caps Over at Count rows.
type Limit struct {
	Over  Node
	Count Node
}

func (*Limit) isNode() {}

// Highlight is a transparent marker node (used by the surface layer to tag
// rows for diagnostic rendering) that otherwise passes its row type through.
type Highlight struct {
	Over Node
}

func (*Highlight) isNode() {}

// Bind declares a list of named scalar values (List, named by Labels) usable
// as Variable references anywhere within Over. The annotator always rewrites
// a surface Bind into an ExtendedBind.
type Bind struct {
	Over   Node
	Labels []Symbol
	List   []Node
}

func (*Bind) isNode() {}
