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

import "github.com/dolthub-relbox/relbox/box"

// Box wraps every tabular node in the annotated tree. Over holds the
// wrapped node (nil for the implicit empty input). Type and Handle are
// filled by the type resolver; Refs is filled by the reference linker.
type Box struct {
	Over   Node
	Type   *box.BoxType
	Handle box.Handle
	Refs   []Node
}

func (*Box) isNode() {}

// NameBound is the normalised form of a Get step that navigates a field
// name in the current scope: "take Over, then go one level further in by
// field Name".
type NameBound struct {
	Over Node
	Name Symbol
}

func (*NameBound) isNode() {}

// HandleBound is the normalised form of a Get chain whose terminal reaches
// outside the current scope, into a tabular node addressed by Handle.
type HandleBound struct {
	Over   Node
	Handle box.Handle
}

func (*HandleBound) isNode() {}

// ExtendedBind is the annotated form of Bind. Owned records whether some
// Variable inside Over actually dereferenced one of List's bindings; the
// linker only validates List against the empty box type when Owned is
// false, catching bindings that both go unused and smuggle in an outer
// column reference.
type ExtendedBind struct {
	Over   Node
	Labels []Symbol
	List   []Node
	Owned  bool
}

func (*ExtendedBind) isNode() {}

// ExtendedJoin is the annotated form of Join. Lateral holds the
// HandleBound refs discovered inside Joinee that reach into Over's scope
// (non-empty exactly when the join must be emitted as LATERAL downstream).
// Type caches the resolved union BoxType once the resolver visits this
// node, so the linker does not need to recompute it.
type ExtendedJoin struct {
	Over    Node
	Joinee  Node
	On      Node
	Lateral []Node
	Type    *box.BoxType
}

func (*ExtendedJoin) isNode() {}
