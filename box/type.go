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

// Package box implements the row-shape algebra described by the middle
// end's type resolver: BoxType, RowType, the four FieldType/GroupType kinds,
// and the union/intersect operations binary operators use to combine them.
package box

// Symbol names a column, label, or table alias.
type Symbol string

// Handle is the integer identity of a tabular node reachable by an outer
// scalar reference. A zero Handle means "not outer-referenced".
type Handle int

// Kind is the closed sum type shared by FieldType (a RowType field's shape)
// and GroupType (a RowType's own group slot): ScalarType, *RowType,
// EmptyType, or AmbiguousType.
type Kind interface {
	isKind()
}

// FieldType is the shape of a single RowType field.
type FieldType = Kind

// GroupType is the shape of a RowType's group slot.
type GroupType = Kind

// ScalarType marks a field that holds a single column value.
type ScalarType struct{}

func (ScalarType) isKind() {}

// EmptyType marks an absent field, or a row with no group in scope.
type EmptyType struct{}

func (EmptyType) isKind() {}

// AmbiguousType marks a field whose meaning collided across two branches of
// a join or append. It is a type-level value, not itself an error: it only
// becomes an error once validation visits it.
type AmbiguousType struct{}

func (AmbiguousType) isKind() {}

// RowType is an ordered mapping from field name to FieldType, plus a group
// slot used by Group/Partition to expose their pre-aggregation row to
// Agg validation.
type RowType struct {
	names  []Symbol
	fields map[Symbol]FieldType
	Group  GroupType
}

func (*RowType) isKind() {}

// NewRowType returns an empty row with no group in scope.
func NewRowType() *RowType {
	return &RowType{fields: map[Symbol]FieldType{}, Group: EmptyType{}}
}

// Set assigns name's field type, appending name to the declared order the
// first time it is set and overwriting in place on any later call.
func (r *RowType) Set(name Symbol, t FieldType) {
	if _, ok := r.fields[name]; !ok {
		r.names = append(r.names, name)
	}
	r.fields[name] = t
}

// Get returns name's field type, if declared.
func (r *RowType) Get(name Symbol) (FieldType, bool) {
	t, ok := r.fields[name]
	return t, ok
}

// Fields returns the declared field names in insertion order. The returned
// slice is a copy; mutating it does not affect r.
func (r *RowType) Fields() []Symbol {
	out := make([]Symbol, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of declared fields.
func (r *RowType) Len() int { return len(r.names) }

// Clone returns a shallow copy of r: the field order and field map are
// copied, while field types and the group slot are shared (RowType nodes
// within them are immutable by convention once built).
func (r *RowType) Clone() *RowType {
	out := NewRowType()
	for _, n := range r.names {
		out.Set(n, r.fields[n])
	}
	out.Group = r.Group
	return out
}

// BoxType is a tabular node's resolved schema: its default alias, its
// visible row, and the map from handle to the row type (or ambiguity) that
// handle addresses.
type BoxType struct {
	Name      Symbol
	Row       *RowType
	HandleMap map[Handle]Kind
}

// NewBoxType builds a BoxType with an empty handle map.
func NewBoxType(name Symbol, row *RowType) *BoxType {
	return &BoxType{Name: name, Row: row, HandleMap: map[Handle]Kind{}}
}

// EmptyBoxType is the type against which free-standing scalar expressions
// (an unconsumed Bind's bindings, an ExtendedBind used outside any query)
// must validate: no fields, no handles.
func EmptyBoxType() *BoxType {
	return NewBoxType("", NewRowType())
}

// BindHandle records that h addresses row. A second bind of the same handle
// (which should not happen for a single box, but can when merging two boxes'
// handle maps) turns the entry ambiguous rather than overwriting it.
func (t *BoxType) BindHandle(h Handle, row *RowType) {
	if h == 0 {
		return
	}
	if _, ok := t.HandleMap[h]; ok {
		t.HandleMap[h] = AmbiguousType{}
		return
	}
	t.HandleMap[h] = row
}

// CloneHandleMap returns a shallow copy of a handle map, safe to attach to a
// different BoxType without aliasing the original's map.
func CloneHandleMap(m map[Handle]Kind) map[Handle]Kind {
	out := make(map[Handle]Kind, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
