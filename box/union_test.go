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

package box

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionEmptyIdentity(t *testing.T) {
	k := unionKind(EmptyType{}, ScalarType{})
	_, ok := k.(ScalarType)
	require.True(t, ok, "EmptyType union X should yield X, got %T", k)
}

func TestIntersectEmptyAbsorbing(t *testing.T) {
	k := intersectKind(EmptyType{}, ScalarType{})
	_, ok := k.(EmptyType)
	require.True(t, ok, "EmptyType intersect X should yield EmptyType, got %T", k)
}

func TestUnionConflictingKindsAmbiguous(t *testing.T) {
	k := unionKind(ScalarType{}, NewRowType())
	_, ok := k.(AmbiguousType)
	require.True(t, ok, "conflicting kinds should union to AmbiguousType, got %T", k)
}

func TestUnionRowTypeRecurses(t *testing.T) {
	a := NewRowType()
	a.Set("x", ScalarType{})
	b := NewRowType()
	b.Set("y", ScalarType{})

	k := unionKind(a, b)
	row, ok := k.(*RowType)
	require.True(t, ok, "nested RowType union should recurse, got %T", k)
	require.Equal(t, 2, row.Len(), "expected 2 fields after union: %v", row.Fields())
}

func TestIntersectRowTypeOnlyCommonFields(t *testing.T) {
	a := NewRowType()
	a.Set("x", ScalarType{})
	a.Set("shared", ScalarType{})
	b := NewRowType()
	b.Set("y", ScalarType{})
	b.Set("shared", ScalarType{})

	k := intersectKind(a, b)
	row, ok := k.(*RowType)
	require.True(t, ok, "expected RowType, got %T", k)
	require.Equal(t, 1, row.Len(), "expected only shared field to survive: %v", row.Fields())
	_, ok = row.Get("shared")
	require.True(t, ok, "shared field missing from intersection")
}

func TestBoxTypeUnionMergesHandleMaps(t *testing.T) {
	a := NewBoxType("a", NewRowType())
	a.HandleMap[1] = NewRowType()
	b := NewBoxType("b", NewRowType())
	b.HandleMap[2] = NewRowType()

	out := Union(a, b)
	require.Len(t, out.HandleMap, 2, "expected 2 handles after union")
	require.Equal(t, Symbol("a"), out.Name, "Union should keep the left side's name")
}

func TestBoxTypeUnionOverlappingHandleAmbiguous(t *testing.T) {
	a := NewBoxType("a", NewRowType())
	a.HandleMap[1] = NewRowType()
	b := NewBoxType("b", NewRowType())
	b.HandleMap[1] = NewRowType()

	out := Union(a, b)
	_, ok := out.HandleMap[1].(AmbiguousType)
	require.True(t, ok, "overlapping handle should be ambiguous, got %T", out.HandleMap[1])
}

func TestBoxTypeIntersectDropsOneSidedHandles(t *testing.T) {
	a := NewBoxType("a", NewRowType())
	a.HandleMap[1] = NewRowType()
	b := NewBoxType("b", NewRowType())

	out := Intersect(a, b)
	require.Empty(t, out.HandleMap, "handle present on only one side should not survive intersect")
}
