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

package compile

import (
	"testing"

	"github.com/dolthub-relbox/relbox/ast"
	"github.com/dolthub-relbox/relbox/box"
	"github.com/dolthub-relbox/relbox/path"
	"github.com/stretchr/testify/require"
)

func buildAndResolve(t *testing.T, root ast.Node) (*ast.Box, []*ast.Box, *path.Map) {
	t.Helper()
	a := newTestAnnotator()
	rootBox := a.annotate(root)
	resolveTypes(a.ctx, a.pm, a.handles, a.boxes)
	return rootBox, a.boxes, a.pm
}

func TestResolveFromOrderedColumns(t *testing.T) {
	from := &ast.From{Table: &ast.Table{Name: "people", Columns: []ast.Symbol{"id", "name"}}}
	rootBox, _, _ := buildAndResolve(t, from)

	require.Equal(t, box.Symbol("people"), rootBox.Type.Name)
	require.Equal(t, []ast.Symbol{"id", "name"}, rootBox.Type.Row.Fields())
}

func TestResolveAsNestsRow(t *testing.T) {
	from := &ast.From{Table: &ast.Table{Name: "a", Columns: []ast.Symbol{"k"}}}
	alias := &ast.As{Over: from, Name: "x"}

	rootBox, _, _ := buildAndResolve(t, alias)

	require.Equal(t, box.Symbol("x"), rootBox.Type.Name)
	ft, ok := rootBox.Type.Row.Get("x")
	require.True(t, ok, "expected field x")
	_, ok = ft.(*box.RowType)
	require.True(t, ok, "expected nested RowType under x, got %T", ft)
}

func TestResolveGroupExposesGroupSlot(t *testing.T) {
	from := &ast.From{Table: &ast.Table{Name: "orders", Columns: []ast.Symbol{"customer_id", "total"}}}
	group := &ast.Group{Over: from, Labels: []ast.Symbol{"customer_id"}, By: []ast.Node{&ast.Get{Name: "customer_id"}}}

	rootBox, _, _ := buildAndResolve(t, group)

	_, ok := rootBox.Type.Row.Get("customer_id")
	require.True(t, ok, "expected customer_id field in group row")
	grouped, ok := rootBox.Type.Row.Group.(*box.RowType)
	require.True(t, ok, "expected group slot to be a RowType, got %T", rootBox.Type.Row.Group)
	_, ok = grouped.Get("total")
	require.True(t, ok, "expected total reachable through the group slot")
	require.Empty(t, rootBox.Type.HandleMap, "Group should clear the handle map")
}

func TestResolvePartitionKeepsFieldsAndGroup(t *testing.T) {
	from := &ast.From{Table: &ast.Table{Name: "events", Columns: []ast.Symbol{"user_id", "ts"}}}
	part := &ast.Partition{Over: from, Labels: []ast.Symbol{"user_id"}, By: []ast.Node{&ast.Get{Name: "user_id"}}}

	rootBox, _, _ := buildAndResolve(t, part)

	require.Equal(t, 2, rootBox.Type.Row.Len(), "Partition should keep all of over's fields")
	_, ok := rootBox.Type.Row.Group.(*box.RowType)
	require.True(t, ok, "Partition should expose over's row as its group slot")
}

func TestResolveAppendIntersectsFields(t *testing.T) {
	a := &ast.From{Table: &ast.Table{Name: "a", Columns: []ast.Symbol{"x", "shared"}}}
	b := &ast.From{Table: &ast.Table{Name: "b", Columns: []ast.Symbol{"y", "shared"}}}
	app := &ast.Append{Over: a, List: []ast.Node{b}}

	rootBox, _, _ := buildAndResolve(t, app)

	require.Equal(t, 1, rootBox.Type.Row.Len(), "expected only the shared field")
}

func TestResolveExtendedJoinUnionsFields(t *testing.T) {
	left := &ast.As{Over: &ast.From{Table: &ast.Table{Name: "a", Columns: []ast.Symbol{"k"}}}, Name: "a"}
	right := &ast.As{Over: &ast.From{Table: &ast.Table{Name: "b", Columns: []ast.Symbol{"k"}}}, Name: "b"}
	join := &ast.Join{Over: left, Joinee: right, On: &ast.Literal{Value: true}}

	rootBox, _, _ := buildAndResolve(t, join)

	ej, ok := rootBox.Over.(*ast.ExtendedJoin)
	require.True(t, ok, "expected *ast.ExtendedJoin, got %T", rootBox.Over)
	require.Same(t, rootBox.Type, ej.Type, "ExtendedJoin.Type should be cached as the same object as its box's Type")
	require.Equal(t, 2, rootBox.Type.Row.Len(), "expected both a and b fields present")
}

func TestResolveSelfRegistersHandle(t *testing.T) {
	// Construct a Get chain whose terminal is the From node itself, forcing
	// a handle allocation, then verify the box registers its own row under
	// that handle (so an ancestor box inherits it through passthrough).
	from := &ast.From{Table: &ast.Table{Name: "a", Columns: []ast.Symbol{"k"}}}
	highlight := &ast.Highlight{Over: from}
	sel := &ast.Select{
		Over:   highlight,
		Labels: []ast.Symbol{"v"},
		List:   []ast.Node{&ast.Get{Name: "k", Over: from}},
	}

	_, boxes, _ := buildAndResolve(t, sel)

	var fromBox *ast.Box
	for _, b := range boxes {
		if _, ok := b.Over.(*ast.From); ok {
			fromBox = b
		}
	}
	require.NotNil(t, fromBox, "expected a box wrapping From")
	require.NotZero(t, fromBox.Handle, "expected the From box to have a nonzero handle")
	_, ok := fromBox.Type.HandleMap[fromBox.Handle]
	require.True(t, ok, "expected the box to self-register its row under its own handle")
}
