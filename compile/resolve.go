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
	"github.com/dolthub-relbox/relbox/ast"
	"github.com/dolthub-relbox/relbox/box"
	"github.com/dolthub-relbox/relbox/path"
)

// resolveTypes fills in BoxType bottom-up, in construction order:
// boxes appear children-before-parents, so resolving in that order means
// every Over has already been resolved by the time its parent is visited.
func resolveTypes(ctx *Context, pm *path.Map, ht *handleTable, boxes []*ast.Box) {
	for _, b := range boxes {
		ctx.checkCancelled()
		if b.Over == nil {
			continue
		}
		h := getHandle(pm, ht, b.Over)
		t := resolveNode(pm, b.Over)
		t.BindHandle(h, t.Row)
		b.Handle = h
		b.Type = t
	}
}

func boxOf(n ast.Node) *ast.Box {
	b, ok := n.(*ast.Box)
	if !ok {
		fail(errInternal("expected a Box node"), nil)
	}
	return b
}

func childType(n ast.Node) *box.BoxType {
	return boxOf(n).Type
}

// cloneBoxType copies t into a fresh BoxType object so a passthrough
// resolution never aliases a child box's type — each box gets its own
// handle map to register itself into.
func cloneBoxType(t *box.BoxType) *box.BoxType {
	out := box.NewBoxType(t.Name, t.Row.Clone())
	out.HandleMap = box.CloneHandleMap(t.HandleMap)
	return out
}

func resolveNode(pm *path.Map, n ast.Node) *box.BoxType {
	switch t := n.(type) {
	case *ast.From:
		row := box.NewRowType()
		for _, col := range t.Table.Columns {
			row.Set(col, box.ScalarType{})
		}
		return box.NewBoxType(t.Table.Name, row)

	case *ast.As:
		over := childType(t.Over)
		row := box.NewRowType()
		row.Set(t.Name, over.Row)
		bt := box.NewBoxType(t.Name, row)
		bt.HandleMap = box.CloneHandleMap(over.HandleMap)
		return bt

	case *ast.Select:
		over := childType(t.Over)
		row := box.NewRowType()
		for _, label := range t.Labels {
			row.Set(label, box.ScalarType{})
		}
		return box.NewBoxType(over.Name, row)

	case *ast.Define:
		over := childType(t.Over)
		row := over.Row.Clone()
		for _, label := range t.Labels {
			row.Set(label, box.ScalarType{})
		}
		bt := box.NewBoxType(over.Name, row)
		bt.HandleMap = box.CloneHandleMap(over.HandleMap)
		return bt

	case *ast.Group:
		over := childType(t.Over)
		row := box.NewRowType()
		for _, label := range t.Labels {
			row.Set(label, box.ScalarType{})
		}
		row.Group = over.Row
		return box.NewBoxType(over.Name, row)

	case *ast.Partition:
		over := childType(t.Over)
		row := over.Row.Clone()
		row.Group = over.Row
		bt := box.NewBoxType(over.Name, row)
		bt.HandleMap = box.CloneHandleMap(over.HandleMap)
		return bt

	case *ast.Append:
		over := childType(t.Over)
		if len(t.List) == 0 {
			return cloneBoxType(over)
		}
		result := box.Intersect(over, childType(t.List[0]))
		for _, item := range t.List[1:] {
			result = box.Intersect(result, childType(item))
		}
		return result

	case *ast.ExtendedJoin:
		over := childType(t.Over)
		joinee := childType(t.Joinee)
		result := box.Union(over, joinee)
		t.Type = result
		return result

	case *ast.ExtendedBind, *ast.Highlight, *ast.Limit, *ast.Order, *ast.Where:
		return cloneBoxType(childType(overOf(t)))

	default:
		fail(errInternal("unresolvable tabular node"), pm.CurrentPath())
		return nil
	}
}

// overOf extracts the Over edge from any of the passthrough node kinds,
// since they share no common field accessor across a type switch.
func overOf(n ast.Node) ast.Node {
	switch t := n.(type) {
	case *ast.ExtendedBind:
		return t.Over
	case *ast.Highlight:
		return t.Over
	case *ast.Limit:
		return t.Over
	case *ast.Order:
		return t.Over
	case *ast.Where:
		return t.Over
	default:
		fail(errInternal("overOf called on non-passthrough node"), nil)
		return nil
	}
}
