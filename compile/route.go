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
	"fmt"

	"github.com/dolthub-relbox/relbox/ast"
	"github.com/dolthub-relbox/relbox/box"
	"github.com/dolthub-relbox/relbox/internal/similarname"
	"github.com/dolthub-relbox/relbox/path"
)

// validate checks that ref is meaningful against t, panicking with the
// appropriate error kind if not.
func validate(pm *path.Map, t *box.BoxType, ref ast.Node) {
	if hb, ok := ref.(*ast.HandleBound); ok {
		k, exists := t.HandleMap[hb.Handle]
		if !exists {
			fail(box.ErrUndefinedHandle.New(), pm.PathOf(ref))
		}
		if _, amb := k.(box.AmbiguousType); amb {
			fail(box.ErrAmbiguousHandle.New(), pm.PathOf(ref))
		}
		row, ok := k.(*box.RowType)
		if !ok {
			fail(box.ErrUnexpectedScalarType.New(fmt.Sprintf("handle %d", hb.Handle)), pm.PathOf(ref))
		}
		validateInRow(pm, row, hb.Over, ref)
		return
	}
	validateInRow(pm, t.Row, ref, ref)
}

func validateInRow(pm *path.Map, row *box.RowType, n ast.Node, origRef ast.Node) {
	switch t := n.(type) {
	case *ast.NameBound:
		ft, ok := row.Get(t.Name)
		if !ok {
			failUndefined(pm, row, t.Name, origRef)
		}
		if _, amb := ft.(box.AmbiguousType); amb {
			fail(box.ErrAmbiguousName.New(t.Name), pm.PathOf(origRef))
		}
		nested, ok := ft.(*box.RowType)
		if !ok {
			fail(box.ErrUnexpectedScalarType.New(t.Name), pm.PathOf(origRef))
		}
		validateInRow(pm, nested, t.Over, origRef)

	case *ast.Get:
		ft, ok := row.Get(t.Name)
		if !ok {
			failUndefined(pm, row, t.Name, origRef)
		}
		if _, amb := ft.(box.AmbiguousType); amb {
			fail(box.ErrAmbiguousName.New(t.Name), pm.PathOf(origRef))
		}
		if _, ok := ft.(box.ScalarType); !ok {
			fail(box.ErrUnexpectedRowType.New(t.Name), pm.PathOf(origRef))
		}

	case *ast.Agg:
		switch row.Group.(type) {
		case box.EmptyType:
			fail(box.ErrUnexpectedAggregate.New(), pm.PathOf(origRef))
		case box.AmbiguousType:
			fail(box.ErrAmbiguousAggregate.New(), pm.PathOf(origRef))
		case *box.RowType:
			// fine: Agg validates against the exposed pre-aggregation row
		default:
			fail(errInternal("unrecognised group kind"), pm.PathOf(origRef))
		}

	default:
		fail(errInternal(fmt.Sprintf("unexpected ref shape %T", n)), pm.PathOf(origRef))
	}
}

func failUndefined(pm *path.Map, row *box.RowType, name box.Symbol, ref ast.Node) {
	names := make([]string, 0, row.Len())
	for _, f := range row.Fields() {
		names = append(names, string(f))
	}
	msg := string(name)
	if s := similarname.Find(names, string(name)); s != "" {
		msg = fmt.Sprintf("%s (did you mean %s?)", name, s)
	}
	fail(box.ErrUndefinedName.New(msg), pm.PathOf(ref))
}

// route decides which side of a binary operator ref belongs to: true for
// left (over), false for right (joinee/appended item).
func route(lt, rt *box.BoxType, ref ast.Node) bool {
	if hb, ok := ref.(*ast.HandleBound); ok {
		_, okLeft := lt.HandleMap[hb.Handle]
		return okLeft
	}
	return routeInRow(lt.Row, rt.Row, ref)
}

func routeInRow(lr, rr *box.RowType, n ast.Node) bool {
	switch t := n.(type) {
	case *ast.NameBound:
		lft, lok := lr.Get(t.Name)
		rft, rok := rr.Get(t.Name)
		if lok && !rok {
			return true
		}
		if rok && !lok {
			return false
		}
		lrow, _ := lft.(*box.RowType)
		rrow, _ := rft.(*box.RowType)
		if lrow == nil || rrow == nil {
			return true
		}
		return routeInRow(lrow, rrow, t.Over)
	case *ast.Get:
		_, lok := lr.Get(t.Name)
		return lok
	case *ast.Agg:
		_, lok := lr.Group.(*box.RowType)
		return lok
	default:
		return true
	}
}
