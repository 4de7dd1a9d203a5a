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
	"github.com/dolthub-relbox/relbox/path"
)

// linkRefs is the third pass: seed the root box with every scalar column of
// its row, then walk boxes in reverse construction order (root first),
// translating and dispatching each box's demanded refs down into its Over.
func linkRefs(ctx *Context, pm *path.Map, boxes []*ast.Box) {
	if len(boxes) == 0 {
		return
	}
	root := boxes[len(boxes)-1]
	seedRootRefs(root)
	for i := len(boxes) - 1; i >= 0; i-- {
		ctx.checkCancelled()
		b := boxes[i]
		if b.Over == nil {
			continue
		}
		linkNode(ctx, pm, b, translateRefs(b))
	}
}

func seedRootRefs(root *ast.Box) {
	var refs []ast.Node
	for _, f := range root.Type.Row.Fields() {
		ft, _ := root.Type.Row.Get(f)
		if _, ok := ft.(box.ScalarType); ok {
			refs = append(refs, &ast.Get{Name: f})
		}
	}
	root.Refs = refs
}

// translateRefs collapses any ref that is a HandleBound addressing this
// box's own handle back to its inner form: that reference has reached its
// target, and what remains to propagate further down is whatever it was
// navigating within this box's scope.
func translateRefs(b *ast.Box) []ast.Node {
	out := make([]ast.Node, 0, len(b.Refs))
	for _, r := range b.Refs {
		if hb, ok := r.(*ast.HandleBound); ok && b.Handle != 0 && hb.Handle == b.Handle {
			out = append(out, hb.Over)
		} else {
			out = append(out, r)
		}
	}
	return out
}

func linkNode(ctx *Context, pm *path.Map, b *ast.Box, refs []ast.Node) {
	switch t := b.Over.(type) {
	case *ast.From:
		// leaf: nothing further to push refs into

	case *ast.Append:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)
		for _, item := range t.List {
			ib := boxOf(item)
			ib.Refs = append(ib.Refs, refs...)
		}

	case *ast.As:
		overBox := boxOf(t.Over)
		for _, r := range refs {
			switch rr := r.(type) {
			case *ast.NameBound:
				if rr.Name != t.Name {
					fail(errInternal("As ref name does not match its own alias"), pm.PathOf(r))
				}
				overBox.Refs = append(overBox.Refs, rr.Over)
			case *ast.HandleBound:
				overBox.Refs = append(overBox.Refs, rr)
			default:
				fail(errInternal(fmt.Sprintf("unexpected ref shape under As: %T", r)), pm.PathOf(r))
			}
		}

	case *ast.Define:
		overBox := boxOf(t.Over)
		seen := map[box.Symbol]bool{}
		for _, r := range refs {
			g, ok := r.(*ast.Get)
			if !ok {
				overBox.Refs = append(overBox.Refs, r)
				continue
			}
			idx := indexOfLabel(t.Labels, g.Name)
			if idx < 0 {
				overBox.Refs = append(overBox.Refs, r)
				continue
			}
			if seen[g.Name] {
				continue
			}
			seen[g.Name] = true
			overBox.Refs = append(overBox.Refs, gatherAndValidate(pm, overBox.Type, t.List[idx])...)
		}

	case *ast.ExtendedBind:
		if !t.Owned {
			for _, item := range t.List {
				gatherAndValidate(pm, box.EmptyBoxType(), item)
			}
		}
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)

	case *ast.ExtendedJoin:
		linkExtendedJoin(pm, t, refs)

	case *ast.Group:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, gatherAndValidateList(pm, overBox.Type, t.By)...)
		for _, r := range refs {
			agg, ok := r.(*ast.Agg)
			if !ok {
				ctx.Log().WithField("ref", fmt.Sprintf("%T", r)).Trace("dropping non-aggregate ref at group boundary")
				continue
			}
			overBox.Refs = append(overBox.Refs, gatherAgg(pm, overBox.Type, agg)...)
		}

	case *ast.Highlight:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)

	case *ast.Limit:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)

	case *ast.Order:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)
		overBox.Refs = append(overBox.Refs, gatherAndValidateList(pm, overBox.Type, t.By)...)

	case *ast.Partition:
		overBox := boxOf(t.Over)
		for _, r := range refs {
			if agg, ok := r.(*ast.Agg); ok {
				overBox.Refs = append(overBox.Refs, gatherAgg(pm, overBox.Type, agg)...)
			} else {
				overBox.Refs = append(overBox.Refs, r)
			}
		}
		overBox.Refs = append(overBox.Refs, gatherAndValidateList(pm, overBox.Type, t.By)...)
		overBox.Refs = append(overBox.Refs, gatherAndValidateList(pm, overBox.Type, t.OrderBy)...)

	case *ast.Select:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, gatherAndValidateList(pm, overBox.Type, t.List)...)
		// incoming refs discarded: Select cuts the outer scope

	case *ast.Where:
		overBox := boxOf(t.Over)
		overBox.Refs = append(overBox.Refs, refs...)
		overBox.Refs = append(overBox.Refs, gatherAndValidate(pm, overBox.Type, t.Condition)...)

	default:
		fail(errInternal(fmt.Sprintf("unrecognised tabular node in link: %T", t)), pm.CurrentPath())
	}
}

func gatherAgg(pm *path.Map, t *box.BoxType, agg *ast.Agg) []ast.Node {
	out := gatherAndValidateList(pm, t, agg.Args)
	if agg.Filter != nil {
		out = append(out, gatherAndValidate(pm, t, agg.Filter)...)
	}
	return out
}

func linkExtendedJoin(pm *path.Map, t *ast.ExtendedJoin, refs []ast.Node) {
	overBox := boxOf(t.Over)
	joineeBox := boxOf(t.Joinee)

	lateral := allHandleBoundRefs(t.Joinee, overBox.Type)
	t.Lateral = lateral
	overBox.Refs = append(overBox.Refs, lateral...)

	all := gatherAndValidate(pm, t.Type, t.On)
	all = append(all, refs...)

	for _, r := range all {
		if route(overBox.Type, joineeBox.Type, r) {
			overBox.Refs = append(overBox.Refs, r)
		} else {
			joineeBox.Refs = append(joineeBox.Refs, r)
		}
	}
}

// allHandleBoundRefs walks n (which may be a whole Box-wrapped tabular
// subtree, unlike gather) looking for any buried HandleBound whose handle
// is reachable in overType's handle map — a scalar reference somewhere
// inside a joined subquery that correlates back to the outer query. This
// crosses Box boundaries deliberately: lateral correlation can be nested
// arbitrarily deep inside the joinee's own scalar expressions.
func allHandleBoundRefs(n ast.Node, overType *box.BoxType) []ast.Node {
	var out []ast.Node
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		switch t := n.(type) {
		case *ast.HandleBound:
			if _, ok := overType.HandleMap[t.Handle]; ok {
				out = append(out, t)
			}
			walk(t.Over)
		case *ast.NameBound:
			walk(t.Over)
		case *ast.Get:
			walk(t.Over)
		case *ast.Fun:
			for _, a := range t.Args {
				walk(a)
			}
		case *ast.Agg:
			for _, a := range t.Args {
				walk(a)
			}
			walk(t.Filter)
			walk(t.Over)
		case *ast.Sort:
			walk(t.Over)
		case *ast.As:
			walk(t.Over)
		case *ast.Highlight:
			walk(t.Over)
		case *ast.Variable:
			if t.Bind != nil {
				walk(t.Bind.List[t.Index])
			}
		case *ast.ExtendedBind:
			walk(t.Over)
			for _, x := range t.List {
				walk(x)
			}
		case *ast.Box:
			walk(t.Over)
		case *ast.Select:
			for _, x := range t.List {
				walk(x)
			}
			walk(t.Over)
		case *ast.Where:
			walk(t.Condition)
			walk(t.Over)
		case *ast.Define:
			for _, x := range t.List {
				walk(x)
			}
			walk(t.Over)
		case *ast.Group:
			for _, x := range t.By {
				walk(x)
			}
			walk(t.Over)
		case *ast.Partition:
			for _, x := range t.By {
				walk(x)
			}
			for _, x := range t.OrderBy {
				walk(x)
			}
			walk(t.Over)
		case *ast.Append:
			for _, x := range t.List {
				walk(x)
			}
			walk(t.Over)
		case *ast.Order:
			for _, x := range t.By {
				walk(x)
			}
			walk(t.Over)
		case *ast.Limit:
			walk(t.Count)
			walk(t.Over)
		case *ast.ExtendedJoin:
			walk(t.On)
			walk(t.Joinee)
			walk(t.Over)
		case *ast.From, *ast.Literal:
			// leaves
		}
	}
	walk(n)
	return out
}

func indexOfLabel(labels []box.Symbol, name box.Symbol) int {
	for i, l := range labels {
		if l == name {
			return i
		}
	}
	return -1
}
