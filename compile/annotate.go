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

// annotator holds the mutable state threaded through the first pass: the
// path map, the handle table, the lexical stack of enclosing binds (for
// resolving Variable references), and the flat list of boxes in
// construction order, which the resolver and linker walk afterward.
type annotator struct {
	ctx        *Context
	pm         *path.Map
	handles    *handleTable
	bindScopes []*ast.ExtendedBind
	boxes      []*ast.Box
}

func newAnnotator(ctx *Context) *annotator {
	return &annotator{
		ctx:     ctx,
		pm:      path.NewMap(),
		handles: newHandleTable(),
	}
}

// annotate is the tabular-context entry point. A nil node produces the
// implicit empty box. Otherwise it grows the path with n, builds the box,
// and shrinks again.
func (a *annotator) annotate(n ast.Node) *ast.Box {
	if n == nil {
		b := &ast.Box{Type: box.EmptyBoxType()}
		a.boxes = append(a.boxes, b)
		return b
	}
	a.pm.Grow(n)
	defer a.pm.Shrink()
	return a.annotateTabularBody(n)
}

// annotateTabularBody builds the box for n assuming the caller has already
// grown the path with n (or, for a scalar-tabular node, with the same n via
// annotateScalar's default branch) — it never grows or shrinks itself.
func (a *annotator) annotateTabularBody(n ast.Node) *ast.Box {
	reconstructed := a.buildTabular(n)
	a.pm.MarkOrigin(reconstructed)
	b := &ast.Box{Over: reconstructed}
	a.pm.MarkOrigin(b)
	a.boxes = append(a.boxes, b)
	return b
}

func (a *annotator) buildTabular(n ast.Node) ast.Node {
	a.ctx.checkCancelled()
	switch t := n.(type) {
	case *ast.From:
		return &ast.From{Table: t.Table}
	case *ast.Select:
		return &ast.Select{
			Over:   a.annotate(t.Over),
			Labels: cloneSymbols(t.Labels),
			List:   a.annotateScalarList(t.List),
		}
	case *ast.Where:
		return &ast.Where{
			Over:      a.annotate(t.Over),
			Condition: a.annotateScalar(t.Condition),
		}
	case *ast.Join:
		over := a.annotate(t.Over)
		joinee := a.annotate(t.Joinee)
		on := a.annotateScalar(t.On)
		return &ast.ExtendedJoin{Over: over, Joinee: joinee, On: on, Type: box.EmptyBoxType()}
	case *ast.Group:
		return &ast.Group{
			Over:   a.annotate(t.Over),
			Labels: cloneSymbols(t.Labels),
			By:     a.annotateScalarList(t.By),
		}
	case *ast.Partition:
		return &ast.Partition{
			Over:    a.annotate(t.Over),
			Labels:  cloneSymbols(t.Labels),
			By:      a.annotateScalarList(t.By),
			OrderBy: a.annotateScalarList(t.OrderBy),
		}
	case *ast.Append:
		over := a.annotate(t.Over)
		list := make([]ast.Node, len(t.List))
		for i, x := range t.List {
			list[i] = a.annotate(x)
		}
		return &ast.Append{Over: over, List: list}
	case *ast.As:
		return &ast.As{Over: a.annotate(t.Over), Name: t.Name}
	case *ast.Define:
		return &ast.Define{
			Over:   a.annotate(t.Over),
			Labels: cloneSymbols(t.Labels),
			List:   a.annotateScalarList(t.List),
		}
	case *ast.Order:
		return &ast.Order{Over: a.annotate(t.Over), By: a.annotateScalarList(t.By)}
	case *ast.Limit:
		return &ast.Limit{Over: a.annotate(t.Over), Count: a.annotateScalar(t.Count)}
	case *ast.Highlight:
		return &ast.Highlight{Over: a.annotate(t.Over)}
	case *ast.Bind:
		list := a.annotateScalarList(t.List)
		eb := &ast.ExtendedBind{Labels: cloneSymbols(t.Labels), List: list}
		a.bindScopes = append(a.bindScopes, eb)
		eb.Over = a.annotate(t.Over)
		a.bindScopes = a.bindScopes[:len(a.bindScopes)-1]
		return eb
	default:
		a.illFormed(n)
		return nil
	}
}

// annotateScalar is the scalar-context entry point.
func (a *annotator) annotateScalar(n ast.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch t := n.(type) {
	case *ast.Get:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		base := ast.Node(&ast.Get{Name: t.Name})
		result := a.rebind(t.Over, base)
		a.pm.MarkOrigin(result)
		return result
	case *ast.Fun:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		f := &ast.Fun{Name: t.Name, Args: a.annotateScalarList(t.Args)}
		a.pm.MarkOrigin(f)
		return f
	case *ast.Agg:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		agg := &ast.Agg{
			Name:   t.Name,
			Args:   a.annotateScalarList(t.Args),
			Filter: a.annotateScalar(t.Filter),
		}
		result := a.rebind(t.Over, ast.Node(agg))
		a.pm.MarkOrigin(result)
		return result
	case *ast.Literal:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		lit := &ast.Literal{Value: t.Value}
		a.pm.MarkOrigin(lit)
		return lit
	case *ast.Variable:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		bind, idx, ok := a.lookupBind(t.Name)
		if !ok {
			a.illFormed(n)
		}
		v := &ast.Variable{Name: t.Name, Bind: bind, Index: idx}
		a.pm.MarkOrigin(v)
		return v
	case *ast.Sort:
		a.pm.Grow(n)
		defer a.pm.Shrink()
		s := &ast.Sort{Over: a.annotateScalar(t.Over), Desc: t.Desc}
		a.pm.MarkOrigin(s)
		return s
	default:
		if isTabularNode(n) {
			a.pm.Grow(n)
			defer a.pm.Shrink()
			b := a.annotateTabularBody(n)
			a.pm.MarkOrigin(b)
			return b
		}
		a.illFormed(n)
		return nil
	}
}

func (a *annotator) annotateScalarList(list []ast.Node) []ast.Node {
	if list == nil {
		return nil
	}
	out := make([]ast.Node, len(list))
	for i, n := range list {
		out[i] = a.annotateScalar(n)
	}
	return out
}

// rebind walks the Over chain of a Get or Agg, normalising it into
// NameBound/HandleBound wrapper form around base. node is the *original*
// user-tree node being walked (never an already-annotated one): for a bare
// Get chain it steps through surface Get nodes; if the terminal is a
// tabular node, its handle is allocated against that original identity.
func (a *annotator) rebind(node ast.Node, base ast.Node) ast.Node {
	for {
		g, ok := node.(*ast.Get)
		if !ok {
			break
		}
		base = &ast.NameBound{Over: base, Name: g.Name}
		a.pm.MarkOrigin(base)
		node = g.Over
	}
	if node != nil {
		if !isTabularNode(node) {
			a.illFormed(node)
		}
		h := a.handles.make(node)
		base = &ast.HandleBound{Over: base, Handle: h}
		a.pm.MarkOrigin(base)
	}
	return base
}

func (a *annotator) lookupBind(name ast.Symbol) (*ast.ExtendedBind, int, bool) {
	for i := len(a.bindScopes) - 1; i >= 0; i-- {
		eb := a.bindScopes[i]
		for idx, l := range eb.Labels {
			if l == name {
				return eb, idx, true
			}
		}
	}
	return nil, 0, false
}

func (a *annotator) illFormed(n ast.Node) {
	fail(box.ErrIllFormed.New(fmt.Sprintf("%T", n)), a.pm.CurrentPath())
}

func isTabularNode(n ast.Node) bool {
	switch n.(type) {
	case *ast.From, *ast.Select, *ast.Where, *ast.Join, *ast.Group, *ast.Partition,
		*ast.Append, *ast.As, *ast.Define, *ast.Order, *ast.Limit, *ast.Highlight,
		*ast.Bind, *ast.Box, *ast.ExtendedJoin, *ast.ExtendedBind:
		return true
	default:
		return false
	}
}

func cloneSymbols(s []ast.Symbol) []ast.Symbol {
	if s == nil {
		return nil
	}
	out := make([]ast.Symbol, len(s))
	copy(out, s)
	return out
}
