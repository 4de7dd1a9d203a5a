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

// gather collects the free scalar references reachable from n without
// crossing into a nested query's own scope. It recurses through the
// transparent scalar wrappers (As, Highlight, Sort, Fun, ExtendedBind) and
// collects Agg/Get/HandleBound/NameBound as terminal refs. A Box boundary
// is a no-op stop: a scalar-tabular subquery resolves its own refs in its
// own linker visit, so gather neither descends into it nor reports it as a
// ref of the enclosing scalar expression.
func gather(n ast.Node, out *[]ast.Node) {
	switch t := n.(type) {
	case nil:
		return
	case *ast.As:
		gather(t.Over, out)
	case *ast.Box:
		return
	case *ast.Highlight:
		gather(t.Over, out)
	case *ast.Sort:
		gather(t.Over, out)
	case *ast.Fun:
		for _, arg := range t.Args {
			gather(arg, out)
		}
	case *ast.ExtendedBind:
		gather(t.Over, out)
	case *ast.Variable:
		if t.Bind != nil {
			t.Bind.Owned = true
			gather(t.Bind.List[t.Index], out)
		}
	case *ast.Agg:
		*out = append(*out, t)
	case *ast.Get:
		*out = append(*out, t)
	case *ast.HandleBound:
		*out = append(*out, t)
	case *ast.NameBound:
		*out = append(*out, t)
	default:
		// Literal and similar leaves contribute no free references.
	}
}

// gatherAndValidate gathers n's free refs and validates each against t,
// returning the refs for the caller to push upward.
func gatherAndValidate(pm *path.Map, t *box.BoxType, n ast.Node) []ast.Node {
	var refs []ast.Node
	gather(n, &refs)
	for _, r := range refs {
		validate(pm, t, r)
	}
	return refs
}

// gatherAndValidateList is gatherAndValidate over a list, preserving order
// and flattening each element's refs.
func gatherAndValidateList(pm *path.Map, t *box.BoxType, list []ast.Node) []ast.Node {
	var out []ast.Node
	for _, n := range list {
		out = append(out, gatherAndValidate(pm, t, n)...)
	}
	return out
}
