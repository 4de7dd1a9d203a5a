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

// Package compile implements the three-pass middle end: annotation, type
// resolution, and reference linking, turning a user-authored operator tree
// into a fully boxed AnnotatedTree ready for SQL emission.
package compile

import (
	"context"

	"github.com/dolthub-relbox/relbox/ast"
	"github.com/sirupsen/logrus"
)

// AnnotatedTree is Compile's output: the annotated root box, plus every box
// in the tree in construction order (children before parents).
type AnnotatedTree struct {
	Root  *ast.Box
	Boxes []*ast.Box
}

// Compile runs the annotator, type resolver, and reference linker over
// root in order, returning the fully decorated tree or the first compile
// error encountered. cctx governs cancellation only; a nil context disables
// it. Pass a logger to capture the pass-by-pass trace at debug level, or
// nil to use logrus's standard logger.
func Compile(cctx context.Context, root ast.Node, logger *logrus.Logger) (tree *AnnotatedTree, err error) {
	c := NewContext(cctx, logger)

	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*CompileError)
			if !ok {
				panic(r)
			}
			c.Log().WithError(ce).Debug("compile failed")
			err = ce
			tree = nil
		}
	}()

	a := newAnnotator(c)
	rootBox := a.annotate(root)
	c.Log().WithField("boxes", len(a.boxes)).Debug("annotation complete")

	resolveTypes(c, a.pm, a.handles, a.boxes)
	c.Log().Debug("type resolution complete")

	linkRefs(c, a.pm, a.boxes)
	c.Log().Debug("reference linking complete")

	return &AnnotatedTree{Root: rootBox, Boxes: a.boxes}, nil
}
