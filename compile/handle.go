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

// handleTable allocates handles lazily, keyed by the identity of the
// *original* user node, never the annotated node it produces (handles must
// be stable across a rebase of the annotated tree through a fresh input).
type handleTable struct {
	next int
	m    map[ast.Node]box.Handle
}

func newHandleTable() *handleTable {
	return &handleTable{m: map[ast.Node]box.Handle{}}
}

// make returns q's handle, allocating a fresh one on first use.
func (h *handleTable) make(q ast.Node) box.Handle {
	if q == nil {
		return 0
	}
	if hv, ok := h.m[q]; ok {
		return hv
	}
	h.next++
	hv := box.Handle(h.next)
	h.m[q] = hv
	return hv
}

// lookup returns q's handle if one was ever allocated, else 0.
func (h *handleTable) lookup(q ast.Node) box.Handle {
	if q == nil {
		return 0
	}
	return h.m[q]
}

// getHandle translates an annotated node back to the original user node via
// the path map's origin record, then looks up its handle. Returns 0 if the
// annotated node has no recorded origin or no handle was ever allocated for
// it — both mean "not outer-referenced".
func getHandle(pm *path.Map, ht *handleTable, annotated ast.Node) box.Handle {
	user, ok := pm.UserNodeOf(annotated)
	if !ok {
		return 0
	}
	return ht.lookup(user)
}
