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

// Package path implements the annotation-context path map: a tree of
// user-visible positions the annotator walks, plus an identity-keyed index
// from annotated nodes back to the position that produced them, so an error
// raised deep in the middle end can still report a traceback through the
// user's own operator expressions.
package path

import "github.com/dolthub-relbox/relbox/ast"

type frame struct {
	node   ast.Node
	parent int
}

// Map is the annotator's path map and its current-path stack.
type Map struct {
	frames  []frame
	stack   []int
	origins map[ast.Node]int
}

// NewMap returns an empty Map with an empty current path.
func NewMap() *Map {
	return &Map{stack: []int{-1}, origins: map[ast.Node]int{}}
}

func (m *Map) top() int { return m.stack[len(m.stack)-1] }

// Grow appends node as a child of the current top-of-stack position and
// makes it the new top.
func (m *Map) Grow(node ast.Node) {
	idx := len(m.frames)
	m.frames = append(m.frames, frame{node: node, parent: m.top()})
	m.stack = append(m.stack, idx)
}

// Shrink pops the current top-of-stack position.
func (m *Map) Shrink() {
	m.stack = m.stack[:len(m.stack)-1]
}

// MarkOrigin records that annotated node n originated at the current
// position.
func (m *Map) MarkOrigin(n ast.Node) {
	m.origins[n] = m.top()
}

func (m *Map) pathFrom(idx int) []ast.Node {
	var out []ast.Node
	for idx != -1 {
		out = append(out, m.frames[idx].node)
		idx = m.frames[idx].parent
	}
	return out
}

// PathOf returns the list of user nodes from n's origin up to the root,
// leaf first. It returns nil if n has no recorded origin.
func (m *Map) PathOf(n ast.Node) []ast.Node {
	idx, ok := m.origins[n]
	if !ok {
		return nil
	}
	return m.pathFrom(idx)
}

// CurrentPath returns the list of user nodes from the current position up
// to the root, leaf first. Used while still inside a Grow/Shrink pair, for
// errors raised against the node being processed rather than against an
// already-produced annotated node.
func (m *Map) CurrentPath() []ast.Node {
	return m.pathFrom(m.top())
}

// UserNodeOf returns the user node that produced annotated node n, and
// whether n has a recorded origin at all.
func (m *Map) UserNodeOf(n ast.Node) (ast.Node, bool) {
	idx, ok := m.origins[n]
	if !ok || idx == -1 {
		return nil, false
	}
	return m.frames[idx].node, true
}
