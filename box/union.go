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

// Union combines two BoxTypes the way an ExtendedJoin does: every field
// present on either side survives, conflicts become AmbiguousType, and the
// handle maps are merged the same way. The resulting alias is taken from a
// (the left/over side), matching the convention that a join keeps its left
// side's default alias.
func Union(a, b *BoxType) *BoxType {
	out := NewBoxType(a.Name, unionRow(a.Row, b.Row))
	out.HandleMap = unionHandleMap(a.HandleMap, b.HandleMap)
	return out
}

// Intersect combines two BoxTypes the way Append does: only fields (and
// handles) present on every branch survive.
func Intersect(a, b *BoxType) *BoxType {
	out := NewBoxType(a.Name, intersectRow(a.Row, b.Row))
	out.HandleMap = intersectHandleMap(a.HandleMap, b.HandleMap)
	return out
}

func unionRow(a, b *RowType) *RowType {
	out := NewRowType()
	for _, n := range a.names {
		out.Set(n, a.fields[n])
	}
	for _, n := range b.names {
		if existing, ok := out.Get(n); ok {
			out.Set(n, unionKind(existing, b.fields[n]))
		} else {
			out.Set(n, b.fields[n])
		}
	}
	out.Group = unionKind(a.Group, b.Group)
	return out
}

func intersectRow(a, b *RowType) *RowType {
	out := NewRowType()
	for _, n := range a.names {
		bv, ok := b.Get(n)
		if !ok {
			continue
		}
		out.Set(n, intersectKind(a.fields[n], bv))
	}
	out.Group = intersectKind(a.Group, b.Group)
	return out
}

// unionKind implements EmptyType ⊔ X = X, RowType ⊔ RowType recursing, and
// any other combination of differing kinds yielding AmbiguousType.
func unionKind(a, b Kind) Kind {
	if _, ok := a.(EmptyType); ok {
		return b
	}
	if _, ok := b.(EmptyType); ok {
		return a
	}
	switch av := a.(type) {
	case ScalarType:
		if _, ok := b.(ScalarType); ok {
			return ScalarType{}
		}
	case *RowType:
		if bv, ok := b.(*RowType); ok {
			return unionRow(av, bv)
		}
	case AmbiguousType:
		return AmbiguousType{}
	}
	return AmbiguousType{}
}

// intersectKind implements EmptyType ⊓ X = EmptyType, RowType ⊓ RowType
// recursing, and any other combination of differing kinds yielding
// AmbiguousType.
func intersectKind(a, b Kind) Kind {
	if _, ok := a.(EmptyType); ok {
		return EmptyType{}
	}
	if _, ok := b.(EmptyType); ok {
		return EmptyType{}
	}
	switch av := a.(type) {
	case ScalarType:
		if _, ok := b.(ScalarType); ok {
			return ScalarType{}
		}
	case *RowType:
		if bv, ok := b.(*RowType); ok {
			return intersectRow(av, bv)
		}
	case AmbiguousType:
		return AmbiguousType{}
	}
	return AmbiguousType{}
}

func unionHandleMap(a, b map[Handle]Kind) map[Handle]Kind {
	out := CloneHandleMap(a)
	for h, kb := range b {
		if ka, ok := out[h]; ok {
			out[h] = unionKind(ka, kb)
		} else {
			out[h] = kb
		}
	}
	return out
}

func intersectHandleMap(a, b map[Handle]Kind) map[Handle]Kind {
	out := map[Handle]Kind{}
	for h, ka := range a {
		if kb, ok := b[h]; ok {
			out[h] = intersectKind(ka, kb)
		}
	}
	return out
}
