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

import "github.com/mitchellh/hashstructure"

// Fingerprint returns a stable hash of t's shape, for correlating row types
// across log lines without printing the whole structure. Two RowTypes with
// the same fields in the same order and the same field kinds hash equal.
func (r *RowType) Fingerprint() uint64 {
	type flat struct {
		Names []Symbol
		Kinds []string
		Group string
	}
	f := flat{Names: r.Fields()}
	for _, n := range f.Names {
		f.Kinds = append(f.Kinds, kindTag(r.fields[n]))
	}
	f.Group = kindTag(r.Group)
	h, err := hashstructure.Hash(f, nil)
	if err != nil {
		// hashstructure only fails on unsupported field kinds (channels,
		// funcs); flat contains neither, so this is unreachable.
		return 0
	}
	return h
}

// Fingerprint returns a stable hash of t's shape (name, row, and the shapes
// of its handle-map entries hashed as an unordered set, handles ignored),
// used by the rebase-idempotence test harness to compare two independently
// resolved BoxTypes without depending on map iteration or pointer identity.
func (t *BoxType) Fingerprint() uint64 {
	type flat struct {
		Name      Symbol
		RowFP     uint64
		HandleFPs []uint64
	}
	f := flat{Name: t.Name, RowFP: t.Row.Fingerprint()}
	for _, k := range t.HandleMap {
		f.HandleFPs = append(f.HandleFPs, kindFingerprint(k))
	}
	h, err := hashstructure.Hash(f, &hashstructure.HashOptions{SlicesAsSets: true})
	if err != nil {
		return 0
	}
	return h
}

func kindTag(k Kind) string {
	switch v := k.(type) {
	case ScalarType:
		return "scalar"
	case EmptyType:
		return "empty"
	case AmbiguousType:
		return "ambiguous"
	case *RowType:
		return "row"
	default:
		_ = v
		return "unknown"
	}
}

func kindFingerprint(k Kind) uint64 {
	if row, ok := k.(*RowType); ok {
		return row.Fingerprint()
	}
	h, _ := hashstructure.Hash(kindTag(k), nil)
	return h
}
