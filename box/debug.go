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

import "gopkg.in/yaml.v3"

// debugRow is the YAML-friendly shape of a RowType, used only for
// diagnostic rendering by DebugYAML.
type debugRow struct {
	Fields map[string]string `yaml:"fields"`
	Order  []string          `yaml:"order"`
	Group  string             `yaml:"group,omitempty"`
}

func toDebugRow(r *RowType) debugRow {
	d := debugRow{Fields: map[string]string{}}
	for _, n := range r.Fields() {
		d.Order = append(d.Order, string(n))
		ft, _ := r.Get(n)
		if nested, ok := ft.(*RowType); ok {
			d.Fields[string(n)] = "row:" + nested.String()
			continue
		}
		d.Fields[string(n)] = kindTag(ft)
	}
	if _, ok := r.Group.(EmptyType); !ok {
		d.Group = kindTag(r.Group)
	}
	return d
}

// String gives RowType a compact, stable textual form for log fields and
// test failure messages ("{a:scalar b:scalar}" style), not meant for
// round-tripping.
func (r *RowType) String() string {
	out := "{"
	for i, n := range r.Fields() {
		if i > 0 {
			out += " "
		}
		ft, _ := r.Get(n)
		out += string(n) + ":" + kindTag(ft)
	}
	return out + "}"
}

// DebugYAML renders t as YAML for a failing test's diff output or an
// error-level log line, so a human reading either doesn't have to parse a
// Go %+v dump of nested maps and pointers.
func (t *BoxType) DebugYAML() ([]byte, error) {
	type debugBoxType struct {
		Name    string   `yaml:"name"`
		Row     debugRow `yaml:"row"`
		Handles []int    `yaml:"handles"`
	}
	d := debugBoxType{Name: string(t.Name), Row: toDebugRow(t.Row)}
	for h := range t.HandleMap {
		d.Handles = append(d.Handles, int(h))
	}
	return yaml.Marshal(d)
}
