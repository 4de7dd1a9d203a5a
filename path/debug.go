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

package path

import (
	"fmt"
	"strings"

	"github.com/dolthub-relbox/relbox/ast"
)

// FormatTrace renders a leaf-first node path (as returned by PathOf or
// CurrentPath) as an indented, human-readable traceback for error messages
// and failing-test output, innermost node first.
func FormatTrace(nodes []ast.Node) string {
	if len(nodes) == 0 {
		return "(no path recorded)"
	}
	var b strings.Builder
	for i, n := range nodes {
		fmt.Fprintf(&b, "%s%T\n", strings.Repeat("  ", i), n)
	}
	return b.String()
}

// Trace is a convenience wrapper combining PathOf with FormatTrace, for
// building an error message directly from an annotated node.
func (m *Map) Trace(n ast.Node) string {
	return FormatTrace(m.PathOf(n))
}
