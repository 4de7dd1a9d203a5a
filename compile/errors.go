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
	"strings"

	"github.com/dolthub-relbox/relbox/ast"
	"github.com/dolthub-relbox/relbox/path"
	"github.com/pkg/errors"
)

// CompileError is what Compile returns for any failure raised by one of the
// three passes: the underlying error kind (from package box, or an internal
// invariant violation wrapped with github.com/pkg/errors) plus the user
// node path that produced it.
type CompileError struct {
	Err  error
	Path []ast.Node
}

func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if len(e.Path) > 0 {
		b.WriteString("\n")
		b.WriteString(path.FormatTrace(e.Path))
	}
	return b.String()
}

// Cause supports github.com/pkg/errors-style unwrapping.
func (e *CompileError) Cause() error { return e.Err }

// Unwrap supports standard library errors.Is/errors.As.
func (e *CompileError) Unwrap() error { return e.Err }

// fail aborts the current pass by panicking with a CompileError. Passes
// recover this in Compile's deferred handler; it must never escape as a
// bare panic.
func fail(err error, trace []ast.Node) {
	panic(&CompileError{Err: err, Path: trace})
}

// errInternal wraps a message describing a broken invariant (a dispatch hit
// a node kind it should never see), distinct from the box package's
// user-facing error kinds.
func errInternal(msg string) error {
	return errors.New("internal invariant violated: " + msg)
}
