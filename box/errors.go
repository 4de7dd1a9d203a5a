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

import goerrors "gopkg.in/src-d/go-errors.v1"

// Error kinds: every compile-time failure the middle end can raise is one
// of these, constructed with .New(args...) and matched with .Is(err).
var (
	// ErrIllFormed is raised when the annotator sees a node in an
	// impossible context: a scalar-only node in tabular position, a
	// tabular node with a non-tabular Over, or an unrecognised node kind.
	ErrIllFormed = goerrors.NewKind("ill-formed query: %s")

	// ErrUndefinedName is raised when a Get or NameBound step names a
	// field absent from the row type it navigates.
	ErrUndefinedName = goerrors.NewKind("undefined name: %s")

	// ErrUndefinedHandle is raised when a HandleBound addresses a handle
	// absent from the enclosing box's handle map (the outer tabular node
	// it names has gone out of scope).
	ErrUndefinedHandle = goerrors.NewKind("undefined handle reference")

	// ErrUnexpectedScalarType is raised when a NameBound chain continues
	// navigating into a field that is a plain column, not a nested row.
	ErrUnexpectedScalarType = goerrors.NewKind("expected a nested row at %s, found a column")

	// ErrUnexpectedRowType is raised when a terminal Get names a field
	// that is a nested row (produced by As), not a plain column.
	ErrUnexpectedRowType = goerrors.NewKind("expected a column at %s, found a nested row")

	// ErrAmbiguousName is raised when validation reaches a field whose
	// type is AmbiguousType: two join or append branches disagree about
	// what that name means.
	ErrAmbiguousName = goerrors.NewKind("ambiguous name: %s")

	// ErrAmbiguousHandle is raised when a HandleBound addresses a handle
	// whose handle-map entry is AmbiguousType (two branches both claim to
	// expose that outer tabular node).
	ErrAmbiguousHandle = goerrors.NewKind("ambiguous handle reference")

	// ErrAmbiguousAggregate is raised when an Agg validates against a
	// RowType whose group slot is AmbiguousType.
	ErrAmbiguousAggregate = goerrors.NewKind("ambiguous aggregate reference")

	// ErrUnexpectedAggregate is raised when an Agg is used with no
	// enclosing Group or Partition in scope (the row type's group slot is
	// EmptyType).
	ErrUnexpectedAggregate = goerrors.NewKind("aggregate used with no enclosing group or partition in scope")
)
