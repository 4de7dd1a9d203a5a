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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowTypeFingerprintStable(t *testing.T) {
	a := NewRowType()
	a.Set("x", ScalarType{})
	a.Set("y", ScalarType{})

	b := NewRowType()
	b.Set("x", ScalarType{})
	b.Set("y", ScalarType{})

	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "identically shaped RowTypes should fingerprint equal")
}

func TestRowTypeFingerprintOrderSensitive(t *testing.T) {
	a := NewRowType()
	a.Set("x", ScalarType{})
	a.Set("y", ScalarType{})

	b := NewRowType()
	b.Set("y", ScalarType{})
	b.Set("x", ScalarType{})

	require.NotEqual(t, a.Fingerprint(), b.Fingerprint(), "field order affects SELECT-list order and must affect the fingerprint")
}

func TestBoxTypeFingerprintStable(t *testing.T) {
	row := NewRowType()
	row.Set("id", ScalarType{})
	a := NewBoxType("t", row)
	b := NewBoxType("t", row.Clone())

	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "equivalent BoxTypes should fingerprint equal")
}
