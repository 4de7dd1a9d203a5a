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

package similarname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindExactPrefersClosest(t *testing.T) {
	names := []string{"customer_id", "customer_name", "order_id"}
	require.Equal(t, "customer_id", Find(names, "customer_Id"))
}

func TestFindNoCloseMatch(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	require.Empty(t, Find(names, "zzzzzzzzzz"), "expected no suggestion")
}

func TestFindEmpty(t *testing.T) {
	require.Empty(t, Find(nil, "anything"), "expected empty suggestion")
}

func TestFindFromMap(t *testing.T) {
	names := map[string]int{"region_id": 0, "region_name": 1}
	require.Equal(t, "region_id", FindFromMap(names, "region_ud"))
}

func TestShortNameTighterThreshold(t *testing.T) {
	names := []string{"name"}
	require.Empty(t, Find(names, "id"), "expected no suggestion for very different short name")
}
