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

// Package similarname suggests a likely-intended name when a lookup fails,
// for undefined-name error messages ("did you mean X?").
package similarname

// Find returns the candidate in names closest to name by Levenshtein
// distance, or "" if names is empty or nothing is within a reasonable edit
// distance of name.
func Find(names []string, name string) string {
	best := ""
	bestDist := -1
	threshold := maxThreshold(name)
	for _, c := range names {
		d := levenshtein(name, c)
		if d > threshold {
			continue
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// FindFromMap is Find over the keys of a map, for callers that already hold
// a name-keyed lookup table and don't want to materialize a slice first.
func FindFromMap(names map[string]int, name string) string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	return Find(keys, name)
}

// maxThreshold bounds how different a suggestion may be from the original:
// short names tolerate fewer edits than long ones, so "id" doesn't suggest
// "name".
func maxThreshold(name string) int {
	n := len(name)
	switch {
	case n <= 3:
		return 1
	case n <= 6:
		return 2
	default:
		return 3
	}
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
