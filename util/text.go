// util/text.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"iter"
	"strings"
)

// Given a string iterator and a base string, return two arrays of strings
// from the iterator that are respectively within one or two edits of the
// base string. // https://en.wikipedia.org/wiki/Levenshtein_distance
func SelectInTwoEdits(str string, seq iter.Seq[string], dist1, dist2 []string) ([]string, []string) {
	var cur, prev []int
	n := len(str)
	for str2 := range seq {
		if str == str2 {
			continue
		}

		n2 := len(str2)
		if n2+1 > len(cur) {
			cur = make([]int, n2+1)
			prev = make([]int, n2+1)
		}

		for i := range n2 + 1 {
			prev[i] = i
		}

		far := false
		for y := 1; y <= n; y++ {
			cur[0] = y
			rowBest := y

			for x := 1; x <= n2; x++ {
				cost := 0
				if str[y-1] != str2[x-1] {
					cost = 1
				}

				cur[x] = min(prev[x-1]+cost, min(cur[x-1], prev[x])+1)
				rowBest = min(rowBest, cur[x])
			}

			if rowBest > 2 {
				// The distance can only grow from here.
				far = true
				break
			}
			cur, prev = prev, cur
		}

		if far {
			continue
		}
		if prev[n2] == 1 {
			dist1 = append(dist1, str2)
		} else if prev[n2] == 2 {
			dist2 = append(dist2, str2)
		}
	}
	return dist1, dist2
}

// DidYouMean returns a suffix for an error message that suggests the
// closest of the given options to str, or an empty string if none of them
// are within two edits. Comparison is case-insensitive.
func DidYouMean(str string, options iter.Seq[string]) string {
	lower := func(yield func(string) bool) {
		for o := range options {
			if !yield(strings.ToLower(o)) {
				return
			}
		}
	}
	d1, d2 := SelectInTwoEdits(strings.ToLower(str), lower, nil, nil)
	if len(d1) == 0 {
		d1 = d2
	}
	switch len(d1) {
	case 0:
		return ""
	case 1:
		return " (did you mean " + `"` + d1[0] + `"?)`
	default:
		return ` (did you mean one of "` + strings.Join(d1, `", "`) + `"?)`
	}
}
