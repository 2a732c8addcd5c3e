// util/compress.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"golang.org/x/exp/constraints"
)

// DeltaEncodeRef encodes next element-wise relative to ref. Successive
// frames of an instrument issue mostly the same commands with mostly the
// same arguments, so the result is largely zeros and compresses well.
// Elements of next past the end of ref are stored as is.
func DeltaEncodeRef[T constraints.Integer](ref, next []T) []T {
	if len(next) == 0 {
		return nil
	}

	delta := make([]T, len(next))
	for i := range next {
		if i < len(ref) {
			delta[i] = next[i] - ref[i]
		} else {
			delta[i] = next[i]
		}
	}
	return delta
}

func DeltaDecodeRef[T constraints.Integer](ref, delta []T) []T {
	if len(delta) == 0 {
		return nil
	}

	r := make([]T, len(delta))
	for i := range delta {
		if i < len(ref) {
			r[i] = ref[i] + delta[i]
		} else {
			r[i] = delta[i]
		}
	}
	return r
}
