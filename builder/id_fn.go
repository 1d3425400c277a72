// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// id_fn.go - vertex labeling schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label.
type IDFn func(idx int) string

// DefaultIDFn labels vertices "0", "1", ... matching core.NewGraph.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn labels vertices "A".."Z", then "AA", "AB", ... (spreadsheet
// column order). Panics on a negative index.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+decimal index, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
