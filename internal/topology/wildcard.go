package topology

import "github.com/sarat-asymmetrica/ffcore/internal/ffcore"

// hasWildcard reports whether any position of key is the wildcard symbol.
func hasWildcard(key []string) bool {
	for _, t := range key {
		if t == ffcore.Wildcard {
			return true
		}
	}
	return false
}

// wildcardMatch reports whether key matches query position-wise: each
// position of key must equal the wildcard symbol or the corresponding
// position of query (spec.md §4.1 "Wildcard lookup").
func wildcardMatch(key, query []string) bool {
	for i := range key {
		if key[i] != ffcore.Wildcard && key[i] != query[i] {
			return false
		}
	}
	return true
}
