package services

import "sort"

// Scope set algebra. Scopes are plain strings; sets are represented as
// sorted, deduplicated slices so stored JSON is deterministic.

// normalizeScopes returns a sorted copy with duplicates and empties removed.
func normalizeScopes(scopes []string) []string {
	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// scopesSubset reports whether every scope in sub is present in super.
func scopesSubset(sub, super []string) bool {
	set := make(map[string]struct{}, len(super))
	for _, s := range super {
		set[s] = struct{}{}
	}
	for _, s := range sub {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// intersectScopes returns the sorted intersection of a and b.
func intersectScopes(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, s := range normalizeScopes(a) {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
