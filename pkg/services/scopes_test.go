package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeScopes(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, normalizeScopes([]string{"b", "a", "b", ""}))
	assert.Empty(t, normalizeScopes(nil))
}

func TestScopesSubset(t *testing.T) {
	super := []string{"docs.read", "docs.write"}
	assert.True(t, scopesSubset([]string{"docs.read"}, super))
	assert.True(t, scopesSubset(nil, super), "the empty set is a subset of anything")
	assert.False(t, scopesSubset([]string{"admin"}, super))
	assert.False(t, scopesSubset([]string{"docs.read"}, nil))
}

func TestIntersectScopes(t *testing.T) {
	assert.Equal(t, []string{"b"}, intersectScopes([]string{"b", "a"}, []string{"b", "c"}))
	assert.Empty(t, intersectScopes([]string{"a"}, []string{"b"}))
	assert.Empty(t, intersectScopes(nil, []string{"b"}))
}
