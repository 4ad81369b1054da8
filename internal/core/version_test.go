package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"update-vendor-files/internal/types"
)

// ---------------------------------------------------------------------------
// ParseVersionOrder
// ---------------------------------------------------------------------------

func TestParseVersionOrder(t *testing.T) {
	tests := []struct {
		input string
		want  types.VersionOrder
	}{
		{"", types.VersionOrderNumeric},
		{"lexical", types.VersionOrderLexical},
		{"NUMERIC", types.VersionOrderNumeric},
		{" pep440 ", types.VersionOrderPep440},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersionOrder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionOrderInvalid(t *testing.T) {
	_, err := ParseVersionOrder("semver")
	require.Error(t, err)
	assert.True(t, errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument)
}

// ---------------------------------------------------------------------------
// versionCache.compare
// ---------------------------------------------------------------------------

func TestVersionCacheCompareNumeric(t *testing.T) {
	cache := newVersionCache(types.VersionOrderNumeric)

	assert.Equal(t, -1, cache.compare("1.9.0", "1.10.0"))
	assert.Equal(t, 0, cache.compare("1.2.4", "1.2.4"))
	assert.Equal(t, 1, cache.compare("2.0.0", "1.99.99"))
}

func TestVersionCacheComparePep440(t *testing.T) {
	cache := newVersionCache(types.VersionOrderPep440)

	assert.Equal(t, -1, cache.compare("1.9.0", "1.10.0"))
	assert.Equal(t, 0, cache.compare("1.2.4", "1.2.4"))
}

func TestVersionCacheCompareLexical(t *testing.T) {
	cache := newVersionCache(types.VersionOrderLexical)

	assert.Equal(t, 1, cache.compare("1.9.0", "1.10.0"))
	assert.Equal(t, -1, cache.compare("1.1.2", "1.2.4"))
}

func TestVersionCacheCompareInvalidFallsBackToLexical(t *testing.T) {
	cache := newVersionCache(types.VersionOrderPep440)
	assert.Equal(t, 1, cache.compare("not-a-version!!!", "1.0.0"))
}

// ---------------------------------------------------------------------------
// MaxVersion
// ---------------------------------------------------------------------------

func TestMaxVersion(t *testing.T) {
	available := []string{"1.9.0", "1.10.0", "1.2.4"}

	assert.Equal(t, "1.9.0", MaxVersion(types.VersionOrderLexical, available))
	assert.Equal(t, "1.10.0", MaxVersion(types.VersionOrderNumeric, available))
	assert.Equal(t, "1.10.0", MaxVersion(types.VersionOrderPep440, available))
	assert.Equal(t, "", MaxVersion(types.VersionOrderNumeric, nil))
}
