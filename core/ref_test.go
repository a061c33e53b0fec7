package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/locograph/core"
)

func TestRef_ByIndexResolvesWithoutLookup(t *testing.T) {
	i, err := core.ByIndex(7).Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, i)
}

func TestRef_ByNameRequiresLookup(t *testing.T) {
	_, err := core.ByName("geneA").Resolve(nil)
	assert.ErrorIs(t, err, core.ErrNoLookup)
}

func TestRef_ByNameMissing(t *testing.T) {
	lk := core.NameList([]string{"geneA", "geneB"})
	_, err := core.ByName("geneZ").Resolve(lk)
	assert.ErrorIs(t, err, core.ErrNameNotFound)
}

func TestRef_ZeroValueIsIndexZero(t *testing.T) {
	var r core.Ref
	i, err := r.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestNameList_PositionalResolution(t *testing.T) {
	lk := core.NameList([]string{"geneA", "geneB", "geneC"})

	i, err := core.ByName("geneB").Resolve(lk)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	// reverse direction
	s, ok := lk.NameOf(2)
	assert.True(t, ok)
	assert.Equal(t, "geneC", s)

	_, ok = lk.NameOf(3)
	assert.False(t, ok)
	_, ok = lk.NameOf(-1)
	assert.False(t, ok)
}

func TestNameList_DuplicatesResolveToFirst(t *testing.T) {
	lk := core.NameList([]string{"x", "x", "y"})
	i, ok := lk.IndexOf("x")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestNameIndex_AssociativeResolution(t *testing.T) {
	lk := core.NameIndex(map[string]int{"alpha": 4, "beta": 9})

	i, err := core.ByName("beta").Resolve(lk)
	require.NoError(t, err)
	assert.Equal(t, 9, i)

	s, ok := lk.NameOf(4)
	assert.True(t, ok)
	assert.Equal(t, "alpha", s)

	_, ok = lk.NameOf(0)
	assert.False(t, ok)
}

func TestRef_String(t *testing.T) {
	assert.Equal(t, "5", core.ByIndex(5).String())
	assert.Equal(t, `"geneA"`, core.ByName("geneA").String())
}
