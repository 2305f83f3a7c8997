package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-bootimg/internal/testutil"
	"github.com/deploymenttheory/go-bootimg/internal/types"
)

func TestList(t *testing.T) {
	_, l := createTestImage(t, testutil.SampleSpec(2048))

	entries := List(l)
	assert.Equal(t, []types.RegionEntry{
		{Kind: types.RegionHeader, Offset: 0, Size: types.BootHeaderSize},
		{Kind: types.RegionKernel, Offset: 2048, Size: 5000},
		{Kind: types.RegionRamdisk, Offset: 2048 + 3*2048, Size: 3000},
		{Kind: types.RegionDeviceTree, Offset: 2048 + 3*2048 + 2*2048, Size: 256},
	}, entries)

	assert.Nil(t, List(nil))
}

func TestList_SkipsEmptyRegions(t *testing.T) {
	l := &types.Layout{
		PageSize: 2048,
		Regions: []types.Region{
			{Kind: types.RegionHeader, Offset: 0, Size: types.BootHeaderSize, PaddedSize: 2048},
			{Kind: types.RegionKernel, Offset: 2048, Size: 0, PaddedSize: 0},
			{Kind: types.RegionRamdisk, Offset: 2048, Size: 10, PaddedSize: 2048},
		},
	}

	entries := List(l)
	require.Len(t, entries, 2)
	assert.Equal(t, types.RegionHeader, entries[0].Kind)
	assert.Equal(t, types.RegionRamdisk, entries[1].Kind)
}
