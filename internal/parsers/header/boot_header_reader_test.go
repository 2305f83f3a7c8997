package header

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-bootimg/internal/testutil"
	"github.com/deploymenttheory/go-bootimg/internal/types"
)

func TestBootHeaderReader(t *testing.T) {
	t.Run("fields are returned correctly", func(t *testing.T) {
		hdr := testutil.DefaultHeader(2048)
		hdr.KernelSize = 100
		hdr.RamdiskSize = 200
		hdr.SecondSize = 300
		hdr.DeviceTreeSize = 400

		reader := NewBootHeaderReader(&hdr)

		assert.True(t, reader.HasValidMagic())
		assert.Same(t, &hdr, reader.Header())
		assert.Equal(t, uint32(100), reader.KernelSize())
		assert.Equal(t, uint32(200), reader.RamdiskSize())
		assert.Equal(t, uint32(300), reader.SecondSize())
		assert.Equal(t, uint32(400), reader.DeviceTreeSize())
		assert.Equal(t, uint32(2048), reader.PageSize())
		assert.Equal(t, uint32(0x10008000), reader.KernelAddress())
		assert.Equal(t, uint32(0x11000000), reader.RamdiskAddress())
		assert.Equal(t, uint32(0x100f0000), reader.SecondAddress())
		assert.Equal(t, uint32(0x10000100), reader.TagsAddress())
	})

	t.Run("strings stop at the first NUL", func(t *testing.T) {
		hdr := testutil.DefaultHeader(2048)
		reader := NewBootHeaderReader(&hdr)

		assert.Equal(t, "SRPOI17A000KU", reader.ProductName())
		assert.Equal(t, "console=ttySAC2,115200 androidboot.selinux=enforcing", reader.Cmdline())
	})

	t.Run("unterminated strings use the full field", func(t *testing.T) {
		var hdr types.BootImgHdrT
		for i := range hdr.ProductName {
			hdr.ProductName[i] = 'a'
		}
		reader := NewBootHeaderReader(&hdr)
		assert.Len(t, reader.ProductName(), types.BootProductNameSize)
		assert.Equal(t, "", reader.Cmdline())
	})

	t.Run("image id is stable and derived from the unique id", func(t *testing.T) {
		a := testutil.DefaultHeader(2048)
		b := testutil.DefaultHeader(4096)
		c := testutil.DefaultHeader(2048)
		c.UniqueID[0] ^= 0xFF

		idA := NewBootHeaderReader(&a).ImageID()
		idB := NewBootHeaderReader(&b).ImageID()
		idC := NewBootHeaderReader(&c).ImageID()

		assert.Equal(t, idA, idB)
		assert.NotEqual(t, idA, idC)
		assert.Equal(t, uuid.Version(5), idA.Version())
	})

	t.Run("unique id is a copy", func(t *testing.T) {
		hdr := testutil.DefaultHeader(2048)
		reader := NewBootHeaderReader(&hdr)

		id := reader.UniqueID()
		id[0] = 0
		require.NotEqual(t, id, hdr.UniqueID)
	})
}
