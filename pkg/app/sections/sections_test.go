package sections

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-bootimg/internal/testutil"
	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

func createTestContext(t *testing.T) (*app.Context, *bytes.Buffer) {
	t.Helper()
	var stderr bytes.Buffer
	ctx := app.NewContext()
	ctx.Stdout = io.Discard
	ctx.Stderr = &stderr
	ctx.NoColor = true
	ctx.Configure()
	return ctx, &stderr
}

func TestHandle(t *testing.T) {
	ctx, _ := createTestContext(t)
	path := testutil.WriteImage(t, testutil.SampleSpec(2048))

	resp, err := Handle(ctx, &Request{Target: app.ImageTarget{ImagePath: path}})
	require.NoError(t, err)

	assert.Equal(t, path, resp.ImagePath)
	assert.Equal(t, uint32(2048), resp.PageSize)
	assert.Equal(t, []Section{
		{Kind: types.RegionHeader, Name: "Header", Offset: 0, Size: 616},
		{Kind: types.RegionKernel, Name: "Kernel", Offset: 0x800, Size: 5000},
		{Kind: types.RegionRamdisk, Name: "Ramdisk", Offset: 0x2000, Size: 3000},
		{Kind: types.RegionDeviceTree, Name: "Device Tree", Offset: 0x3000, Size: 256},
	}, resp.Regions)
}

func TestHandle_PageSize(t *testing.T) {
	ctx, _ := createTestContext(t)

	spec := testutil.SampleSpec(0)
	spec.LayoutPageSize = 2048
	path := testutil.WriteImage(t, spec)

	_, err := Handle(ctx, &Request{Target: app.ImageTarget{ImagePath: path}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownPageSize)
	assert.Equal(t, app.ErrCodeLayout, app.ErrorCode(err))

	override := uint32(2048)
	withOverride, err := Handle(ctx, &Request{Target: app.ImageTarget{ImagePath: path, PageSize: &override}})
	require.NoError(t, err)

	baked, err := Handle(ctx, &Request{Target: app.ImageTarget{ImagePath: testutil.WriteImage(t, testutil.SampleSpec(2048))}})
	require.NoError(t, err)
	assert.Equal(t, baked.Regions, withOverride.Regions, "override matches a header with the page size baked in")
}

func TestHandle_ErrorCases(t *testing.T) {
	zero := uint32(0)
	badMagic := testutil.SampleSpec(2048)
	copy(badMagic.Header.Magic[:], "NOTBOOT!")

	tests := []struct {
		name     string
		target   func(t *testing.T) app.ImageTarget
		wantCode string
	}{
		{
			name:     "missing path",
			target:   func(t *testing.T) app.ImageTarget { return app.ImageTarget{} },
			wantCode: app.ErrCodeInvalidInput,
		},
		{
			name: "zero page size",
			target: func(t *testing.T) app.ImageTarget {
				return app.ImageTarget{ImagePath: testutil.WriteImage(t, testutil.SampleSpec(2048)), PageSize: &zero}
			},
			wantCode: app.ErrCodeInvalidInput,
		},
		{
			name:     "missing file",
			target:   func(t *testing.T) app.ImageTarget { return app.ImageTarget{ImagePath: t.TempDir() + "/absent.img"} },
			wantCode: app.ErrCodeImageAccess,
		},
		{
			name: "bad magic",
			target: func(t *testing.T) app.ImageTarget {
				return app.ImageTarget{ImagePath: testutil.WriteImage(t, badMagic)}
			},
			wantCode: app.ErrCodeBadHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := createTestContext(t)
			resp, err := Handle(ctx, &Request{Target: tt.target(t)})
			assert.Nil(t, resp)
			assert.Equal(t, tt.wantCode, app.ErrorCode(err))
		})
	}
}

func TestHandle_SkipMagicCheck(t *testing.T) {
	ctx, stderr := createTestContext(t)
	spec := testutil.SampleSpec(2048)
	spec.Header.Magic = [8]byte{}

	resp, err := Handle(ctx, &Request{Target: app.ImageTarget{ImagePath: testutil.WriteImage(t, spec), SkipMagicCheck: true}})
	require.NoError(t, err)
	assert.Len(t, resp.Regions, 4)
	assert.Contains(t, stderr.String(), "warning: Skipping header magic check.")
}

func createTestResponse() *Response {
	return &Response{
		ImagePath: "boot.img",
		PageSize:  2048,
		Regions: []Section{
			{Kind: types.RegionHeader, Name: "Header", Offset: 0, Size: 616},
			{Kind: types.RegionKernel, Name: "Kernel", Offset: 0x800, Size: 5564416},
			{Kind: types.RegionRamdisk, Name: "Ramdisk", Offset: 0x54F000, Size: 4696064},
			{Kind: types.RegionDeviceTree, Name: "Device Tree", Offset: 0x9C9800, Size: 256},
		},
	}
}

func TestFormatOutput(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		validate func(*testing.T, string)
	}{
		{
			name:   "table format",
			format: "table",
			validate: func(t *testing.T, output string) {
				assert.Equal(t,
					"0x00000000 - Header         (size: 616 B)\n"+
						"0x00000800 - Kernel         (size: 5.3 MiB)\n"+
						"0x0054F000 - Ramdisk        (size: 4.5 MiB)\n"+
						"0x009C9800 - Device Tree    (size: 256 B)\n",
					output)
			},
		},
		{
			name:   "json format",
			format: "json",
			validate: func(t *testing.T, output string) {
				var decoded struct {
					PageSize uint32 `json:"page_size"`
					Regions  []struct {
						Kind   string `json:"kind"`
						Offset uint64 `json:"offset"`
						Size   uint64 `json:"size"`
					} `json:"regions"`
				}
				require.NoError(t, json.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, uint32(2048), decoded.PageSize)
				require.Len(t, decoded.Regions, 4)
				assert.Equal(t, "ramdisk", decoded.Regions[2].Kind)
				assert.Equal(t, uint64(0x54F000), decoded.Regions[2].Offset)
				assert.Equal(t, "device_tree", decoded.Regions[3].Kind)
			},
		},
		{
			name:   "yaml format",
			format: "yaml",
			validate: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
				assert.Equal(t, "boot.img", decoded["image"])
				assert.Contains(t, output, "kind: kernel")
				assert.Contains(t, output, "name: Device Tree")
			},
		},
		{
			name:    "unsupported format",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := FormatOutput(&buf, createTestResponse(), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, buf.String())
		})
	}
}

func TestFormatOutput_OmitsAbsentRegions(t *testing.T) {
	resp := createTestResponse()
	resp.Regions = resp.Regions[:2]

	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, resp, "table"))
	assert.NotContains(t, buf.String(), "Ramdisk")
	assert.NotContains(t, buf.String(), "Second Stage")
}
