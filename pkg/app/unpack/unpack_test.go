package unpack

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

func TestRequest_Validate(t *testing.T) {
	zero := uint32(0)

	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr bool
	}{
		{name: "valid", modify: func(r *Request) {}},
		{name: "missing image", modify: func(r *Request) { r.Target.ImagePath = "" }, wantErr: true},
		{name: "zero page size", modify: func(r *Request) { r.Target.PageSize = &zero }, wantErr: true},
		{name: "zero jobs", modify: func(r *Request) { r.Jobs = 0 }, wantErr: true},
		{name: "unpack all without dir", modify: func(r *Request) { r.UnpackAll = true; r.OutputDir = "" }, wantErr: true},
		{
			name: "duplicate destination",
			modify: func(r *Request) {
				r.Outputs[types.RegionKernel] = "out/a.img"
				r.Outputs[types.RegionRamdisk] = "out/../out/a.img"
			},
			wantErr: true,
		},
		{
			name:    "unknown region",
			modify:  func(r *Request) { r.Outputs[types.RegionKind(42)] = "x.img" },
			wantErr: true,
		},
		{
			name: "manifest collides",
			modify: func(r *Request) {
				r.Outputs[types.RegionKernel] = "out/kernel.img"
				r.ManifestPath = "out/kernel.img"
			},
			wantErr: true,
		},
		{
			name:   "empty selection is valid",
			modify: func(r *Request) { r.Outputs = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createTestRequest("boot.img")
			tt.modify(req)

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
		})
	}
}

func TestRequest_Selection(t *testing.T) {
	layout := &types.Layout{
		PageSize: 2048,
		Regions: []types.Region{
			{Kind: types.RegionHeader, Offset: 0, Size: 616, PaddedSize: 2048},
			{Kind: types.RegionKernel, Offset: 2048, Size: 10, PaddedSize: 2048},
			{Kind: types.RegionDeviceTree, Offset: 4096, Size: 10, PaddedSize: 2048},
		},
	}

	t.Run("explicit only", func(t *testing.T) {
		req := createTestRequest("boot.img")
		req.Outputs[types.RegionSecondStage] = "s.img"
		req.Outputs[types.RegionKernel] = "k.img"
		req.Outputs[types.RegionRamdisk] = ""

		assert.Equal(t, []job{
			{kind: types.RegionKernel, path: "k.img"},
			{kind: types.RegionSecondStage, path: "s.img"},
		}, req.selection(layout), "absent but requested regions stay selected")
	})

	t.Run("unpack all", func(t *testing.T) {
		req := createTestRequest("boot.img")
		req.UnpackAll = true
		req.OutputDir = "out"
		req.Outputs[types.RegionDeviceTree] = "dtb"

		assert.Equal(t, []job{
			{kind: types.RegionKernel, path: filepath.Join("out", "kernel.img")},
			{kind: types.RegionDeviceTree, path: "dtb"},
		}, req.selection(layout))
	})

	t.Run("nothing", func(t *testing.T) {
		assert.Empty(t, createTestRequest("boot.img").selection(layout))
	})
}

func TestLazyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("no write creates nothing", func(t *testing.T) {
		path := filepath.Join(dir, "empty", "a.img")
		f := newLazyFile(path, func(d string) error { return os.MkdirAll(d, 0o755) })

		n, err := f.Write(nil)
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, f.Close())
		assert.False(t, f.Created())
		assert.NoDirExists(t, filepath.Join(dir, "empty"))
	})

	t.Run("first write creates", func(t *testing.T) {
		path := filepath.Join(dir, "sub", "b.img")
		f := newLazyFile(path, func(d string) error { return os.MkdirAll(d, 0o755) })

		_, err := f.Write([]byte("abc"))
		require.NoError(t, err)
		_, err = f.Write([]byte("def"))
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.True(t, f.Created())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "abcdef", string(got))

		_, err = f.Write([]byte("x"))
		assert.ErrorIs(t, err, os.ErrClosed)
	})

	t.Run("discard removes", func(t *testing.T) {
		path := filepath.Join(dir, "c.img")
		f := newLazyFile(path, nil)

		_, err := f.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, f.Discard())
		assert.NoFileExists(t, path)
	})

	t.Run("mkdir failure", func(t *testing.T) {
		f := newLazyFile(filepath.Join(dir, "d", "e.img"), func(string) error { return errors.New("read-only") })
		_, err := f.Write([]byte("x"))
		assert.Error(t, err)
		assert.False(t, f.Created())
	})
}

func TestDirCreator(t *testing.T) {
	var stderr bytes.Buffer
	d := newDirCreator(app.NewConsole(&stderr, true, false))
	root := t.TempDir()

	target := filepath.Join(root, "x", "y")
	require.NoError(t, d.ensure(target))
	require.NoError(t, d.ensure(target))
	assert.DirExists(t, target)
	assert.Equal(t, "     Created directory '"+target+"'.\n", stderr.String())

	stderr.Reset()
	require.NoError(t, d.ensure(root), "existing directories are not reported")
	require.NoError(t, d.ensure("."))
	assert.Empty(t, stderr.String())

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, d.ensure(file))
}

func createTestResponse() *Response {
	return &Response{
		ImagePath: "boot.img",
		ImageID:   "0b6f6a3c-3f0e-5d7e-9a1b-2c3d4e5f6a7b",
		PageSize:  2048,
		Results: []Result{
			{Kind: types.RegionKernel, Path: "boot/kernel.img", Offset: 0x800, Size: 5564416, SHA256: "aa11"},
			{Kind: types.RegionSecondStage, Path: "boot/second.img", Error: "region second_stage is absent", err: types.ErrRegionAbsent},
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
				assert.Contains(t, output, "SECTION")
				assert.Contains(t, output, "0x00000800")
				assert.Contains(t, output, "5.3 MiB")
				assert.Contains(t, output, "boot/kernel.img")
				assert.Contains(t, output, "failed")
			},
		},
		{
			name:   "json format",
			format: "json",
			validate: func(t *testing.T, output string) {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(output), &decoded))
				results := decoded["results"].([]interface{})
				require.Len(t, results, 2)
				assert.Equal(t, "kernel", results[0].(map[string]interface{})["kind"])
				assert.NotContains(t, results[0], "error")
				assert.Equal(t, "region second_stage is absent", results[1].(map[string]interface{})["error"])
			},
		},
		{
			name:   "yaml format",
			format: "yaml",
			validate: func(t *testing.T, output string) {
				assert.Contains(t, output, "image_id: 0b6f6a3c-3f0e-5d7e-9a1b-2c3d4e5f6a7b")
				assert.Contains(t, output, "kind: second_stage")
			},
		},
		{name: "unsupported", format: "csv", wantErr: true},
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

func TestFormatOutput_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, &Response{}, "table"))
	assert.Empty(t, buf.String())
}
