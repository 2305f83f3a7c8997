package unpack

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/deploymenttheory/go-bootimg/internal/device"
	"github.com/deploymenttheory/go-bootimg/internal/services"
	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Handle unpacks the selected regions of a boot image. Every selected region
// is attempted; when any of them fails the response is still returned along
// with an error aggregating the failures.
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	img, err := app.OpenImage(ctx, &req.Target)
	if err != nil {
		return nil, err
	}
	layout := img.Layout
	hdr := img.Header
	img.Close()

	ctx.Console.Status("Parsed", "header.")

	response := &Response{
		ImagePath: req.Target.ImagePath,
		ImageID:   hdr.ImageID().String(),
		PageSize:  layout.PageSize,
		Results:   []Result{},
	}

	jobs := req.selection(layout)
	if len(jobs) == 0 {
		ctx.Console.Warn("No sections extracted, as no sections were requested to be extracted.")
		return response, nil
	}
	if err := req.checkDestinations(jobs); err != nil {
		return nil, err
	}

	ctx.Log(fmt.Sprintf("Unpacking %d sections with %d jobs", len(jobs), req.Jobs))

	response.Results = make([]Result, len(jobs))
	dirs := newDirCreator(ctx.Console)

	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(req.Jobs)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				response.Results[i] = failRegion(ctx, req, newResult(layout, j), err)
				return nil
			}
			response.Results[i] = unpackRegion(ctx, req, layout, j, dirs)
			return nil
		})
	}
	_ = g.Wait()

	var failures *multierror.Error
	for _, res := range response.Results {
		if res.err != nil {
			failures = multierror.Append(failures, res.err)
		}
	}

	if req.ManifestPath != "" {
		if err := WriteManifest(req.ManifestPath, newManifest(response, hdr.ProductName())); err != nil {
			failures = multierror.Append(failures, err)
		} else {
			response.Manifest = req.ManifestPath
			ctx.Console.Status("Wrote", "manifest '%s'.", req.ManifestPath)
		}
	}

	if failures != nil {
		failures.ErrorFormat = joinErrors
		return response, app.NewError(app.ErrCodeExtraction,
			fmt.Sprintf("failed to unpack %d of %d sections", failedCount(response), len(jobs)), failures.ErrorOrNil())
	}
	return response, nil
}

func newResult(layout *types.Layout, j job) Result {
	res := Result{Kind: j.kind, Path: j.path}
	if region, ok := layout.Region(j.kind); ok {
		res.Offset = region.Offset
	}
	return res
}

// unpackRegion copies one region through its own file handle
func unpackRegion(ctx *app.Context, req *Request, layout *types.Layout, j job, dirs *dirCreator) Result {
	res := newResult(layout, j)

	dev, err := device.OpenImage(req.Target.ImagePath)
	if err != nil {
		return failRegion(ctx, req, res, err)
	}
	defer dev.Close()

	out := newLazyFile(j.path, dirs.ensure)
	digest := sha256.New()

	n, err := services.Extract(dev, layout, j.kind, io.MultiWriter(out, digest))
	if err != nil {
		out.Discard()
		return failRegion(ctx, req, res, err)
	}
	if err := out.Close(); err != nil {
		out.Discard()
		return failRegion(ctx, req, res, err)
	}

	res.Size = n
	res.SHA256 = hex.EncodeToString(digest.Sum(nil))

	ctx.Console.Status("Unpacked", "'%s' section into '%s'.", j.kind, j.path)
	ctx.Logger.Debug().
		Str("section", j.kind.String()).
		Uint64("offset", res.Offset).
		Int64("size", n).
		Str("sha256", res.SHA256).
		Int64("bytes_read", dev.Stats().BytesRead()).
		Msg("unpacked section")
	return res
}

func failRegion(ctx *app.Context, req *Request, res Result, err error) Result {
	res.err = fmt.Errorf("'%s' section: %w", res.Kind, err)
	res.Error = err.Error()
	ctx.Console.WarnError(fmt.Sprintf("Failed to unpack '%s' section from boot image '%s'", res.Kind, req.Target.ImagePath), err)
	return res
}

func failedCount(resp *Response) int {
	n := 0
	for _, res := range resp.Results {
		if !res.Succeeded() {
			n++
		}
	}
	return n
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
