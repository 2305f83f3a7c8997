package app

import (
	"fmt"

	"github.com/deploymenttheory/go-bootimg/internal/services"
	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// ImageTarget represents boot image selection across commands
type ImageTarget struct {
	ImagePath string
	// PageSize overrides the header page size when non-nil
	PageSize       *uint32
	SkipMagicCheck bool
}

// Validate ensures the image target is valid
func (t *ImageTarget) Validate() error {
	if t.ImagePath == "" {
		return NewError(ErrCodeInvalidInput, "image path is required", nil)
	}
	if t.PageSize != nil && *t.PageSize == 0 {
		return NewError(ErrCodeInvalidInput, "invalid page size override", &types.InvalidPageSizeError{Value: 0})
	}
	return nil
}

// ReadOptions converts the target into reader options
func (t *ImageTarget) ReadOptions() services.ReadOptions {
	return services.ReadOptions{
		PageSize:       t.PageSize,
		SkipMagicCheck: t.SkipMagicCheck,
	}
}

// String returns a string representation of the image target
func (t *ImageTarget) String() string {
	s := "Image: " + t.ImagePath
	if t.PageSize != nil {
		s += fmt.Sprintf(" (page size override: %d)", *t.PageSize)
	}
	return s
}

// OpenImage opens and parses the target boot image, reporting progress on the
// context's console
func OpenImage(ctx *Context, t *ImageTarget) (*services.BootImage, error) {
	ctx.Log(t.String())
	if t.SkipMagicCheck {
		ctx.Console.Warn("Skipping header magic check.")
	}

	img, err := services.OpenBootImage(t.ImagePath, t.ReadOptions())
	if err != nil {
		return nil, NewError(OpenErrorCode(err), fmt.Sprintf("could not read boot image from '%s'", t.ImagePath), err)
	}

	ctx.Logger.Debug().
		Uint32("page_size", img.Layout.PageSize).
		Int("regions", len(img.Layout.Regions)).
		Str("image_id", img.Header.ImageID().String()).
		Msg("parsed header")
	return img, nil
}
