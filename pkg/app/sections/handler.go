package sections

import (
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Handle lists the present regions of a boot image
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	img, err := app.OpenImage(ctx, &req.Target)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	entries := img.Regions()
	response := &Response{
		ImagePath: req.Target.ImagePath,
		PageSize:  img.Layout.PageSize,
		Regions:   make([]Section, 0, len(entries)),
	}
	for _, e := range entries {
		response.Regions = append(response.Regions, newSection(e))
	}

	return response, nil
}
