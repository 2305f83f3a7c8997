// File: internal/interfaces/image_source.go
package interfaces

import (
	"io"
)

// ImageSource provides read access to a boot image
type ImageSource interface {
	io.ReadSeeker
	io.ReaderAt
	io.Closer

	// Size returns the size of the image in bytes
	Size() int64
}

// ImageSourceInfo provides information about where an image came from
type ImageSourceInfo interface {
	// Path returns the path the image was opened from
	Path() string
}
