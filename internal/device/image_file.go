package device

import (
	"fmt"
	"os"
	"sync"

	"github.com/deploymenttheory/go-bootimg/internal/interfaces"
)

// ImageFile provides positioned and sequential access to a boot image file.
// Each ImageFile owns its own file handle, so independent readers never share
// a seek position.
type ImageFile struct {
	file  *os.File
	path  string
	size  int64
	stats *ImageStatistics
}

// ImageStatistics tracks image access statistics
type ImageStatistics struct {
	readCalls int64
	bytesRead int64
	seeks     int64
	mu        sync.RWMutex
}

// OpenImage opens a boot image file for reading
func OpenImage(path string) (*ImageFile, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("image path %s is a directory", path)
	}

	return &ImageFile{
		file:  file,
		path:  path,
		size:  stat.Size(),
		stats: &ImageStatistics{},
	}, nil
}

// Read implements io.Reader
func (f *ImageFile) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	f.stats.record(n)
	return n, err
}

// ReadAt implements io.ReaderAt
func (f *ImageFile) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.file.ReadAt(p, off)
	f.stats.record(n)
	return n, err
}

// Seek implements io.Seeker
func (f *ImageFile) Seek(offset int64, whence int) (int64, error) {
	f.stats.mu.Lock()
	f.stats.seeks++
	f.stats.mu.Unlock()
	return f.file.Seek(offset, whence)
}

// Size returns the size of the image file in bytes at open time
func (f *ImageFile) Size() int64 {
	return f.size
}

// Path returns the path the image was opened from
func (f *ImageFile) Path() string {
	return f.path
}

// Stats returns the access statistics of this handle
func (f *ImageFile) Stats() *ImageStatistics {
	return f.stats
}

// Close closes the image file
func (f *ImageFile) Close() error {
	if f.file != nil {
		return f.file.Close()
	}
	return nil
}

var (
	_ interfaces.ImageSource     = (*ImageFile)(nil)
	_ interfaces.ImageSourceInfo = (*ImageFile)(nil)
)

func (s *ImageStatistics) record(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readCalls++
	s.bytesRead += int64(n)
}

// ReadCalls returns the number of read calls issued
func (s *ImageStatistics) ReadCalls() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readCalls
}

// BytesRead returns the total number of bytes read
func (s *ImageStatistics) BytesRead() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bytesRead
}

// Seeks returns the number of seek calls issued
func (s *ImageStatistics) Seeks() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeks
}
