package gtfs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

const (
	// CalendarFile holds the weekly service patterns of a feed.
	CalendarFile = "calendar.txt"
	// CalendarDatesFile holds the per-date service overrides of a feed.
	CalendarDatesFile = "calendar_dates.txt"
)

var (
	// ErrFileNotFound is returned when opening a file that is not part of the feed.
	ErrFileNotFound = errors.New("file not found in feed")
)

// Source gives access to the files of a GTFS dataset.
type Source interface {
	// Has reports whether the named file is part of the dataset.
	Has(name string) bool
	// Open returns the contents of the named file.
	Open(name string) (io.ReadCloser, error)
	// Location describes where the named file lives, for logs and errors.
	Location(name string) string

	io.Closer
}

// OpenSource opens a dataset stored either as a directory or as a zip archive.
func OpenSource(p string) (Source, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return NewDirSource(p), nil
	}
	return OpenZipSource(p)
}

// DirSource is a dataset extracted into a directory.
type DirSource struct {
	path string
}

// NewDirSource creates a source reading files from the supplied directory.
func NewDirSource(p string) *DirSource {
	return &DirSource{
		path: p,
	}
}

// Has reports whether the named regular file exists in the directory.
func (ds *DirSource) Has(name string) bool {
	info, err := os.Stat(ds.Location(name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Open opens the named file in the directory.
func (ds *DirSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(ds.Location(name))
}

// Location is the path of the named file.
func (ds *DirSource) Location(name string) string {
	return filepath.Join(ds.path, name)
}

// Close is a no-op for directories.
func (ds *DirSource) Close() error {
	return nil
}

// ZipSource is a dataset packaged as a zip archive, the usual way feeds are published.
type ZipSource struct {
	path  string
	rc    *zip.ReadCloser
	files map[string]*zip.File
}

// OpenZipSource opens the archive at the supplied path.
func OpenZipSource(p string) (*ZipSource, error) {
	rc, err := zip.OpenReader(p)
	if err != nil {
		return nil, err
	}

	zs := &ZipSource{
		path:  p,
		rc:    rc,
		files: map[string]*zip.File{},
	}

	// Only files at the root of the archive belong to the dataset.
	for _, zf := range rc.File {
		if zf.FileInfo().IsDir() || strings.Contains(strings.TrimSuffix(zf.Name, "/"), "/") {
			continue
		}
		zs.files[zf.Name] = zf
	}
	return zs, nil
}

// Has reports whether the archive contains the named file.
func (zs *ZipSource) Has(name string) bool {
	_, ok := zs.files[name]
	return ok
}

// Open decompresses the named file.
func (zs *ZipSource) Open(name string) (io.ReadCloser, error) {
	zf, ok := zs.files[name]
	if !ok {
		return nil, ErrFileNotFound
	}
	return zf.Open()
}

// Location is the archive path followed by the member name.
func (zs *ZipSource) Location(name string) string {
	return filepath.Join(zs.path, name)
}

// Close releases the archive.
func (zs *ZipSource) Close() error {
	return zs.rc.Close()
}
