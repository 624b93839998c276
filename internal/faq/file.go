package faq

import (
	"backend-faq/internal/models"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed data/faqs.json
var embedded embed.FS

const defaultDataFile = "data/faqs.json"

// FileSource membaca dataset dari file JSON statis
type FileSource struct {
	fsys     fs.FS
	name     string
	defaults Defaults
}

func NewFileSource(fsys fs.FS, name string, defaults Defaults) *FileSource {
	return &FileSource{fsys: fsys, name: name, defaults: defaults}
}

// NewDefaultSource - dataset bawaan yang di-embed ke binary
func NewDefaultSource(defaults Defaults) *FileSource {
	return NewFileSource(embedded, defaultDataFile, defaults)
}

// OpenFile - dataset dari path di disk, dibaca ulang setiap Load
func OpenFile(path string, defaults Defaults) *FileSource {
	return NewFileSource(os.DirFS(filepath.Dir(path)), filepath.Base(path), defaults)
}

func (s *FileSource) Load(ctx context.Context) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("faq: read %s: %w", s.name, err)
	}

	return Decode(data, s.defaults)
}
