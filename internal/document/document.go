// Package document manages per-view copies of uploaded notice files. Each
// accepted upload is copied into a private temp dir so the original file
// can move or vanish while its analysis lives in history; releasing a
// handle removes the copy.
package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const pdfMIME = "application/pdf"

// ErrNotPDF marks a selection whose content is not a PDF document. Callers
// ignore these silently; nothing is surfaced to the user.
var ErrNotPDF = errors.New("document: not a PDF")

// Handle references one stored copy of an uploaded document.
type Handle struct {
	ID   string
	Name string // original base name, shown in the UI
	Path string // temp copy location
	Size int64

	once sync.Once
}

// Open returns a reader over the stored copy for viewing or upload.
func (h *Handle) Open() (*os.File, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("open document copy: %w", err)
	}
	return f, nil
}

// Release removes the temp copy. Safe to call more than once; history
// eviction and failed analyses both funnel through here.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if err := os.Remove(h.Path); err != nil && !os.IsNotExist(err) {
			slog.Warn("release document copy", "path", h.Path, "err", err)
		}
	})
}

// Store owns the temp dir holding document copies.
type Store struct {
	root string
}

// NewStore creates a store rooted at a fresh temp dir.
func NewStore() (*Store, error) {
	root, err := os.MkdirTemp("", "noticelens-docs-")
	if err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Import sniffs the file's content and, if it is a PDF, copies it into the
// store. Extension alone is not trusted.
func (s *Store) Import(path string) (*Handle, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect type of %s: %w", path, err)
	}
	if !mt.Is(pdfMIME) {
		return nil, fmt.Errorf("%s is %s: %w", filepath.Base(path), mt.String(), ErrNotPDF)
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	h := &Handle{
		ID:   uuid.NewString(),
		Name: filepath.Base(path),
	}
	h.Path = filepath.Join(s.root, h.ID+".pdf")
	dst, err := os.Create(h.Path)
	if err != nil {
		return nil, fmt.Errorf("create copy: %w", err)
	}
	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(h.Path)
		return nil, fmt.Errorf("copy %s: %w", path, err)
	}
	h.Size = n
	slog.Debug("imported document", "name", h.Name, "bytes", n)
	return h, nil
}

// Close removes the store's temp dir and everything in it.
func (s *Store) Close() error {
	return os.RemoveAll(s.root)
}
