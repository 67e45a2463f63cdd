package document

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Minimal but valid-enough PDF bytes for content sniffing.
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImportCopiesPDF(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(src, pdfBytes, 0o644))

	h, err := s.Import(src)
	require.NoError(t, err)
	require.Equal(t, "notice.pdf", h.Name)
	require.Equal(t, int64(len(pdfBytes)), h.Size)
	require.NotEqual(t, src, h.Path)

	f, err := h.Open()
	require.NoError(t, err)
	defer f.Close()
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, pdfBytes, got)
}

func TestImportSurvivesSourceRemoval(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(src, pdfBytes, 0o644))

	h, err := s.Import(src)
	require.NoError(t, err)
	require.NoError(t, os.Remove(src))

	f, err := h.Open()
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestImportRejectsNonPDFContent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	// A .pdf extension on plain text must not fool the sniffer.
	src := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(src, []byte("hello, this is text"), 0o644))

	_, err := s.Import(src)
	require.ErrorIs(t, err, ErrNotPDF)
}

func TestImportMissingFile(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.Import(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotPDF)
}

func TestReleaseRemovesCopyAndIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(src, pdfBytes, 0o644))

	h, err := s.Import(src)
	require.NoError(t, err)

	h.Release()
	_, err = os.Stat(h.Path)
	require.True(t, os.IsNotExist(err))

	h.Release()
	var nilHandle *Handle
	nilHandle.Release()
}

func TestCloseRemovesEverything(t *testing.T) {
	t.Parallel()

	s, err := NewStore()
	require.NoError(t, err)
	src := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(src, pdfBytes, 0o644))
	h, err := s.Import(src)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	_, err = os.Stat(h.Path)
	require.True(t, os.IsNotExist(err))
}
