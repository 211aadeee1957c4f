package utils

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveUploadedFileUniqueNames(t *testing.T) {
	dir := t.TempDir()

	// Two uploads landing within the same wall-clock second must not
	// overwrite each other.
	first, err := SaveUploadedFile(uploadHeader(t, "lecture.mp4", "first video"), dir, VideoExtensions)
	require.NoError(t, err)
	second, err := SaveUploadedFile(uploadHeader(t, "lecture.mp4", "second video"), dir, VideoExtensions)
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Equal(t, "first video", string(got))

	got, err = os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, "second video", string(got))
}

func TestSaveUploadedFileRejectsExtension(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveUploadedFile(uploadHeader(t, "payload.exe", "nope"), dir, VideoExtensions)
	require.ErrorIs(t, err, ErrExtensionNotAllowed)

	_, err = SaveUploadedFile(uploadHeader(t, "photo.png", "pixels"), dir, PdfExtensions)
	require.ErrorIs(t, err, ErrExtensionNotAllowed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSaveUploadedFileExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveUploadedFile(uploadHeader(t, "LECTURE.MP4", "video"), dir, VideoExtensions)
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestSaveUploadedFileUnrestrictedWhenNoAllowList(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveUploadedFile(uploadHeader(t, "notes.xyz", "anything"), dir, nil)
	require.NoError(t, err)
	require.FileExists(t, path)
}

func TestGetFileURL(t *testing.T) {
	require.Equal(t, "/uploads/videos/a.mp4", GetFileURL("./uploads/videos/a.mp4"))
	require.Equal(t, "/uploads/videos/a.mp4", GetFileURL("uploads/videos/a.mp4"))
	require.Equal(t, "/uploads/avatars/me.png", GetFileURL("./uploads/avatars/me.png"))
	require.Equal(t, "", GetFileURL(""))
}
