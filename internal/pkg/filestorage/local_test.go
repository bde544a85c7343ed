package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return storage
}

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileStoresUnderSubdirectory(t *testing.T) {
	storage := newTestStorage(t)

	storedPath, err := storage.SaveFile(uploadedFile(t, "syllabus.pdf", "pdf-bytes"), CourseDir)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(storedPath, CourseDir+"/"))
	assert.True(t, strings.HasSuffix(storedPath, ".pdf"))

	content, err := os.ReadFile(filepath.Join(storage.BasePath(), storedPath))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestSaveFileNilHeaderIsNoop(t *testing.T) {
	storage := newTestStorage(t)

	storedPath, err := storage.SaveFile(nil, CourseDir)
	require.NoError(t, err)
	assert.Empty(t, storedPath)
}

func TestFileURL(t *testing.T) {
	storage := newTestStorage(t)

	assert.Equal(t, "http://localhost:8080/uploads/courses/a.pdf", storage.FileURL("courses/a.pdf"))
	assert.Empty(t, storage.FileURL(""))
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	storage := newTestStorage(t)

	storedPath, err := storage.SaveFile(uploadedFile(t, "photo.jpg", "jpeg"), StudentDir)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(storedPath))
	_, statErr := os.Stat(filepath.Join(storage.BasePath(), storedPath))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is not an error
	assert.NoError(t, storage.DeleteFile(storedPath))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestDeleteFileRejectsPathTraversal(t *testing.T) {
	storage := newTestStorage(t)

	assert.Error(t, storage.DeleteFile("../outside.txt"))
	assert.Error(t, storage.DeleteFile("/"))
}
