package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// Subdirectories used under the storage root, one per upload kind.
const (
	CourseDir  = "courses"
	StudentDir = "students"
	ResultDir  = "results"
)

// LocalStorage handles saving uploaded files to the local filesystem.
// Rows reference files by the relative path returned from SaveFile; the
// absolute URL is only ever constructed at read time via FileURL.
type LocalStorage struct {
	basePath string // The root directory where files are stored
	baseURL  string // Public base URL under which basePath is served
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the storage directory on the server, baseURL the public URL
// prefix under which it is served (e.g. http://host:8080/uploads).
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	// Ensure the base path exists
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile saves an uploaded file under the given subdirectory and returns
// the relative path to store in the database (e.g. "courses/<uuid>.pdf").
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Ensure the subdirectory exists
	fullDirPath := ls.basePath
	if subDir != "" {
		fullDirPath = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Generate a unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Attempt to remove the partially created file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	storedPath := uniqueFilename
	if subDir != "" {
		storedPath = subDir + "/" + uniqueFilename
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedPath).Msg("File saved successfully")
	return storedPath, nil
}

// FileURL returns the public URL for a stored relative path, or "" when the
// row holds no file.
func (ls *LocalStorage) FileURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	return ls.baseURL + "/" + strings.TrimLeft(storedPath, "/")
}

// DeleteFile removes a stored file given its relative path as kept in the
// database. Returns nil if deletion succeeds or the file does not exist.
func (ls *LocalStorage) DeleteFile(storedPath string) error {
	if storedPath == "" {
		return nil // Nothing to delete
	}

	cleaned := filepath.Clean(storedPath)
	if cleaned == "." || cleaned == "/" || strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("invalid file path: %s", storedPath)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil // Idempotent delete
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
