package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses    map[int64]*models.Course
	createErr  error
	updateErr  error
	deletedIDs []int64
	nextID     int64
}

func newFakeCourseStore(courses ...*models.Course) *fakeCourseStore {
	store := &fakeCourseStore{courses: map[int64]*models.Course{}, nextID: 100}
	for _, course := range courses {
		store.courses[course.ID] = course
	}
	return store
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) List(context.Context) ([]*models.Course, error) {
	records := make([]*models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		records = append(records, course)
	}
	return records, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	// Each lookup scans a fresh row, so hand out a copy.
	snapshot := *course
	return &snapshot, nil
}

func (f *fakeCourseStore) Update(_ context.Context, id int64, update repositories.CourseUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	course, ok := f.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if update.CourseName != nil {
		course.CourseName = *update.CourseName
	}
	if update.Price != nil {
		course.Price = *update.Price
	}
	if update.CoursePDFPath != nil {
		course.CoursePDFPath = update.CoursePDFPath
	}
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeFileStore struct {
	savedPaths   []string
	deletedPaths []string
}

func (f *fakeFileStore) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	path := subDir + "/saved-" + fileHeader.Filename
	f.savedPaths = append(f.savedPaths, path)
	return path, nil
}

func (f *fakeFileStore) FileURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	return "http://test.local/uploads/" + storedPath
}

func (f *fakeFileStore) DeleteFile(storedPath string) error {
	f.deletedPaths = append(f.deletedPaths, storedPath)
	return nil
}

func TestDeleteCourseRemovesStoredPDF(t *testing.T) {
	pdfPath := "courses/old-syllabus.pdf"
	store := newFakeCourseStore(&models.Course{ID: 3, CourseName: "Physics", Price: 4500, CoursePDFPath: &pdfPath})
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	err := svc.DeleteCourse(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, store.deletedIDs)
	assert.Equal(t, []string{pdfPath}, files.deletedPaths)
}

func TestDeleteCourseWithoutPDFLeavesStorageAlone(t *testing.T) {
	store := newFakeCourseStore(&models.Course{ID: 5, CourseName: "Chemistry", Price: 3000})
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	err := svc.DeleteCourse(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, store.deletedIDs)
	assert.Empty(t, files.deletedPaths)
}

func TestDeleteCourseUnknownIDIs404AndTouchesNoFile(t *testing.T) {
	store := newFakeCourseStore()
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	err := svc.DeleteCourse(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
	assert.Empty(t, files.deletedPaths)
}

func TestCreateCourseCleansUpPDFOnInsertError(t *testing.T) {
	store := newFakeCourseStore()
	store.createErr = errors.New("insert failed")
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	_, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		CourseName: "Biology",
		Price:      2500,
		CoursePDF:  &multipart.FileHeader{Filename: "syllabus.pdf"},
	})
	require.Error(t, err)

	require.Len(t, files.savedPaths, 1)
	assert.Equal(t, files.savedPaths, files.deletedPaths, "the saved file must be removed again")
}

func TestUpdateCourseRemovesReplacedPDF(t *testing.T) {
	oldPath := "courses/old.pdf"
	store := newFakeCourseStore(&models.Course{ID: 7, CourseName: "Maths", Price: 5000, CoursePDFPath: &oldPath})
	files := &fakeFileStore{}
	svc := NewCourseService(store, files)

	resp, err := svc.UpdateCourse(context.Background(), 7, &dto.UpdateCourseRequest{
		CoursePDF: &multipart.FileHeader{Filename: "new.pdf"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{oldPath}, files.deletedPaths)
	assert.Contains(t, resp.CoursePDFURL, "saved-new.pdf")
	assert.Equal(t, "Maths", resp.CourseName, "untouched fields survive a partial update")
}
