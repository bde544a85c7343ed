package services

import (
	"context"
	"mime/multipart"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/filestorage"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// CourseService defines operations on the course catalog
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseStore is the slice of the course repository this service needs.
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, update repositories.CourseUpdate) error
	Delete(ctx context.Context, id int64) error
}

// fileStore abstracts upload storage for the syllabus PDF lifecycle.
type fileStore interface {
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error)
	FileURL(storedPath string) string
	DeleteFile(storedPath string) error
}

var (
	_ courseStore = (*repositories.CourseRepository)(nil)
	_ fileStore   = (*filestorage.LocalStorage)(nil)
)

type courseService struct {
	courseRepo courseStore
	storage    fileStore
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo courseStore, storage fileStore) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		storage:    storage,
	}
}

func (s *courseService) toResponse(course *models.Course) *dto.CourseResponse {
	resp := dto.FromCourse(course, s.storage.FileURL)
	return &resp
}

// CreateCourse stores the optional syllabus PDF and inserts the course.
// A failed insert removes the freshly saved file again.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := &models.Course{
		CourseName: req.CourseName,
		Price:      req.Price,
	}

	if req.CoursePDF != nil {
		storedPath, err := s.storage.SaveFile(req.CoursePDF, filestorage.CourseDir)
		if err != nil {
			return nil, err
		}
		course.CoursePDFPath = &storedPath
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if course.CoursePDFPath != nil {
			if delErr := s.storage.DeleteFile(*course.CoursePDFPath); delErr != nil {
				logger.Warn().Err(delErr).Msg("Failed to clean up course PDF after insert error")
			}
		}
		return nil, err
	}

	return s.toResponse(course), nil
}

func (s *courseService) ListCourses(ctx context.Context) (*dto.CourseListResponse, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		records = append(records, dto.FromCourse(course, s.storage.FileURL))
	}

	return &dto.CourseListResponse{Records: records}, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(course), nil
}

// UpdateCourse applies a partial update. A newly uploaded PDF replaces
// the stored one; the old file is removed only after the row update
// succeeds.
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := repositories.CourseUpdate{
		CourseName: req.CourseName,
		Price:      req.Price,
	}

	var newPDFPath string
	if req.CoursePDF != nil {
		newPDFPath, err = s.storage.SaveFile(req.CoursePDF, filestorage.CourseDir)
		if err != nil {
			return nil, err
		}
		update.CoursePDFPath = &newPDFPath
	}

	if err := s.courseRepo.Update(ctx, id, update); err != nil {
		if newPDFPath != "" {
			if delErr := s.storage.DeleteFile(newPDFPath); delErr != nil {
				logger.Warn().Err(delErr).Msg("Failed to clean up course PDF after update error")
			}
		}
		return nil, err
	}

	if newPDFPath != "" && existing.CoursePDFPath != nil {
		if delErr := s.storage.DeleteFile(*existing.CoursePDFPath); delErr != nil {
			logger.Warn().Err(delErr).Int64("courseId", id).Msg("Failed to delete replaced course PDF")
		}
	}

	return s.GetCourse(ctx, id)
}

// DeleteCourse removes the course row and then its stored PDF
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.CoursePDFPath != nil {
		if delErr := s.storage.DeleteFile(*existing.CoursePDFPath); delErr != nil {
			logger.Warn().Err(delErr).Int64("courseId", id).Msg("Failed to delete course PDF")
		}
	}

	return nil
}
