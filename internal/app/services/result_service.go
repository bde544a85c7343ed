package services

import (
	"context"
	"time"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

// ResultService defines operations on recorded test results
type ResultService interface {
	CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error)
	ListResults(ctx context.Context, studentID *int64) ([]*models.Result, error)
	GetResult(ctx context.Context, id int64) (*models.Result, error)
	UpdateResult(ctx context.Context, id int64, req *dto.UpdateResultRequest) (*models.Result, error)
	DeleteResult(ctx context.Context, id int64) error
}

type resultService struct {
	resultRepo  *repositories.ResultRepository
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
}

// NewResultService creates a new result service
func NewResultService(
	resultRepo *repositories.ResultRepository,
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
) ResultService {
	return &resultService{
		resultRepo:  resultRepo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

func parseTestDate(value string) (time.Time, error) {
	testDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("invalid test date")
	}
	return testDate, nil
}

// CreateResult records a test score after verifying the referenced
// student and course exist.
func (s *resultService) CreateResult(ctx context.Context, req *dto.CreateResultRequest) (*models.Result, error) {
	exists, err := s.studentRepo.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	exists, err = s.courseRepo.Exists(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	testDate, err := parseTestDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		StudentID:     req.StudentID,
		CourseID:      req.CourseID,
		TestName:      req.TestName,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		TestDate:      testDate,
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListResults lists results, optionally scoped to one student. An
// unknown student filter surfaces as a not-found.
func (s *resultService) ListResults(ctx context.Context, studentID *int64) ([]*models.Result, error) {
	if studentID != nil {
		exists, err := s.studentRepo.Exists(ctx, *studentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrStudentNotFound
		}
	}

	return s.resultRepo.List(ctx, studentID)
}

func (s *resultService) GetResult(ctx context.Context, id int64) (*models.Result, error) {
	return s.resultRepo.GetByID(ctx, id)
}

// UpdateResult applies a partial update and returns the updated row
func (s *resultService) UpdateResult(ctx context.Context, id int64, req *dto.UpdateResultRequest) (*models.Result, error) {
	update := repositories.ResultUpdate{
		TestName:      req.TestName,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}

	if req.TestDate != nil {
		testDate, err := parseTestDate(*req.TestDate)
		if err != nil {
			return nil, err
		}
		update.TestDate = &testDate
	}

	if err := s.resultRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.resultRepo.GetByID(ctx, id)
}

func (s *resultService) DeleteResult(ctx context.Context, id int64) error {
	return s.resultRepo.Delete(ctx, id)
}
