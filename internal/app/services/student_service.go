package services

import (
	"context"
	"sort"
	"time"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/auth"
	"github.com/ankitr/coachdesk/internal/pkg/dberrors"
	"github.com/ankitr/coachdesk/internal/pkg/filestorage"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// mobileNumberConstraint is the unique index backing one-account-per-mobile
const mobileNumberConstraint = "students_mobile_number_key"

// maxBirthdayStudents caps the upcoming birthday board
const maxBirthdayStudents = 7

// StudentService defines admission, profile and authentication operations
type StudentService interface {
	AdmitStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, search string) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error)
	UpcomingBirthdays(ctx context.Context) (*dto.StudentListResponse, error)
}

type studentService struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
	storage     *filestorage.LocalStorage
	jwtService  *auth.JWTService
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	storage *filestorage.LocalStorage,
	jwtService *auth.JWTService,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		storage:     storage,
		jwtService:  jwtService,
	}
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// verifyCourseIDs ensures every requested course exists before enrolling
func (s *studentService) verifyCourseIDs(ctx context.Context, ids []int64) ([]int64, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}

	count, err := s.courseRepo.CountByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, apperrors.ErrCourseNotFound
	}

	return ids, nil
}

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date of birth")
	}
	return &dob, nil
}

func (s *studentService) cleanupFiles(paths ...*string) {
	for _, path := range paths {
		if path == nil {
			continue
		}
		if err := s.storage.DeleteFile(*path); err != nil {
			logger.Warn().Err(err).Str("path", *path).Msg("Failed to clean up stored file")
		}
	}
}

// buildResponse assembles the outgoing profile with enrolled courses
func (s *studentService) buildResponse(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	resp := dto.FromStudent(student, s.storage.FileURL)

	courses, err := s.studentRepo.Courses(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.FromCourse(course, s.storage.FileURL))
		resp.CourseIDs = append(resp.CourseIDs, course.ID)
	}

	return &resp, nil
}

// AdmitStudent registers a student with hashed credentials, optional
// uploads and course enrollments, all or nothing.
func (s *studentService) AdmitStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	courseIDs, err := s.verifyCourseIDs(ctx, req.CourseIDs)
	if err != nil {
		return nil, err
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentName:      req.StudentName,
		Password:         hashedPassword,
		FatherName:       req.FatherName,
		Gender:           req.Gender,
		SchoolName:       req.SchoolName,
		MobileNumber:     req.MobileNumber,
		DateOfBirth:      dob,
		Cast:             req.Cast,
		AadharCardNumber: req.AadharCardNumber,
		FullAddress:      req.FullAddress,
	}

	if req.StudentPhoto != nil {
		storedPath, err := s.storage.SaveFile(req.StudentPhoto, filestorage.StudentDir)
		if err != nil {
			return nil, err
		}
		student.StudentPhoto = &storedPath
	}
	if req.Result != nil {
		storedPath, err := s.storage.SaveFile(req.Result, filestorage.ResultDir)
		if err != nil {
			s.cleanupFiles(student.StudentPhoto)
			return nil, err
		}
		student.ResultPath = &storedPath
	}

	if err := s.studentRepo.Create(ctx, student, courseIDs); err != nil {
		s.cleanupFiles(student.StudentPhoto, student.ResultPath)
		if dberrors.IsDuplicateConstraintError(err, mobileNumberConstraint) {
			return nil, apperrors.ErrMobileNumberExists
		}
		return nil, err
	}

	return s.buildResponse(ctx, student)
}

func (s *studentService) ListStudents(ctx context.Context, search string) (*dto.StudentListResponse, error) {
	students, err := s.studentRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	records := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		records = append(records, dto.FromStudent(student, s.storage.FileURL))
	}

	return &dto.StudentListResponse{Records: records}, nil
}

func (s *studentService) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, student)
}

// UpdateStudent applies a partial update. A non-empty courseIds list
// replaces the enrollments; new uploads replace stored files, which are
// removed only after the row update succeeds.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := repositories.StudentUpdate{
		StudentName:      req.StudentName,
		FatherName:       req.FatherName,
		Gender:           req.Gender,
		MobileNumber:     req.MobileNumber,
		SchoolName:       req.SchoolName,
		Cast:             req.Cast,
		AadharCardNumber: req.AadharCardNumber,
		FullAddress:      req.FullAddress,
	}

	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hashedPassword
	}

	if req.DateOfBirth != nil {
		dob, err := parseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		update.DateOfBirth = dob
	}

	replaceCourses := len(req.CourseIDs) > 0
	var courseIDs []int64
	if replaceCourses {
		courseIDs, err = s.verifyCourseIDs(ctx, req.CourseIDs)
		if err != nil {
			return nil, err
		}
	}

	var newFiles []*string
	if req.StudentPhoto != nil {
		storedPath, err := s.storage.SaveFile(req.StudentPhoto, filestorage.StudentDir)
		if err != nil {
			return nil, err
		}
		update.StudentPhoto = &storedPath
		newFiles = append(newFiles, &storedPath)
	}
	if req.Result != nil {
		storedPath, err := s.storage.SaveFile(req.Result, filestorage.ResultDir)
		if err != nil {
			s.cleanupFiles(newFiles...)
			return nil, err
		}
		update.ResultPath = &storedPath
		newFiles = append(newFiles, &storedPath)
	}

	if err := s.studentRepo.Update(ctx, id, update, courseIDs, replaceCourses); err != nil {
		s.cleanupFiles(newFiles...)
		if dberrors.IsDuplicateConstraintError(err, mobileNumberConstraint) {
			return nil, apperrors.ErrMobileNumberExists
		}
		return nil, err
	}

	if update.StudentPhoto != nil {
		s.cleanupFiles(existing.StudentPhoto)
	}
	if update.ResultPath != nil {
		s.cleanupFiles(existing.ResultPath)
	}

	return s.GetStudent(ctx, id)
}

// DeleteStudent removes the student row and then the stored uploads
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	files, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.cleanupFiles(files.StudentPhoto, files.ResultPath)
	return nil
}

// Login authenticates by name, mobile number and password and issues an
// access token. An unknown name/mobile pair surfaces as a not-found; a
// wrong password as invalid credentials.
func (s *studentService) Login(ctx context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	student, err := s.studentRepo.GetByNameAndMobile(ctx, req.StudentName, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, student.StudentName, student.MobileNumber)
	if err != nil {
		return nil, err
	}

	profile, err := s.buildResponse(ctx, student)
	if err != nil {
		return nil, err
	}

	return &dto.StudentLoginResponse{
		Student:   *profile,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// UpcomingBirthdays lists students whose birthday comes up next, soonest
// first, capped at seven.
func (s *studentService) UpcomingBirthdays(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.studentRepo.ListWithBirthdays(ctx)
	if err != nil {
		return nil, err
	}

	ranked := RankUpcomingBirthdays(students, time.Now())

	records := make([]dto.StudentResponse, 0, len(ranked))
	for _, student := range ranked {
		records = append(records, dto.FromStudent(student, s.storage.FileURL))
	}

	return &dto.StudentListResponse{Records: records}, nil
}

// RankUpcomingBirthdays orders students by how soon their birthday comes
// around relative to now. A birthday already past this year wraps to next
// year, so late December sorts after early January. Returns at most
// maxBirthdayStudents entries.
func RankUpcomingBirthdays(students []*models.Student, now time.Time) []*models.Student {
	type rankedStudent struct {
		student *models.Student
		key     int
	}

	today := now.YearDay()
	ranked := make([]rankedStudent, 0, len(students))
	for _, student := range students {
		if student.DateOfBirth == nil {
			continue
		}

		birthday := time.Date(now.Year(), student.DateOfBirth.Month(), student.DateOfBirth.Day(),
			0, 0, 0, 0, now.Location())
		key := birthday.YearDay()
		if key < today {
			key += 366
		}
		ranked = append(ranked, rankedStudent{student: student, key: key})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].key < ranked[j].key
	})

	if len(ranked) > maxBirthdayStudents {
		ranked = ranked[:maxBirthdayStudents]
	}

	out := make([]*models.Student, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.student)
	}
	return out
}
