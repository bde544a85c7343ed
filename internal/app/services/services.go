package services

import (
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/auth"
	"github.com/ankitr/coachdesk/internal/pkg/email"
	"github.com/ankitr/coachdesk/internal/pkg/filestorage"
)

// Services bundles all service instances for dependency wiring
type Services struct {
	ContactService ContactService
	CourseService  CourseService
	EventService   EventService
	StudentService StudentService
	ResultService  ResultService
}

// NewServices creates all services from their dependencies
func NewServices(
	repos *repositories.Repositories,
	storage *filestorage.LocalStorage,
	notifier email.EnquiryNotifier,
	jwtService *auth.JWTService,
) *Services {
	return &Services{
		ContactService: NewContactService(repos.ContactRepository, notifier),
		CourseService:  NewCourseService(repos.CourseRepository, storage),
		EventService:   NewEventService(repos.EventRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.CourseRepository, storage, jwtService),
		ResultService:  NewResultService(repos.ResultRepository, repos.StudentRepository, repos.CourseRepository),
	}
}
