package repositories

import (
	"github.com/ankitr/coachdesk/internal/db"
)

// Repositories bundles all repository instances for dependency wiring
type Repositories struct {
	ContactRepository *ContactRepository
	CourseRepository  *CourseRepository
	EventRepository   *EventRepository
	StudentRepository *StudentRepository
	ResultRepository  *ResultRepository
}

// NewRepositories creates all repositories from one database handle
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		ContactRepository: NewContactRepository(database.Pool),
		CourseRepository:  NewCourseRepository(database.Pool),
		EventRepository:   NewEventRepository(database.Pool),
		StudentRepository: NewStudentRepository(database),
		ResultRepository:  NewResultRepository(database.Pool),
	}
}
