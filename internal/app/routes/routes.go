package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/controllers"
	"github.com/ankitr/coachdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Contact enquiry routes
	contacts := v1.Group("/contacts")
	{
		contacts.POST("", ctrls.ContactController.CreateContact)
		contacts.GET("", ctrls.ContactController.GetAllContacts)
		contacts.GET("/stats", ctrls.ContactController.GetContactStats)
		contacts.GET("/:id", ctrls.ContactController.GetContactByID)
		contacts.PUT("/:id", ctrls.ContactController.UpdateContact)
		contacts.DELETE("/:id", ctrls.ContactController.DeleteContact)
	}

	// Course catalog routes
	courses := v1.Group("/courses")
	{
		courses.POST("", ctrls.CourseController.CreateCourse)
		courses.GET("", ctrls.CourseController.GetAllCourses)
		courses.GET("/:id", ctrls.CourseController.GetCourseByID)
		courses.PUT("/:id", ctrls.CourseController.UpdateCourse)
		courses.DELETE("/:id", ctrls.CourseController.DeleteCourse)
	}

	// Event routes
	events := v1.Group("/events")
	{
		events.POST("", ctrls.EventController.CreateEvent)
		events.GET("", ctrls.EventController.GetAllEvents)
		events.GET("/upcoming", ctrls.EventController.GetUpcomingEvents)
		events.GET("/:id", ctrls.EventController.GetEventByID)
		events.PUT("/:id", ctrls.EventController.UpdateEvent)
		events.DELETE("/:id", ctrls.EventController.DeleteEvent)
	}

	// Student routes. The "/me" profile route is the only one behind JWT
	// auth; the rest are admin-facing and fronted elsewhere.
	students := v1.Group("/students")
	{
		students.POST("", ctrls.StudentController.CreateStudent)
		students.GET("", ctrls.StudentController.GetAllStudents)
		students.GET("/birthdays", ctrls.StudentController.GetUpcomingBirthdays)
		students.POST("/login", ctrls.StudentController.Login)
		students.GET("/me", authMiddleware.JWTAuth(), ctrls.StudentController.GetMyProfile)
		students.GET("/:id", ctrls.StudentController.GetStudentByID)
		students.PUT("/:id", ctrls.StudentController.UpdateStudent)
		students.DELETE("/:id", ctrls.StudentController.DeleteStudent)
	}

	// Test result routes
	results := v1.Group("/results")
	{
		results.POST("", ctrls.ResultController.CreateResult)
		results.GET("", ctrls.ResultController.GetAllResults)
		results.GET("/:id", ctrls.ResultController.GetResultByID)
		results.PUT("/:id", ctrls.ResultController.UpdateResult)
		results.DELETE("/:id", ctrls.ResultController.DeleteResult)
	}
}
