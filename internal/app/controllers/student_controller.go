package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/middleware"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

// StudentController handles admission, profile and authentication
// operations.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles admitting a student
// @Summary Admit a student
// @Description Registers a student from multipart form data with optional photo and result uploads and course enrollments
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param studentName formData string true "Student name"
// @Param password formData string true "Password (min 6 characters)"
// @Param fatherName formData string true "Father's name"
// @Param gender formData string true "Gender"
// @Param mobileNumber formData string true "10-digit mobile number"
// @Param dateOfBirth formData string false "Date of birth (YYYY-MM-DD)"
// @Param schoolName formData string false "School name"
// @Param cast formData string false "Cast category"
// @Param aadharCardNumber formData string false "12-digit Aadhar number"
// @Param fullAddress formData string false "Full address"
// @Param courseIds formData []int false "Course IDs to enroll in" collectionFormat(multi)
// @Param studentPhoto formData file false "Student photo"
// @Param result formData file false "Result document"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student admitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Mobile number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidateForm(ctx, &req) {
		return
	}

	student, err := c.studentService.AdmitStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student admitted successfully"))
}

// GetAllStudents handles listing students
// @Summary List students
// @Description Retrieves students, newest first, with an optional name or mobile search
// @Tags students
// @Produce json
// @Param search query string false "Substring match on name or mobile number"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved successfully"))
}

// GetUpcomingBirthdays handles the birthday board
// @Summary Upcoming birthdays
// @Description Lists up to seven students whose birthday comes up next, wrapping across the year boundary
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/birthdays [get]
func (c *StudentController) GetUpcomingBirthdays(ctx *gin.Context) {
	students, err := c.studentService.UpcomingBirthdays(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, "Students retrieved successfully"))
}

// GetStudentByID handles retrieving one student profile
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student retrieved successfully"))
}

// UpdateStudent handles a partial student update
// @Summary Update a student
// @Description Overwrites only the supplied fields; a non-empty courseIds list replaces enrollments
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Mobile number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindAndValidateForm(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// DeleteStudent handles removing a student
// @Summary Delete a student
// @Description Removes the student, their enrollments and results, and their stored uploads
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully"))
}

// Login handles student authentication
// @Summary Student login
// @Description Authenticates by name, mobile number and password and issues an access token
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.StudentLoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	resp, err := c.studentService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Login successful"))
}

// GetMyProfile handles retrieving the authenticated student's profile
// @Summary Get own profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetMyProfile(ctx *gin.Context) {
	studentID, ok := middleware.StudentID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	student, err := c.studentService.GetStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Profile retrieved successfully"))
}
