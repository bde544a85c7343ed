package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

type fakeStudentService struct {
	loginErr error
}

func (f *fakeStudentService) AdmitStudent(_ context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return &dto.StudentResponse{ID: 1, StudentName: req.StudentName, MobileNumber: req.MobileNumber}, nil
}

func (f *fakeStudentService) ListStudents(context.Context, string) (*dto.StudentListResponse, error) {
	return &dto.StudentListResponse{Records: []dto.StudentResponse{}}, nil
}

func (f *fakeStudentService) GetStudent(_ context.Context, id int64) (*dto.StudentResponse, error) {
	return &dto.StudentResponse{ID: id}, nil
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, id int64, _ *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return &dto.StudentResponse{ID: id}, nil
}

func (f *fakeStudentService) DeleteStudent(context.Context, int64) error {
	return nil
}

func (f *fakeStudentService) Login(_ context.Context, req *dto.StudentLoginRequest) (*dto.StudentLoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.StudentLoginResponse{
		Student:   dto.StudentResponse{ID: 9, StudentName: req.StudentName, MobileNumber: req.PhoneNumber},
		Token:     "signed.jwt.token",
		ExpiresIn: 86400,
	}, nil
}

func (f *fakeStudentService) UpcomingBirthdays(context.Context) (*dto.StudentListResponse, error) {
	return &dto.StudentListResponse{Records: []dto.StudentResponse{}}, nil
}

func newStudentTestRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewStudentController(svc)
	router.POST("/api/v1/students/login", ctrl.Login)
	router.GET("/api/v1/students/birthdays", ctrl.GetUpcomingBirthdays)
	return router
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/api/v1/students/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginReturnsTokenWithoutPassword(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, loginRequest(`{"studentName":"Ravi","password":"secret123","phoneNumber":"9876543210"}`))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data dto.StudentLoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Data.Token)
	assert.Equal(t, 86400, resp.Data.ExpiresIn)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "secret123")
}

func TestLoginValidatesPayload(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, loginRequest(`{"studentName":"Ravi"}`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, loginRequest(`{"studentName":"Ravi","password":"secret123","phoneNumber":"98765"}`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "mobile number must be ten digits")
}

func TestLoginUnknownStudentIs404(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{loginErr: apperrors.ErrStudentNotFound})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, loginRequest(`{"studentName":"Ghost","password":"secret123","phoneNumber":"9876543210"}`))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{loginErr: apperrors.ErrInvalidCredentials})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, loginRequest(`{"studentName":"Ravi","password":"wrong-pass","phoneNumber":"9876543210"}`))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetUpcomingBirthdaysEmptyListIsOK(t *testing.T) {
	router := newStudentTestRouter(&fakeStudentService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/students/birthdays", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Data dto.StudentListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data.Records)
	assert.Empty(t, resp.Data.Records)
}
