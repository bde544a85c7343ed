package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder, resp
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrContactNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrResultNotFound,
	} {
		recorder, resp := handleError(t, err)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
	}
}

func TestHandleAPIErrorDuplicateMobile(t *testing.T) {
	recorder, resp := handleError(t, apperrors.ErrMobileNumberExists)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, resp.Error.Code)
	assert.Equal(t, "mobileNumber", resp.Error.Field)
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	recorder, resp := handleError(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestHandleAPIErrorBadRequest(t *testing.T) {
	recorder, _ := handleError(t, apperrors.NewBadRequestError("no fields to update"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = handleError(t, apperrors.ErrInvalidContactStatus)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	recorder, resp := handleError(t, errors.New("pq: connection refused on host 10.0.0.7"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "10.0.0.7")
}
