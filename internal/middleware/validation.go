package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
)

var validate = validator.New()

// BindAndValidateJSON decodes a JSON body into obj and runs struct
// validation. On failure it writes a 400 response and returns false.
func BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}

	return validateStruct(c, obj)
}

// BindAndValidateForm decodes multipart/form fields into obj and runs
// struct validation. On failure it writes a 400 response and returns false.
func BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}

	return validateStruct(c, obj)
}

func validateStruct(c *gin.Context, obj interface{}) bool {
	if err := validate.Struct(obj); err != nil {
		errorDetail := dto.HandleValidationError(err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
