package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, DefaultUpcomingLimit},
		{"negative falls back to default", -3, DefaultUpcomingLimit},
		{"in range passes through", 10, 10},
		{"max is allowed", MaxLimit, MaxLimit},
		{"above max is capped", 500, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit, DefaultUpcomingLimit, MaxLimit))
		})
	}
}

func TestParseLimitParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/events/upcoming"+query, nil)
		return c
	}

	assert.Equal(t, DefaultUpcomingLimit, ParseLimitParam(newContext(""), DefaultUpcomingLimit, MaxLimit))
	assert.Equal(t, 12, ParseLimitParam(newContext("?limit=12"), DefaultUpcomingLimit, MaxLimit))
	assert.Equal(t, MaxLimit, ParseLimitParam(newContext("?limit=9999"), DefaultUpcomingLimit, MaxLimit))
	assert.Equal(t, DefaultUpcomingLimit, ParseLimitParam(newContext("?limit=abc"), DefaultUpcomingLimit, MaxLimit))
	assert.Equal(t, DefaultUpcomingLimit, ParseLimitParam(newContext("?limit=-1"), DefaultUpcomingLimit, MaxLimit))
}
