package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramContext(name, value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: name, Value: value}}
	return c
}

func TestParseIDParam_Valid(t *testing.T) {
	id, err := ParseIDParam(paramContext("id", "42"), "id")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestParseIDParam_Rejects(t *testing.T) {
	for _, value := range []string{"0", "-1", "abc", "1.5", "", "  7"} {
		_, err := ParseIDParam(paramContext("id", value), "id")
		assert.ErrorIs(t, err, ErrInvalidID, "value %q", value)
	}
}
