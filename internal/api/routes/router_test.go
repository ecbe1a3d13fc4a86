package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davideoddi/usergroups-api/internal/api/routes"
	"github.com/davideoddi/usergroups-api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	_ "github.com/davideoddi/usergroups-api/docs"
)

func TestSwaggerDocServed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, &repository.Repos{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Users")
	assert.Contains(t, w.Body.String(), `"/users/group"`)
}
