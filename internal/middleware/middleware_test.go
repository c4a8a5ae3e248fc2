package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"thesis-portal/internal/auth"
	"thesis-portal/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(role models.Role, path string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(ResolveRole(auth.Static(role)))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", CurrentRole(c).String())
	})
	r.GET("/professor", RequireRole(models.RoleProfessor), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestResolveRole(t *testing.T) {
	rec := serve(models.RoleSecretary, "/whoami")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "secretary", rec.Body.String())
}

func TestCurrentRole_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.RoleAnonymous, CurrentRole(c))
}

func TestRequireRole(t *testing.T) {
	rec := serve(models.RoleProfessor, "/professor")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(models.RoleStudent, "/professor")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(models.RoleAnonymous, "/professor")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
