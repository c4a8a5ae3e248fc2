package handlers

import (
	"net/http"

	"thesis-portal/internal/middleware"
	"thesis-portal/internal/pages"

	"github.com/gin-gonic/gin"
)

// Root отправляет на стартовую страницу роли, аноним — на /login.
func Root(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.CurrentRole(c).Landing())
}

func Page(d pages.PageDescriptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, d, nil)
	}
}
