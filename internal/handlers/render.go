package handlers

import (
	"thesis-portal/internal/models"
	"thesis-portal/internal/pages"

	"github.com/gin-gonic/gin"
)

// PageTemplate — единственный общий шаблон всех страниц.
const PageTemplate = "home"

// PageParams — параметры шаблона страницы. Для публичных страниц userRole = nil.
func PageParams(d pages.PageDescriptor) gin.H {
	var userRole any
	if d.Role != models.RoleAnonymous {
		userRole = string(d.Role)
	}

	return gin.H{
		"pageTitle":   d.Title,
		"userRole":    userRole,
		"currentPage": d.PageKey,
		"pageContent": d.DisplayLabel,
	}
}

// render — обёртка над c.HTML для страниц из таблицы; extra дописывается поверх
// (например, "error" на форме входа).
func render(c *gin.Context, status int, d pages.PageDescriptor, extra gin.H) {
	data := PageParams(d)
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, PageTemplate, data)
}
