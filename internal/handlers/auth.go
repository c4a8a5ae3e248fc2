package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"thesis-portal/internal/auth"
	"thesis-portal/internal/pages"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service   *auth.Service
	LoginPage pages.PageDescriptor
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, h.LoginPage, gin.H{"error": "Συμπληρώστε όνομα χρήστη και κωδικό"})
		return
	}

	session, _, err := h.Service.Login(c.Request.Context(), strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("failed to log in %s: %v", form.Username, err)
			render(c, http.StatusInternalServerError, h.LoginPage, gin.H{"error": "Σφάλμα σύνδεσης"})
			return
		}
		render(c, http.StatusBadRequest, h.LoginPage, gin.H{"error": "Λάθος όνομα χρήστη ή κωδικός"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(auth.SessionKey, session.ID)
	if err := sess.Save(); err != nil {
		log.Printf("failed to save session cookie: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}

func (h AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	if id, ok := sess.Get(auth.SessionKey).(string); ok && h.Service != nil {
		if err := h.Service.Logout(c.Request.Context(), id); err != nil {
			log.Printf("failed to delete session: %v", err)
		}
	}
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
