package server

import (
	"html/template"
	"net/http"

	"thesis-portal/internal/auth"
	"thesis-portal/internal/config"
	"thesis-portal/internal/handlers"
	"thesis-portal/internal/middleware"
	"thesis-portal/internal/models"
	"thesis-portal/internal/pages"
	"thesis-portal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type Options struct {
	Pages    pages.Table
	Resolver auth.RoleResolver
	// нужен только в режиме session
	Auth *auth.Service
}

// NewResolver выбирает способ определения роли по AUTH_MODE.
func NewResolver(cfg *config.Config, svc *auth.Service) auth.RoleResolver {
	if cfg.AuthMode == config.AuthModeSession && svc != nil {
		return auth.SessionResolver{Service: svc}
	}
	return auth.Static(cfg.StubRole)
}

func NewRouter(cfg *config.Config, opts Options) (*gin.Engine, error) {
	if err := opts.Pages.Validate(); err != nil {
		return nil, err
	}

	r := gin.Default()

	r.StaticFS("/static", http.FS(web.Static()))

	tmpl, err := web.Templates(template.FuncMap{
		"nav": func(role string) []pages.PageDescriptor {
			return opts.Pages.ForRole(models.Role(role))
		},
	})
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("thesis_session", store))

	r.Use(middleware.ResolveRole(opts.Resolver))

	// роли проверяются только когда роль приходит из настоящей сессии
	enforce := cfg.AuthMode == config.AuthModeSession

	// ГЛАВНАЯ
	r.GET("/", handlers.Root)

	// СТРАНИЦЫ
	for _, d := range opts.Pages.All() {
		if enforce && d.Role != models.RoleAnonymous {
			r.GET(d.Path, middleware.RequireRole(d.Role), handlers.Page(d))
			continue
		}
		r.GET(d.Path, handlers.Page(d))
	}

	// AUTH
	loginPage, _ := opts.Pages.Lookup(models.RoleAnonymous.Landing())
	authHandler := handlers.AuthHandler{Service: opts.Auth, LoginPage: loginPage}
	if enforce && opts.Auth != nil {
		r.POST("/login", authHandler.Login)
	}
	r.GET("/logout", authHandler.Logout)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
