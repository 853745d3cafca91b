package router

import (
	"net/http"

	"github.com/martinwilchesdev/backend-web-app/internal/config"
	"github.com/martinwilchesdev/backend-web-app/internal/handler"
	"github.com/martinwilchesdev/backend-web-app/internal/middleware"
	"github.com/martinwilchesdev/backend-web-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// 所有路由都先经过会话中间件，匿名请求正常放行
	jwtSecret := cfg.JWT.Secret
	r.Use(middleware.SessionMiddleware(jwtSecret))

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	// Home -> registration page; logged-in users go straight to dashboard
	r.GET("/", func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "homepage.html", gin.H{})
	})

	r.GET("/login", func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{})
	})

	// 登录后访问的主页
	r.GET("/dashboard", func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"username": claims.Username,
		})
	})

	userStore := store.NewUserStore(db)
	authHandler := handler.NewAuthHandler(userStore, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)

	// 表单接口
	r.POST("/register", authHandler.RegisterForm)
	r.POST("/login", authHandler.LoginForm)
	r.POST("/logout", authHandler.Logout)

	// ====== API ======
	api := r.Group("/api")
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Security.AllowedOrigins
		corsCfg.AllowCredentials = true
		api.Use(cors.New(corsCfg))
	}

	// 登录/注册接口（不需要鉴权）
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.RequireAuth())
	protected.GET("/me", handler.GetMe)

	return r
}
