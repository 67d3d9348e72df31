package router

import (
	"net/http"
	"time"

	"sitetrack/api"
	"sitetrack/auth"
	"sitetrack/config"
	_ "sitetrack/docs"
	"sitetrack/middleware"
	"sitetrack/service"
	"sitetrack/store"
	"sitetrack/templates"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Setup builds the gin engine with every route wired up.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.SetHTMLTemplate(templates.Load())

	st := store.New(db)
	signer := auth.NewCookieSigner(cfg.Session.Secret)
	sessions := middleware.NewSessions(signer)
	jwt := middleware.NewJWT(cfg)
	email := service.NewEmailService(&cfg.Email)

	authHandler := api.NewAuthHandler(st, cfg, signer)
	resetHandler := api.NewPasswordResetHandler(st, cfg, email)
	projectHandler := api.NewProjectHandler(st, cfg)
	vendorHandler := api.NewVendorHandler(st, cfg)
	ledgerHandler := api.NewLedgerHandler(st, cfg)
	exportHandler := api.NewExportHandler(st, cfg)
	apiHandler := api.NewAPIHandler(st, cfg, jwt)

	// Every HTML route sees the session; only some require it.
	r.Use(sessions.Load())

	// Pages reachable without a session.
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)
	r.GET("/reset_password_request", resetHandler.RequestPage)
	r.POST("/reset_password_request", resetHandler.Request)
	r.GET("/reset_password/:token", resetHandler.ResetPage)
	r.POST("/reset_password/:token", resetHandler.Reset)

	// Pages behind the session cookie.
	authorized := r.Group("")
	authorized.Use(sessions.RequireLogin())
	{
		authorized.GET("/", authHandler.Index)
		authorized.GET("/index", authHandler.Index)

		authorized.GET("/projects", projectHandler.List)
		authorized.GET("/create_project", projectHandler.CreatePage)
		authorized.POST("/create_project", projectHandler.Create)
		authorized.GET("/projects/:id", projectHandler.Overview)
		authorized.GET("/projects/:id/export", exportHandler.Export)

		authorized.GET("/vendors", vendorHandler.List)
		authorized.GET("/add_vendor", vendorHandler.AddPage)
		authorized.POST("/add_vendor", vendorHandler.Add)
		authorized.GET("/vendors/:id", vendorHandler.Detail)

		authorized.GET("/projects/:id/add_transaction", ledgerHandler.AddTransactionPage)
		authorized.POST("/projects/:id/add_transaction", ledgerHandler.AddTransaction)
		authorized.GET("/projects/:id/add_invoice", ledgerHandler.AddInvoicePage)
		authorized.POST("/projects/:id/add_invoice", ledgerHandler.AddInvoice)
	}

	// Swagger UI for the JSON API.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API for integrations.
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", apiHandler.TokenLogin)

		tokenAuth := v1.Group("")
		tokenAuth.Use(jwt.Auth())
		{
			tokenAuth.GET("/projects", apiHandler.ListProjects)
			tokenAuth.GET("/projects/:id/summary", apiHandler.GetProjectSummary)
			tokenAuth.GET("/vendors", apiHandler.ListVendors)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows the JSON API to be called cross-origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
