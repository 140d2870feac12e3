package api

import (
	"log"
	stdhttp "net/http"

	intconfig "transtour/internal/config"
	h "transtour/internal/http/handlers"
	"transtour/internal/http/middleware"
	"transtour/internal/routing"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware, handler dependencies, and all routes.
func NewRouter(env intconfig.Env, routes *routing.Aggregator) *gin.Engine {
	h.Init(h.Deps{
		Routes:            routes,
		TolerancePercent:  env.TolerancePercent,
		DefaultOffsetDays: env.DefaultDepartureOffsetDays,
		JWTSecret:         []byte(env.JWTSecret),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	adminOnly := []gin.HandlerFunc{
		middleware.RequireAuth([]byte(env.JWTSecret)),
		middleware.RequireRoles("owner", "admin"),
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", func(c *gin.Context) {
			if err := intconfig.EnsureDB(env); err != nil {
				c.JSON(stdhttp.StatusInternalServerError, gin.H{"error": "database tidak merespon: " + err.Error()})
				return
			}
			h.DBCheck(c)
		})
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Orders (customer-facing creation + quote, admin listing)
		orders := api.Group("/orders")
		orders.POST("/transport", h.CreateTransportOrder)
		orders.POST("/package", h.CreatePackageOrder)
		orders.POST("/quote", h.QuoteTransportOrder)
		orders.GET("", append(adminOnly, h.GetOrders)...)
		orders.GET("/:id", append(adminOnly, h.GetOrderByID)...)
		orders.GET("/:id/invoice", h.GetOrderInvoicePDF)

		// Payments (admin validation screen)
		payments := api.Group("/payments", adminOnly...)
		payments.GET("", h.GetPayments)
		payments.PUT("/:id/confirm", h.ConfirmPayment)

		// Vehicle types
		vehicles := api.Group("/vehicle-types")
		vehicles.GET("", h.GetVehicleTypes)
		vehicles.POST("", append(adminOnly, h.CreateVehicleType)...)
		vehicles.PUT("/:id", append(adminOnly, h.UpdateVehicleType)...)
		vehicles.DELETE("/:id", append(adminOnly, h.DeleteVehicleType)...)

		// Tour packages
		packages := api.Group("/packages")
		packages.GET("", h.GetTourPackages)
		packages.GET("/:id", h.GetTourPackageByID)
		packages.POST("", append(adminOnly, h.CreateTourPackage)...)
		packages.PUT("/:id", append(adminOnly, h.UpdateTourPackage)...)
		packages.DELETE("/:id", append(adminOnly, h.DeleteTourPackage)...)

		// Articles
		articles := api.Group("/articles")
		articles.GET("", h.GetArticles)
		articles.GET("/:id", h.GetArticleByID)
		articles.POST("", append(adminOnly, h.CreateArticle)...)
		articles.PUT("/:id", append(adminOnly, h.UpdateArticle)...)
		articles.DELETE("/:id", append(adminOnly, h.DeleteArticle)...)
	}

	h.SetRouter(r)
	return r
}
