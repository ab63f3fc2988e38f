package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"minishop/internal/metrics"
)

func (app *application) routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(app.recoverPanic())
	r.Use(app.requestID)
	r.Use(app.logRequest)
	r.Use(app.measure)
	r.Use(cors.Default())
	r.Use(app.rateLimit())

	r.GET("/healthz", app.healthcheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", app.register)
	authGroup.POST("/login", app.login)
	authGroup.GET("/me", app.requireAuth, app.me)

	products := v1.Group("/products")
	products.GET("", app.listProducts)
	products.GET("/:id", app.showProduct)
	products.POST("", app.requireAuth, app.requireAdmin, app.createProduct)
	products.PATCH("/:id", app.requireAuth, app.requireAdmin, app.updateProduct)
	products.DELETE("/:id", app.requireAuth, app.requireAdmin, app.deleteProduct)

	cart := v1.Group("/cart", app.requireAuth)
	cart.GET("", app.showCart)
	cart.POST("/add", app.addToCart)
	cart.DELETE("/:productId", app.removeFromCart)

	orders := v1.Group("/orders", app.requireAuth)
	orders.POST("", app.createOrder)
	orders.GET("/my-orders", app.myOrders)
	orders.GET("/all", app.requireAdmin, app.allOrders)
	orders.GET("/:id", app.showOrder)
	orders.PATCH("/:id/status", app.requireAdmin, app.updateOrderStatus)
	orders.PATCH("/:id/cancel", app.cancelOrder)

	return r
}
