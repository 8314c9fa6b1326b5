package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/memstore"
	"boutique-storefront/internal/middleware"
)

// Stores bundles the data layer behind the mock API.
type Stores struct {
	Products *memstore.ProductStore
	Orders   *memstore.OrderStore
	Users    *memstore.UserStore
}

func NewStores() *Stores {
	return &Stores{
		Products: memstore.NewProductStore(),
		Orders:   memstore.NewOrderStore(),
		Users:    memstore.NewUserStore(),
	}
}

// NewRouter wires the REST contract the storefront client consumes.
func NewRouter(stores *Stores, jwtSecret string, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := NewAuthHandler(stores.Users, jwtSecret)
	productHandler := NewProductHandler(stores.Products)
	orderHandler := NewOrderHandler(stores.Orders, stores.Products)
	adminHandler := NewAdminHandler(stores.Users, stores.Orders, stores.Products)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/admin/login", authHandler.AdminLogin)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/best", productHandler.GetBestProducts)
		api.GET("/products/:id", productHandler.GetProduct)

		api.POST("/orders", orderHandler.CreateOrder)
	}

	admin := r.Group("/api")
	admin.Use(middleware.AdminMiddleware(jwtSecret))
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.GET("/orders", orderHandler.ListOrders)
		admin.POST("/orders/:id/approve", orderHandler.ApproveOrder)
		admin.POST("/orders/:id/reject", orderHandler.RejectOrder)
		admin.DELETE("/orders/:id", orderHandler.DeleteOrder)
		admin.GET("/orders/:id/pdf", orderHandler.OrderPDF)

		admin.GET("/admin/stats", adminHandler.GetStats)
		admin.GET("/admin/users", adminHandler.ListUsers)
		admin.POST("/admin/users", adminHandler.CreateUser)
		admin.PUT("/admin/users/:id", adminHandler.UpdateUser)
		admin.POST("/admin/users/:id/approve", adminHandler.ApproveUser)
		admin.DELETE("/admin/users/:id", adminHandler.DeleteUser)
	}

	return r
}
