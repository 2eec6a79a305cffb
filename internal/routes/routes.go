package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"grocerly_back_end/internal/handlers"
	"grocerly_back_end/internal/handlers/product"
	"grocerly_back_end/internal/handlers/user"
	"grocerly_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	// CORS pour l'app Expo
	allowed := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	if len(allowed) == 1 && allowed[0] == "" {
		allowed = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.APIRateLimit())

	api := r.Group("/api")

	// --- Auth ---
	api.POST("/auth/signup", user.Signup)
	api.POST("/auth/login", user.Login)
	api.GET("/auth/:provider", handlers.BeginOAuth)
	api.GET("/auth/:provider/callback", handlers.OAuthCallback)
	api.GET("/auth/:provider/url", handlers.OAuthNativeURL)
	api.POST("/auth/:provider/token", handlers.OAuthNativeExchange)

	// --- Catalogue (lecture publique) ---
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/filter", product.FilterProducts)
	api.GET("/products/id/:id", product.GetProductByID)
	api.GET("/categories", product.GetAllCategories)
	api.GET("/categories/:id", product.GetCategoryByID)

	// --- Catalogue (mutations admin) ---
	admin := api.Group("/", middleware.AuthRequired(), middleware.RequireAdmin())
	admin.POST("/products", product.CreateProduct)
	admin.POST("/products/image", product.UploadImage)
	admin.DELETE("/products/id/:id", product.DeleteProductByID)
	admin.DELETE("/products", product.DeleteAllProducts)
	admin.POST("/categories", product.CreateCategory)
	admin.DELETE("/categories/:id", product.DeleteCategoryByID)

	// --- Notifications push ---
	api.POST("/notifications/register", handlers.RegisterPushToken)
	api.DELETE("/notifications/register", handlers.UnregisterPushToken)

	// --- Espace authentifié ---
	auth := api.Group("/", middleware.AuthRequired())

	auth.GET("/profile/me", user.GetMyProfile)
	auth.PUT("/profile", user.UpdateProfileField)

	auth.GET("/cart", user.GetCart)
	auth.POST("/cart/add", user.AddToCart)
	auth.POST("/cart/increase/:productId", user.IncreaseQuantity)
	auth.POST("/cart/decrease/:productId", user.DecreaseQuantity)
	auth.DELETE("/cart/item/:productId", user.RemoveFromCart)
	auth.DELETE("/cart", user.ClearCart)
	auth.GET("/cart/ws", user.CartWebSocket)

	auth.POST("/orders", user.PlaceOrder)
	auth.GET("/orders/mine", user.GetMyOrders)
	auth.GET("/orders/:id", user.GetOrderByID)
	auth.GET("/orders/:id/receipt.pdf", user.GetOrderReceiptPDF)

	auth.POST("/payment/card", handlers.CaptureCard)
}
