package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bazartoghar/storefront-golang/internal/checkout"
	"github.com/bazartoghar/storefront-golang/internal/handlers"
	"github.com/bazartoghar/storefront-golang/internal/middleware"
)

// registerValidations adds the storefront's custom binding rules to gin's
// validator engine.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case checkout.MethodESewa, checkout.MethodKhalti, checkout.MethodCOD:
			return true
		}
		return false
	})
}

// CORSMiddleware allows the storefront frontend to call the API from the
// browser, including the custom profile header.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Profile-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	registerValidations()

	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Session ---
		v1.POST("/session", h.CreateSession)

		// --- Catalog Routes (Public) ---
		v1.GET("/categories", h.GetAllCategories)
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/trending", h.GetTrendingProducts)
		v1.GET("/products/:id", h.GetProductDetail)

		// --- Review Routes ---
		v1.GET("/products/:id/reviews", h.GetProductReviews)
		v1.POST("/products/:id/reviews", h.SubmitProductReview)

		// --- Newsletter & Coupons ---
		v1.POST("/subscribe", h.Subscribe)
		v1.POST("/coupons/check", h.CheckCoupon)
		v1.POST("/coupons/redeem", h.RedeemCoupon)

		// --- Content Routes ---
		v1.GET("/blog-posts", h.GetBlogPosts)
		v1.GET("/offers/active", h.GetActiveOffers)

		// --- Profile-Scoped Routes ---
		// Everything below needs a profile identity (header or session
		// token); the middleware rejects requests without one.
		profile := v1.Group("/")
		profile.Use(middleware.ProfileMiddleware())
		{
			profile.GET("/cart", h.GetCart)
			profile.POST("/cart/items", h.AddToCart)
			profile.PUT("/cart/items", h.UpdateCartItem)
			profile.DELETE("/cart/items", h.RemoveCartItem)
			profile.DELETE("/cart", h.ClearCart)

			profile.GET("/favorites", h.GetFavorites)
			profile.POST("/favorites/:product_id", h.ToggleFavorite)

			profile.GET("/preferences/category", h.GetSelectedCategory)
			profile.PUT("/preferences/category", h.SetSelectedCategory)

			profile.POST("/checkout", h.Checkout)
		}
	}

	return router
}
