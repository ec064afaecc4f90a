// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	SellerHandler  *handler.SellerHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	AddressHandler *handler.AddressHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user    *handler.UserHandler
	seller  *handler.SellerHandler
	product *handler.ProductHandler
	cart    *handler.CartHandler
	address *handler.AddressHandler
	order   *handler.OrderHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:    params.UserHandler,
		seller:  params.SellerHandler,
		product: params.ProductHandler,
		cart:    params.CartHandler,
		address: params.AddressHandler,
		order:   params.OrderHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.user.Register)
		userGroup.POST("/login", r.user.Login)
		userGroup.GET("/is-auth", r.user.IsAuth, r.auth.AuthenticateUser)
		userGroup.GET("/logout", r.user.Logout)
		userGroup.PUT("/update-profile", r.user.UpdateProfile, r.auth.AuthenticateUser)
		userGroup.POST("/upload-profile-pic", r.user.UploadProfilePicture, r.auth.AuthenticateUser)
	}

	sellerGroup := api.Group("/seller")
	{
		sellerGroup.POST("/login", r.seller.Login)
		sellerGroup.GET("/is-auth", r.seller.IsAuth, r.auth.AuthenticateSeller)
		sellerGroup.GET("/logout", r.seller.Logout)
		sellerGroup.GET("/profile", r.seller.GetProfile, r.auth.AuthenticateSeller)
		sellerGroup.PUT("/profile", r.seller.UpdateProfile, r.auth.AuthenticateSeller)
	}

	productGroup := api.Group("/product")
	{
		productGroup.POST("/add", r.product.Add, r.auth.AuthenticateSeller)
		productGroup.GET("/list", r.product.List)
		productGroup.GET("/ratings/:id", r.product.Ratings)
		productGroup.GET("/can-rate/:id", r.product.CanRate, r.auth.AuthenticateUser)
		productGroup.GET("/qr/:id", r.product.QR, r.auth.AuthenticateSeller)
		productGroup.POST("/stock", r.product.ChangeStock, r.auth.AuthenticateSeller)
		productGroup.POST("/rate", r.product.Rate, r.auth.AuthenticateUser)
		// Registered after the static routes; echo matches those first.
		productGroup.GET("/:id", r.product.Get)
		productGroup.PUT("/:id", r.product.Update, r.auth.AuthenticateSeller)
		productGroup.DELETE("/:id", r.product.Delete, r.auth.AuthenticateSeller)
	}

	cartGroup := api.Group("/cart", r.auth.AuthenticateUser)
	{
		cartGroup.GET("", r.cart.Get)
		cartGroup.POST("/update", r.cart.Update)
		cartGroup.POST("/add", r.cart.AddItem)
		cartGroup.POST("/remove", r.cart.RemoveItem)
		cartGroup.GET("/summary", r.cart.Summary)
	}

	addressGroup := api.Group("/address", r.auth.AuthenticateUser)
	{
		addressGroup.POST("/add", r.address.Add)
		addressGroup.GET("/get", r.address.List)
		addressGroup.DELETE("/:id", r.address.Delete)
	}

	orderGroup := api.Group("/order")
	{
		orderGroup.POST("/cod", r.order.PlaceCOD, r.auth.AuthenticateUser)
		orderGroup.GET("/user", r.order.ListUser, r.auth.AuthenticateUser)
		orderGroup.GET("/seller", r.order.ListAll, r.auth.AuthenticateSeller)
		orderGroup.PATCH("/status/:orderId", r.order.UpdateStatus, r.auth.AuthenticateSeller)
	}
}
