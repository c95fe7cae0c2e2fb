// Package router registers the public API routes.
package router

import (
	"food/internal/delivery/api/middleware"
	"food/internal/delivery/api/router/handler"
	"food/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	RestaurantHandler   *handler.RestaurantHandler
	RatingHandler       *handler.RatingHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	PhotoHandler        *handler.PhotoHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	health        *handler.HealthHandler
	auth          *handler.AuthHandler
	users         *handler.UserHandler
	restaurants   *handler.RestaurantHandler
	ratings       *handler.RatingHandler
	favorites     *handler.FavoriteHandler
	notifications *handler.NotificationHandler
	photos        *handler.PhotoHandler
	authenticator *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		health:        params.HealthHandler,
		auth:          params.AuthHandler,
		users:         params.UserHandler,
		restaurants:   params.RestaurantHandler,
		ratings:       params.RatingHandler,
		favorites:     params.FavoriteHandler,
		notifications: params.NotificationHandler,
		photos:        params.PhotoHandler,
		authenticator: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.Check)

	// Public routes
	public := e.Group("/api")
	{
		public.POST("/auth/login", r.auth.Login)
		public.POST("/auth/register", r.auth.Register)
		public.POST("/users", r.users.Create)
	}

	api := e.Group("/api", r.authenticator.Authenticate)
	ownerOnly := r.authenticator.RequireRole(entity.UserTypeRestaurantOwner)

	users := api.Group("/users")
	{
		users.GET("", r.users.List)
		users.GET("/active", r.users.ListActive)
		users.GET("/email/:email", r.users.GetByEmail)
		users.GET("/email/:email/exists", r.users.ExistsByEmail)
		users.GET("/type/:type", r.users.ListByType)
		users.GET("/type/:type/count", r.users.CountByType)
		users.GET("/:id", r.users.Get)
		users.PUT("/:id", r.users.Update)
		users.PATCH("/:id/status", r.users.ToggleStatus)
		users.PATCH("/:id/push-token", r.users.UpdatePushToken)
		users.PATCH("/:id/password", r.users.ChangePassword)
	}

	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", r.restaurants.List)
		restaurants.GET("/active", r.restaurants.ListActive)
		restaurants.GET("/search", r.restaurants.Search)
		restaurants.GET("/price", r.restaurants.ListByPriceRange)
		restaurants.GET("/nearby", r.restaurants.ListNearby)
		restaurants.GET("/owner/:ownerId", r.restaurants.ListByOwner)
		restaurants.GET("/category/:category", r.restaurants.ListByCategory)
		restaurants.GET("/:id", r.restaurants.Get)
		restaurants.GET("/:id/qr", r.restaurants.ShareQRCode)
		restaurants.POST("", r.restaurants.Create, ownerOnly)
		restaurants.PUT("/:id", r.restaurants.Update, ownerOnly)
		restaurants.PATCH("/:id/status", r.restaurants.ToggleStatus, ownerOnly)
	}

	ratings := api.Group("/ratings")
	{
		ratings.GET("", r.ratings.List)
		ratings.GET("/restaurant/:id", r.ratings.ListByRestaurant)
		ratings.GET("/restaurant/:id/summary", r.ratings.RestaurantSummary)
		ratings.GET("/user/:id", r.ratings.ListByUser)
		ratings.GET("/:id", r.ratings.Get)
		ratings.POST("", r.ratings.Create)
		ratings.PUT("/:id", r.ratings.Update)
		ratings.DELETE("/:id", r.ratings.Delete)
	}

	favorites := api.Group("/favorites")
	{
		favorites.GET("", r.favorites.List)
		favorites.GET("/user/:userId", r.favorites.ListByUser)
		favorites.GET("/user/:userId/count", r.favorites.CountByUser)
		favorites.GET("/user/:userId/restaurant/:restaurantId/exists", r.favorites.Exists)
		favorites.GET("/restaurant/:restaurantId", r.favorites.ListByRestaurant)
		favorites.GET("/restaurant/:restaurantId/count", r.favorites.CountByRestaurant)
		favorites.GET("/:id", r.favorites.Get)
		favorites.POST("", r.favorites.Create)
		favorites.DELETE("/user/:userId/restaurant/:restaurantId", r.favorites.RemoveByUserAndRestaurant)
		favorites.DELETE("/:id", r.favorites.Delete)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", r.notifications.List)
		notifications.GET("/date-range", r.notifications.ListByDateRange)
		notifications.GET("/type/:type", r.notifications.ListByType)
		notifications.GET("/user/:userId", r.notifications.ListByUser)
		notifications.GET("/user/:userId/unread", r.notifications.ListUnreadByUser)
		notifications.GET("/user/:userId/unread/count", r.notifications.CountUnreadByUser)
		notifications.PATCH("/user/:userId/read-all", r.notifications.MarkAllAsRead)
		notifications.GET("/:id", r.notifications.Get)
		notifications.POST("", r.notifications.Create)
		notifications.PUT("/:id", r.notifications.Update)
		notifications.DELETE("/:id", r.notifications.Delete)
		notifications.PATCH("/:id/read", r.notifications.MarkAsRead)
	}

	photos := api.Group("/photos")
	{
		photos.POST("/upload", r.photos.Upload)
		photos.GET("/restaurant/:id", r.photos.ListByRestaurant)
		photos.PUT("/:id/cover", r.photos.SetCover)
		photos.DELETE("/:id", r.photos.Delete)
	}
}
