package server

import (
	auctionhandler "auction-house/services/auction/handler"
	identityhandler "auction-house/services/identity/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles what the router dispatches to
type Services struct {
	Auctions auctionhandler.AuctionServiceInterface
	Identity identityhandler.IdentityServiceInterface
	Sessions Sessions
}

// Sessions issues and verifies session tokens
type Sessions interface {
	identityhandler.TokenIssuer
	TokenVerifier
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(svc.Auctions)
	identityHandler := identityhandler.NewIdentityHandler(svc.Identity, svc.Sessions)
	guard := RequireIdentity(svc.Sessions, svc.Identity)

	auth := router.Group("/auth")
	{
		auth.POST("/login", identityHandler.LoginHandler)
		auth.POST("/register", identityHandler.RegisterHandler)
		auth.POST("/logout", guard, identityHandler.LogoutHandler)
		auth.GET("/me", guard, identityHandler.MeHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/featured", auctionHandler.FeaturedHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("", guard, auctionHandler.CreateAuctionHandler)
		auctions.POST("/:auction_id/bids", guard, auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/watchlist", guard, auctionHandler.ToggleWatchlistHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetAuctionsBySellerHandler)
		users.GET("/:user_id/bids", auctionHandler.GetBidsByUserHandler)
		users.GET("/:user_id/watchlist", auctionHandler.GetWatchlistHandler)
	}

	router.GET("/dashboard", guard, auctionHandler.DashboardHandler)

	return router
}
