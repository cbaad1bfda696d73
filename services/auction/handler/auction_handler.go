package handler

import (
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/session"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_auction_handler.go -package=handler auction-house/services/auction/handler AuctionServiceInterface

type AuctionServiceInterface interface {
	ListAll() []models.Auction
	GetByID(auctionID string) (models.Auction, bool)
	GetBySeller(sellerID string) []models.Auction
	GetWatchedBy(userID string) []models.Auction
	GetBidsByUser(userID string) []models.UserBid
	Search(query string, filters models.SearchFilters) []models.Auction
	Featured() []models.Auction
	Dashboard(userID string) models.Dashboard
	Create(input models.CreateAuctionInput) (string, error)
	PlaceBid(auctionID, userID string, amount float64) (models.Bid, error)
	ToggleWatchlist(auctionID, userID string) (bool, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	now     func() time.Time
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{
		service: service,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	var query helpers.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	var auctions []models.Auction
	if query.IsEmpty() {
		auctions = h.service.ListAll()
	} else {
		auctions = h.service.Search(query.Query, query.Filters())
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(auctions, h.now()), "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"query":    query.Query,
		"category": query.Category,
		"count":    len(auctions),
	})
}

// FeaturedHandler handles GET /auctions/featured
func (h *AuctionHandler) FeaturedHandler(c *gin.Context) {
	auctions := h.service.Featured()

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(auctions, h.now()), "featured auctions retrieved successfully")
	helpers.LogSuccess("FeaturedHandler", "featured auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, ok := h.service.GetByID(auctionID)
	if !ok {
		helpers.RespondError(c, "GetAuctionHandler", auctionerrors.ErrAuctionNotFound, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction, h.now()), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"bids":       len(auction.Bids),
	})
}

// CreateAuctionHandler handles POST /auctions. The seller is the signed-in user.
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	user, ok := session.UserFrom(c)
	if !ok {
		helpers.RespondError(c, "CreateAuctionHandler", auctionerrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auctionID, err := h.service.Create(models.CreateAuctionInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Category:    req.Category,
		StartPrice:  req.StartPrice,
		EndTime:     req.EndTime,
		SellerID:    user.ID,
		SellerName:  user.Name,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{
			"seller_id": user.ID,
			"title":     req.Title,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateAuctionResponse{AuctionID: auctionID}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auctionID,
		"seller_id":  user.ID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	user, ok := session.UserFrom(c)
	if !ok {
		helpers.RespondError(c, "PlaceBidHandler", auctionerrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	bid, err := h.service.PlaceBid(auctionID, user.ID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.ID,
			"amount":     req.Amount,
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.ID,
		AuctionID: auctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.Time.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": auctionID,
		"user_id":    user.ID,
		"amount":     bid.Amount,
	})
}

// ToggleWatchlistHandler handles POST /auctions/:auction_id/watchlist
func (h *AuctionHandler) ToggleWatchlistHandler(c *gin.Context) {
	user, ok := session.UserFrom(c)
	if !ok {
		helpers.RespondError(c, "ToggleWatchlistHandler", auctionerrors.ErrUnauthenticated, nil)
		return
	}

	auctionID := c.Param("auction_id")
	watching, err := h.service.ToggleWatchlist(auctionID, user.ID)
	if err != nil {
		helpers.RespondError(c, "ToggleWatchlistHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.ID,
		})
		return
	}

	message := "removed from watchlist"
	if watching {
		message = "added to watchlist"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.WatchlistResponse{AuctionID: auctionID, Watching: watching}, message)
	helpers.LogSuccess("ToggleWatchlistHandler", message, map[string]any{
		"auction_id": auctionID,
		"user_id":    user.ID,
	})
}

// GetAuctionsBySellerHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetAuctionsBySellerHandler(c *gin.Context) {
	sellerID := c.Param("user_id")
	auctions := h.service.GetBySeller(sellerID)

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(auctions, h.now()), "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsBySellerHandler", "auctions retrieved successfully", map[string]any{
		"user_id": sellerID,
		"count":   len(auctions),
	})
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids := h.service.GetBidsByUser(userID)

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserBidResponses(bids, h.now()), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id":    userID,
		"bids_count": len(bids),
	})
}

// GetWatchlistHandler handles GET /users/:user_id/watchlist
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions := h.service.GetWatchedBy(userID)

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(auctions, h.now()), "watchlist retrieved successfully")
	helpers.LogSuccess("GetWatchlistHandler", "watchlist retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}

// DashboardHandler handles GET /dashboard for the signed-in user
func (h *AuctionHandler) DashboardHandler(c *gin.Context) {
	user, ok := session.UserFrom(c)
	if !ok {
		helpers.RespondError(c, "DashboardHandler", auctionerrors.ErrUnauthenticated, nil)
		return
	}

	dashboard := h.service.Dashboard(user.ID)

	utils.JSONResponse(c, http.StatusOK, helpers.ToDashboardResponse(dashboard, h.now()), "dashboard retrieved successfully")
	helpers.LogSuccess("DashboardHandler", "dashboard retrieved successfully", map[string]any{
		"user_id":         user.ID,
		"active_listings": len(dashboard.ActiveListings),
		"won":             len(dashboard.Won),
	})
}
