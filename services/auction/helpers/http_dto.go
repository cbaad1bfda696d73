package helpers

import (
	"time"

	"auction-house/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Images      []string  `json:"images" binding:"max=5"`
	StartPrice  float64   `json:"start_price" binding:"required,gt=0"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SearchQuery is bound from the query string of GET /auctions
type SearchQuery struct {
	Query      string   `form:"q"`
	Category   string   `form:"category"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	OnlyActive bool     `form:"only_active"`
}

// IsEmpty reports whether no search term or filter was supplied
func (q SearchQuery) IsEmpty() bool {
	return q.Query == "" && q.Category == "" && q.MinPrice == nil && q.MaxPrice == nil && !q.OnlyActive
}

// Filters converts the query into store search filters
func (q SearchQuery) Filters() models.SearchFilters {
	return models.SearchFilters{
		Category:   q.Category,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		OnlyActive: q.OnlyActive,
	}
}

type CreateAuctionResponse struct {
	AuctionID string `json:"auction_id"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type WatchlistResponse struct {
	AuctionID string `json:"auction_id"`
	Watching  bool   `json:"watching"`
}

type AuctionResponse struct {
	models.Auction
	IsOpen   bool             `json:"is_open"`
	TimeLeft models.Countdown `json:"time_left"`
}

type UserBidResponse struct {
	Auction AuctionResponse `json:"auction"`
	Bid     models.Bid      `json:"bid"`
}

type DashboardResponse struct {
	ActiveListings []AuctionResponse `json:"active_listings"`
	EndedListings  []AuctionResponse `json:"ended_listings"`
	ActiveBids     []UserBidResponse `json:"active_bids"`
	Won            []AuctionResponse `json:"won"`
	Watching       []AuctionResponse `json:"watching"`
}

// ToAuctionResponse decorates an auction with its state as seen at now
func ToAuctionResponse(a models.Auction, now time.Time) AuctionResponse {
	return AuctionResponse{
		Auction:  a,
		IsOpen:   a.IsOpen(now),
		TimeLeft: models.Remaining(a.EndTime, now),
	}
}

// ToAuctionResponses converts a list, never returning nil
func ToAuctionResponses(auctions []models.Auction, now time.Time) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, ToAuctionResponse(a, now))
	}
	return out
}

// ToUserBidResponses converts a user's bids, never returning nil
func ToUserBidResponses(bids []models.UserBid, now time.Time) []UserBidResponse {
	out := make([]UserBidResponse, 0, len(bids))
	for _, ub := range bids {
		out = append(out, UserBidResponse{Auction: ToAuctionResponse(ub.Auction, now), Bid: ub.Bid})
	}
	return out
}

// ToDashboardResponse converts a dashboard
func ToDashboardResponse(d models.Dashboard, now time.Time) DashboardResponse {
	return DashboardResponse{
		ActiveListings: ToAuctionResponses(d.ActiveListings, now),
		EndedListings:  ToAuctionResponses(d.EndedListings, now),
		ActiveBids:     ToUserBidResponses(d.ActiveBids, now),
		Won:            ToAuctionResponses(d.Won, now),
		Watching:       ToAuctionResponses(d.Watching, now),
	}
}
