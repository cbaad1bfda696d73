package models

import "time"

// User represents the signed-in identity acting on auctions
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Bid represents an accepted offer on an auction. Bids are never edited once stored.
type Bid struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
}

// Auction represents a time-boxed listing with its embedded bids and watchers
type Auction struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	Category     string    `json:"category"`
	StartPrice   float64   `json:"start_price"`
	CurrentPrice float64   `json:"current_price"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	SellerID     string    `json:"seller_id"`
	SellerName   string    `json:"seller_name"`
	IsActive     bool      `json:"is_active"`
	Bids         []Bid     `json:"bids"`      // newest first
	Watchlist    []string  `json:"watchlist"` // user ids, each at most once
}

// IsOpen reports whether the auction accepts bids at now.
// The stored flag and the end time must both agree.
func (a Auction) IsOpen(now time.Time) bool {
	return a.IsActive && now.Before(a.EndTime)
}

// IsWatchedBy reports whether userID is on the auction's watchlist
func (a Auction) IsWatchedBy(userID string) bool {
	for _, id := range a.Watchlist {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share slices with the store
func (a Auction) Clone() Auction {
	c := a
	c.Images = append([]string(nil), a.Images...)
	c.Bids = append([]Bid(nil), a.Bids...)
	c.Watchlist = append([]string(nil), a.Watchlist...)
	return c
}

// CreateAuctionInput carries the seller-supplied fields for a new listing
type CreateAuctionInput struct {
	Title       string
	Description string
	Images      []string
	Category    string
	StartPrice  float64
	EndTime     time.Time
	SellerID    string
	SellerName  string
}

// SearchFilters narrows a search. Nil pointers and empty strings are not applied.
type SearchFilters struct {
	Category   string
	MinPrice   *float64
	MaxPrice   *float64
	OnlyActive bool
}

// UserBid pairs a bid with the auction it was placed on
type UserBid struct {
	Auction Auction `json:"auction"`
	Bid     Bid     `json:"bid"`
}

// Dashboard aggregates everything a user sees on their account page
type Dashboard struct {
	ActiveListings []Auction `json:"active_listings"`
	EndedListings  []Auction `json:"ended_listings"`
	ActiveBids     []UserBid `json:"active_bids"`
	Won            []Auction `json:"won"`
	Watching       []Auction `json:"watching"`
}
