package auction

import (
	"auction-house/internal/models"
	"sort"
	"strings"
	"time"
)

// The functions below derive views from a snapshot of auctions. They hold no state,
// so a view is always as fresh as the snapshot it is given.

func filter(auctions []models.Auction, keep func(models.Auction) bool) []models.Auction {
	out := make([]models.Auction, 0, len(auctions))
	for _, a := range auctions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Search keeps auctions whose title, description or category contains query
// (case-insensitive) and which pass every set filter
func Search(auctions []models.Auction, query string, filters models.SearchFilters, now time.Time) []models.Auction {
	q := strings.ToLower(query)

	return filter(auctions, func(a models.Auction) bool {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) &&
			!strings.Contains(strings.ToLower(a.Category), q) {
			return false
		}
		if filters.Category != "" && a.Category != filters.Category {
			return false
		}
		if filters.MinPrice != nil && a.CurrentPrice < *filters.MinPrice {
			return false
		}
		if filters.MaxPrice != nil && a.CurrentPrice > *filters.MaxPrice {
			return false
		}
		if filters.OnlyActive && !a.IsOpen(now) {
			return false
		}
		return true
	})
}

// FeaturedScore ranks an auction for the featured view: ten points per bid plus
// the milliseconds left until it ends
func FeaturedScore(a models.Auction, now time.Time) float64 {
	return float64(len(a.Bids)*10) + float64(a.EndTime.Sub(now).Milliseconds())
}

// Featured returns at most limit open auctions with at least one bid, highest
// score first. Equal scores keep their input order.
func Featured(auctions []models.Auction, now time.Time, limit int) []models.Auction {
	candidates := filter(auctions, func(a models.Auction) bool {
		return a.IsOpen(now) && len(a.Bids) > 0
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return FeaturedScore(candidates[i], now) > FeaturedScore(candidates[j], now)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// BidsByUser pairs every bid userID placed with its auction, most recent bid first
func BidsByUser(auctions []models.Auction, userID string) []models.UserBid {
	out := []models.UserBid{}
	for _, a := range auctions {
		for _, b := range a.Bids {
			if b.UserID == userID {
				out = append(out, models.UserBid{Auction: a, Bid: b})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bid.Time.After(out[j].Bid.Time)
	})
	return out
}

// BuildDashboard splits a user's listings, bids and watched auctions into the
// groups shown on the account page
func BuildDashboard(auctions []models.Auction, userID string, now time.Time) models.Dashboard {
	d := models.Dashboard{
		ActiveListings: []models.Auction{},
		EndedListings:  []models.Auction{},
		ActiveBids:     []models.UserBid{},
		Won:            []models.Auction{},
		Watching:       []models.Auction{},
	}

	for _, a := range auctions {
		if a.SellerID == userID {
			if a.IsOpen(now) {
				d.ActiveListings = append(d.ActiveListings, a)
			} else {
				d.EndedListings = append(d.EndedListings, a)
			}
		}
		if a.IsWatchedBy(userID) {
			d.Watching = append(d.Watching, a)
		}
		if !a.IsOpen(now) && len(a.Bids) > 0 && a.Bids[0].UserID == userID {
			d.Won = append(d.Won, a)
		}
	}

	for _, ub := range BidsByUser(auctions, userID) {
		if ub.Auction.IsOpen(now) {
			d.ActiveBids = append(d.ActiveBids, ub)
		}
	}
	return d
}
