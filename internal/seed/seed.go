// Package seed provides the demo catalogue the marketplace starts with.
package seed

import (
	"auction-house/internal/models"
	"fmt"
	"math"
	"time"
)

// DemoBidderID is the bidder that appears on every third seeded bid
const DemoBidderID = "123456"

type listing struct {
	title       string
	description string
	images      []string
	category    string
	startPrice  float64
	started     time.Duration // before now
	ends        time.Duration // after now, negative when already ended
	sellerName  string
	bidCount    int
	watchers    []string
}

var catalogue = []listing{
	{
		title:       "Vintage Rolex Submariner",
		description: "Rare 1969 Rolex Submariner in excellent condition. Original box and papers included.",
		images:      []string{"https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg"},
		category:    "Watches",
		startPrice:  8500,
		started:     3 * day,
		ends:        4 * day,
		sellerName:  "Vintage Timepieces",
		bidCount:    15,
		watchers:    []string{DemoBidderID, "user_42", "user_99"},
	},
	{
		title:       "Limited Edition Gibson Les Paul Custom",
		description: "2018 Gibson Les Paul Custom Shop limited edition in Alpine White with original hardshell case.",
		images:      []string{"https://images.pexels.com/photos/1407322/pexels-photo-1407322.jpeg"},
		category:    "Musical Instruments",
		startPrice:  3999,
		started:     5 * day,
		ends:        2 * day,
		sellerName:  "Music Collectors Inc",
		bidCount:    7,
		watchers:    []string{"user_42", "user_77"},
	},
	{
		title:       "First Edition Harry Potter Book Set",
		description: "Complete first edition set, all seven books in pristine condition.",
		category:    "Books & Literature",
		startPrice:  12000,
		started:     6 * day,
		ends:        1 * day,
		sellerName:  "Rare Books Gallery",
		bidCount:    10,
		watchers:    []string{DemoBidderID, "user_33"},
	},
	{
		title:       "Antique Persian Silk Rug",
		description: "Hand-knotted 19th century Persian silk rug with intricate floral patterns.",
		category:    "Antiques",
		startPrice:  5500,
		started:     4 * day,
		ends:        5 * day,
		sellerName:  "Heritage Antiques",
		bidCount:    8,
		watchers:    []string{"user_22", "user_45"},
	},
	{
		title:       "Restored 1965 Ford Mustang Convertible",
		description: "Fully restored 1965 Mustang convertible with original V8 engine.",
		category:    "Automobiles",
		startPrice:  65000,
		started:     7 * day,
		ends:        3 * day,
		sellerName:  "Classic Auto Traders",
		bidCount:    12,
		watchers:    []string{"user_88", "user_102"},
	},
	{
		title:       "Apple-1 Computer Original",
		description: "One of the few remaining working Apple-1 computers, with documentation.",
		category:    "Electronics",
		startPrice:  250000,
		started:     10 * day,
		ends:        4 * day,
		sellerName:  "Tech History Museum",
		bidCount:    9,
		watchers:    []string{DemoBidderID, "user_55", "user_77"},
	},
	{
		title:       "Original Banksy Artwork",
		description: "Authenticated original Banksy spray paint on canvas.",
		category:    "Art",
		startPrice:  180000,
		started:     8 * day,
		ends:        6 * day,
		sellerName:  "Modern Art Gallery",
		bidCount:    14,
		watchers:    []string{"user_34", "user_87"},
	},
	{
		title:       "Vintage Leica M3 Camera",
		description: "1954 Leica M3 rangefinder with Summicron 50mm lens, fully serviced.",
		category:    "Photography",
		startPrice:  3200,
		started:     5 * day,
		ends:        2 * day,
		sellerName:  "Classic Camera Shop",
		bidCount:    11,
		watchers:    []string{DemoBidderID, "user_91"},
	},
	{
		title:       "Antique Diamond Engagement Ring",
		description: "Art Deco platinum ring with a 2 carat old European cut diamond.",
		category:    "Jewelry",
		startPrice:  9800,
		started:     4 * day,
		ends:        3 * day,
		sellerName:  "Heritage Jewelers",
		bidCount:    8,
		watchers:    []string{"user_44", "user_67"},
	},
	{
		title:       "Rare First Edition Comic Book Collection",
		description: "Collection of first appearance comics, all professionally graded.",
		category:    "Collectibles",
		startPrice:  450000,
		started:     12 * day,
		ends:        8 * day,
		sellerName:  "Collectible Treasures",
		bidCount:    16,
		watchers:    []string{DemoBidderID, "user_29", "user_63"},
	},
	{
		title:       "Rare Stradivarius Violin",
		description: "Authenticated Stradivarius violin with full provenance.",
		category:    "Musical Instruments",
		startPrice:  1200000,
		started:     15 * day,
		ends:        -12 * time.Hour,
		sellerName:  "Fine Instrument Auctions",
		bidCount:    22,
		watchers:    []string{"user_11", "user_73"},
	},
}

const day = 24 * time.Hour

// Auctions builds the demo catalogue relative to now. Bids climb ten percent at a
// time, one hour apart, newest first, and every third bid belongs to DemoBidderID.
func Auctions(now time.Time) []models.Auction {
	out := make([]models.Auction, 0, len(catalogue))
	for i, l := range catalogue {
		n := i + 1
		end := now.Add(l.ends)
		bids := generateBids(n, l.bidCount, l.startPrice, end, now)

		current := l.startPrice
		if len(bids) > 0 {
			current = bids[0].Amount
		}

		images := l.images
		if len(images) == 0 {
			images = []string{fmt.Sprintf("https://images.pexels.com/photos/placeholder-%d.jpeg", n)}
		}

		out = append(out, models.Auction{
			ID:           fmt.Sprintf("auction_%d", n),
			Title:        l.title,
			Description:  l.description,
			Images:       append([]string(nil), images...),
			Category:     l.category,
			StartPrice:   l.startPrice,
			CurrentPrice: current,
			StartTime:    now.Add(-l.started),
			EndTime:      end,
			SellerID:     fmt.Sprintf("seller_%d", n),
			SellerName:   l.sellerName,
			IsActive:     l.ends > 0,
			Bids:         bids,
			Watchlist:    append([]string(nil), l.watchers...),
		})
	}
	return out
}

// generateBids returns count strictly increasing bids, newest first. The newest
// bid is placed an hour before the earlier of now and end.
func generateBids(auction, count int, startPrice float64, end, now time.Time) []models.Bid {
	latest := now
	if end.Before(latest) {
		latest = end
	}
	latest = latest.Add(-time.Hour)

	amounts := make([]float64, count)
	price := startPrice
	for i := 0; i < count; i++ {
		price = math.Floor(price * 1.1)
		amounts[i] = price
	}

	bids := make([]models.Bid, 0, count)
	for i := count - 1; i >= 0; i-- {
		userID := fmt.Sprintf("user_%d", 100+(auction*7+i)%900)
		if i%3 == 0 {
			userID = DemoBidderID
		}
		bids = append(bids, models.Bid{
			ID:     fmt.Sprintf("bid_%d_%d", auction, i),
			UserID: userID,
			Amount: amounts[i],
			Time:   latest.Add(-time.Duration(count-1-i) * time.Hour),
		})
	}
	return bids
}

// Loader accepts seeded auctions
type Loader interface {
	AddAuction(auction models.Auction)
}

// Load adds the demo catalogue to repo
func Load(repo Loader, now time.Time) int {
	auctions := Auctions(now)
	for _, a := range auctions {
		repo.AddAuction(a)
	}
	return len(auctions)
}
