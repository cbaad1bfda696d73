package auction

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/network"
	"auction-house/internal/notify"
	"auction-house/internal/repository"
	"auction-house/utils"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultImage is used for listings created without any image
const DefaultImage = "https://images.pexels.com/photos/5797991/pexels-photo-5797991.jpeg"

// FeaturedLimit is the number of auctions returned by Featured
const FeaturedLimit = 4

// AuctionService defines the business logic for listing, bidding and watching auctions
type AuctionService struct {
	repo     repository.AuctionDB
	link     network.Link
	notifier notify.Notifier
	now      func() time.Time
}

// Option configures an AuctionService
type Option func(*AuctionService)

// WithLink sets the simulated network used by Create and PlaceBid
func WithLink(link network.Link) Option {
	return func(s *AuctionService) { s.link = link }
}

// WithNotifier sets where operation outcomes are reported
func WithNotifier(n notify.Notifier) Option {
	return func(s *AuctionService) { s.notifier = n }
}

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) { s.now = now }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:     repo,
		link:     network.Instant(),
		notifier: notify.Discard{},
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns every auction, newest created first
func (s *AuctionService) ListAll() []models.Auction {
	return s.repo.ListAuctions()
}

// GetByID returns the auction with the given id. A missing auction is reported
// through ok, never as an error.
func (s *AuctionService) GetByID(auctionID string) (models.Auction, bool) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		if !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			utils.Warn("service: unexpected lookup failure", map[string]any{"auction_id": auctionID, "error": err.Error()})
		}
		return models.Auction{}, false
	}
	return a, true
}

// GetBySeller returns the auctions listed by sellerID
func (s *AuctionService) GetBySeller(sellerID string) []models.Auction {
	return filter(s.repo.ListAuctions(), func(a models.Auction) bool {
		return a.SellerID == sellerID
	})
}

// GetWatchedBy returns the auctions whose watchlist contains userID
func (s *AuctionService) GetWatchedBy(userID string) []models.Auction {
	return filter(s.repo.ListAuctions(), func(a models.Auction) bool {
		return a.IsWatchedBy(userID)
	})
}

// GetBidsByUser returns every bid placed by userID with its auction, most recent first
func (s *AuctionService) GetBidsByUser(userID string) []models.UserBid {
	return BidsByUser(s.repo.ListAuctions(), userID)
}

// Search returns the auctions matching query and filters
func (s *AuctionService) Search(query string, filters models.SearchFilters) []models.Auction {
	return Search(s.repo.ListAuctions(), query, filters, s.now())
}

// Featured returns the top open auctions ranked by bidding activity and time left
func (s *AuctionService) Featured() []models.Auction {
	return Featured(s.repo.ListAuctions(), s.now(), FeaturedLimit)
}

// Dashboard returns the account overview for userID
func (s *AuctionService) Dashboard(userID string) models.Dashboard {
	return BuildDashboard(s.repo.ListAuctions(), userID, s.now())
}

// Create validates and stores a new auction, returning its id
func (s *AuctionService) Create(input models.CreateAuctionInput) (string, error) {
	now := s.now()
	if err := validateCreate(input, now); err != nil {
		s.notifier.Error("Please fill all required auction fields.")
		return "", err
	}

	if err := s.link.RoundTrip(network.OpCreate); err != nil {
		s.notifier.Error("Failed to create auction. Please try again.")
		return "", fmt.Errorf("service: failed to create auction: %w", err)
	}

	images := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		images = []string{DefaultImage}
	}

	// the listing must still end after the start taken post round trip
	created := s.now()
	if !input.EndTime.After(created) {
		s.notifier.Error("Please fill all required auction fields.")
		return "", fmt.Errorf("service: %w - end time must be after the start time", auctionerrors.ErrValidation)
	}

	auction := models.Auction{
		ID:           utils.GenerateID("auction"),
		Title:        input.Title,
		Description:  input.Description,
		Images:       images,
		Category:     input.Category,
		StartPrice:   input.StartPrice,
		CurrentPrice: input.StartPrice,
		StartTime:    created,
		EndTime:      input.EndTime.UTC(),
		SellerID:     input.SellerID,
		SellerName:   input.SellerName,
		IsActive:     true,
		Bids:         []models.Bid{},
		Watchlist:    []string{},
	}

	if err := s.repo.InsertAuction(auction); err != nil {
		s.notifier.Error("Failed to create auction. Please try again.")
		return "", fmt.Errorf("service: failed to store auction %s: %w", auction.ID, err)
	}

	s.notifier.Success("Auction created successfully!")
	return auction.ID, nil
}

// validateCreate checks the fields a listing cannot exist without
func validateCreate(input models.CreateAuctionInput, now time.Time) error {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "category")
	}
	if input.SellerID == "" {
		missing = append(missing, "seller id")
	}
	if input.SellerName == "" {
		missing = append(missing, "seller name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("service: %w - missing %s", auctionerrors.ErrValidation, strings.Join(missing, ", "))
	}
	if !(input.StartPrice > 0) || math.IsInf(input.StartPrice, 0) {
		return fmt.Errorf("service: %w - start price must be greater than 0", auctionerrors.ErrValidation)
	}
	if !input.EndTime.After(now) {
		return fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrValidation)
	}
	return nil
}

// PlaceBid validates and records a user's bid. The price check, the expiry check and
// the update happen under one repository write, so two bids racing on the same
// price cannot both be accepted.
func (s *AuctionService) PlaceBid(auctionID, userID string, amount float64) (models.Bid, error) {
	if err := validateBid(auctionID, userID, amount); err != nil {
		s.notifier.Error("Failed to place bid")
		return models.Bid{}, err
	}

	if err := s.link.RoundTrip(network.OpPlaceBid); err != nil {
		s.notifier.Error("Failed to place bid")
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}

	bid := models.Bid{
		ID:     utils.GenerateID("bid"),
		UserID: userID,
		Amount: amount,
	}

	_, err := s.repo.UpdateAuction(auctionID, func(a *models.Auction) error {
		now := s.now()
		if amount <= a.CurrentPrice {
			return fmt.Errorf("service: %w - current price is %.2f", auctionerrors.ErrBidTooLow, a.CurrentPrice)
		}
		if !a.IsOpen(now) {
			return fmt.Errorf("service: %w - auction %s closed at %s", auctionerrors.ErrAuctionClosed, a.ID, a.EndTime.Format(time.RFC3339))
		}

		bid.Time = now
		a.Bids = append([]models.Bid{bid}, a.Bids...)
		a.CurrentPrice = amount
		return nil
	})
	if err != nil {
		s.notifier.Error(bidFailureMessage(err))
		if errors.Is(err, auctionerrors.ErrBidTooLow) || errors.Is(err, auctionerrors.ErrAuctionClosed) {
			return models.Bid{}, err
		}
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	s.notifier.Success("Bid placed successfully!")
	return bid, nil
}

// validateBid checks input validity before any round trip is paid
func validateBid(auctionID, userID string, amount float64) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrValidation)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("service: %w - bid amount is not a finite number", auctionerrors.ErrValidation)
	}
	return nil
}

func bidFailureMessage(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return "Bid must be higher than the current price"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return "Auction has ended"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return "Auction not found"
	default:
		return "Failed to place bid"
	}
}

// ToggleWatchlist adds userID to the auction's watchlist or removes it if present.
// It reports whether the user is watching after the toggle.
func (s *AuctionService) ToggleWatchlist(auctionID, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	var watching bool
	_, err := s.repo.UpdateAuction(auctionID, func(a *models.Auction) error {
		if a.IsWatchedBy(userID) {
			kept := a.Watchlist[:0]
			for _, id := range a.Watchlist {
				if id != userID {
					kept = append(kept, id)
				}
			}
			a.Watchlist = kept
			watching = false
			return nil
		}
		a.Watchlist = append(a.Watchlist, userID)
		watching = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("service: failed to toggle watchlist for auction %s: %w", auctionID, err)
	}

	if watching {
		s.notifier.Info("Added to watchlist")
	} else {
		s.notifier.Info("Removed from watchlist")
	}
	return watching, nil
}

// CloseExpired clears the active flag on every auction past its end time and
// returns the ids it closed
func (s *AuctionService) CloseExpired() []string {
	var closed []string
	for _, a := range s.repo.ListAuctions() {
		if !a.IsActive || s.now().Before(a.EndTime) {
			continue
		}

		_, err := s.repo.UpdateAuction(a.ID, func(current *models.Auction) error {
			current.IsActive = false
			return nil
		})
		if err != nil {
			utils.Warn("service: failed to close auction", map[string]any{"auction_id": a.ID, "error": err.Error()})
			continue
		}
		closed = append(closed, a.ID)
	}
	return closed
}
