package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"fmt"
	"sync"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-house/internal/repository AuctionDB

// AuctionDB defines the auction storage interface for the marketplace
type AuctionDB interface {
	ListAuctions() []model.Auction
	GetAuction(auctionID string) (model.Auction, error)
	InsertAuction(auction model.Auction) error
	UpdateAuction(auctionID string, mutate func(*model.Auction) error) (model.Auction, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions []*model.Auction          // newest first
	index    map[string]*model.Auction // key: auctionID -> value: auction
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		index: make(map[string]*model.Auction),
	}
}

// ListAuctions returns a snapshot of every auction, newest first
func (r *MemoryRepo) ListAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		out = append(out, a.Clone())
	}
	return out
}

// GetAuction returns a copy of a single auction
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.index[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a.Clone(), nil
}

// InsertAuction prepends a new auction so the list stays newest first
func (r *MemoryRepo) InsertAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[auction.ID]; exists {
		return fmt.Errorf("insert auction %s: %w", auction.ID, auctionerrors.ErrDuplicateID)
	}

	stored := auction.Clone()
	r.auctions = append([]*model.Auction{&stored}, r.auctions...)
	r.index[stored.ID] = &stored
	return nil
}

// UpdateAuction applies mutate to a copy of the auction while holding the write lock.
// The copy replaces the stored record only when mutate returns nil, so a rejected
// update never leaves a half-applied state behind.
func (r *MemoryRepo) UpdateAuction(auctionID string, mutate func(*model.Auction) error) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.index[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	next := current.Clone()
	if err := mutate(&next); err != nil {
		return model.Auction{}, err
	}

	*current = next
	return next.Clone(), nil
}

// AddAuction appends an auction at the end of the list. Used for seeding and tests.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := auction.Clone()
	r.auctions = append(r.auctions, &stored)
	r.index[stored.ID] = &stored
}
