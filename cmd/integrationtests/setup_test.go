package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	identity "auction-house/internal/identityService"
	"auction-house/internal/models"
	"auction-house/internal/network"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/session"
	"auction-house/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testApp is a fully wired application backed by in-memory stores
type testApp struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	store  *storage.MemoryStore
}

// SetupTestApp wires the router the way main does, with an instant network
// unless a link is supplied, and seeds the repo with auctions.
func SetupTestApp(link network.Link, auctions ...models.Auction) *testApp {
	gin.SetMode(gin.TestMode)
	if link == nil {
		link = network.Instant()
	}

	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		repo.AddAuction(a)
	}
	store := storage.NewMemoryStore()

	router := server.SetupRouter(server.Services{
		Auctions: auction.NewAuctionService(repo, auction.WithLink(link)),
		Identity: identity.NewIdentityService(store, identity.WithLink(link)),
		Sessions: session.NewManager("integration-secret", time.Hour),
	})
	return &testApp{router: router, repo: repo, store: store}
}

// ExecuteRequestAndParse executes an HTTP request on the app router and parses the envelope
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// Login signs in through the API and returns the session token
func (a *testApp) Login(t *testing.T, email string) string {
	t.Helper()

	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	return resp["data"].(map[string]any)["token"].(string)
}

// openAuction builds a listing that ends in a day
func openAuction(id string, price float64) models.Auction {
	now := time.Now().UTC()
	return models.Auction{
		ID:           id,
		Title:        "Vintage Leica M3",
		Description:  "Rangefinder camera in working order",
		Images:       []string{"leica.jpeg"},
		Category:     "Cameras",
		StartPrice:   price,
		CurrentPrice: price,
		StartTime:    now.Add(-time.Hour),
		EndTime:      now.Add(24 * time.Hour),
		SellerID:     "seller_1",
		SellerName:   "Camera Shop",
		IsActive:     true,
		Bids:         []models.Bid{},
		Watchlist:    []string{},
	}
}

func data(resp map[string]any) map[string]any {
	return resp["data"].(map[string]any)
}
