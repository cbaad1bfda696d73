package integrationtests

import (
	"net/http"
	"testing"
	"time"

	identity "auction-house/internal/identityService"
	"auction-house/internal/models"
	"auction-house/internal/network"
	"auction-house/internal/seed"

	"github.com/stretchr/testify/require"
)

// Bidding scenario: start 100, bids of 150, 120 and 200
func TestPlaceBid_Scenario(t *testing.T) {
	app := SetupTestApp(nil, openAuction("a1", 100))
	token := app.Login(t, "alice@example.com")

	steps := []struct {
		amount     float64
		wantStatus int
	}{
		{150, http.StatusCreated},
		{120, http.StatusConflict},
		{150, http.StatusConflict},
		{200, http.StatusCreated},
	}
	for _, s := range steps {
		_, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/a1/bids", token, map[string]float64{"amount": s.amount})
		require.Equal(t, s.wantStatus, w.Code, "amount %.0f", s.amount)
	}

	resp, w := app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/a1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	auction := data(resp)
	require.Equal(t, 200.0, auction["current_price"])
	bids := auction["bids"].([]any)
	require.Len(t, bids, 2)
	require.Equal(t, 200.0, bids[0].(map[string]any)["amount"])
	require.Equal(t, 150.0, bids[1].(map[string]any)["amount"])
	require.Equal(t, identity.DemoUserID, bids[0].(map[string]any)["user_id"])

	// the bids show up on the bidder's history, newest first
	resp, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/users/"+identity.DemoUserID+"/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := resp["data"].([]any)
	require.Len(t, history, 2)
	require.Equal(t, 200.0, history[0].(map[string]any)["bid"].(map[string]any)["amount"])
}

func TestPlaceBid_Rejections(t *testing.T) {
	ended := openAuction("ended", 100)
	ended.EndTime = time.Now().UTC().Add(-time.Minute)

	tests := []struct {
		name       string
		path       string
		amount     float64
		wantStatus int
	}{
		{name: "Auction_Ended", path: "/auctions/ended/bids", amount: 500, wantStatus: http.StatusGone},
		{name: "Too_Low_Wins_Over_Ended", path: "/auctions/ended/bids", amount: 50, wantStatus: http.StatusConflict},
		{name: "Unknown_Auction", path: "/auctions/nope/bids", amount: 500, wantStatus: http.StatusNotFound},
		{name: "Zero_Amount", path: "/auctions/ended/bids", amount: 0, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := SetupTestApp(nil, ended)
			token := app.Login(t, "alice@example.com")

			_, w := app.ExecuteRequestAndParse(t, http.MethodPost, tt.path, token, map[string]float64{"amount": tt.amount})
			require.Equal(t, tt.wantStatus, w.Code)

			got, err := app.repo.GetAuction("ended")
			require.NoError(t, err)
			require.Empty(t, got.Bids)
			require.Equal(t, 100.0, got.CurrentPrice)
		})
	}
}

func TestCreateAuction(t *testing.T) {
	app := SetupTestApp(nil)
	token := app.Login(t, "carol@example.com")

	body := map[string]any{
		"title":       "Signed first edition",
		"description": "Hardcover, excellent condition",
		"category":    "Books",
		"start_price": 250.0,
		"end_time":    time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
	}

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	auctionID := data(resp)["auction_id"].(string)
	require.Regexp(t, `^auction_`, auctionID)

	resp, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/"+auctionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	created := data(resp)
	require.Equal(t, identity.DemoUserID, created["seller_id"])
	require.Equal(t, "carol", created["seller_name"])
	require.Equal(t, 250.0, created["current_price"])
	require.Equal(t, true, created["is_open"])
	require.Len(t, created["images"].([]any), 1)

	// listed under the seller and first in the catalogue
	resp, _ = app.ExecuteRequestAndParse(t, http.MethodGet, "/users/"+identity.DemoUserID+"/auctions", "", nil)
	require.Len(t, resp["data"].([]any), 1)
	resp, _ = app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions", "", nil)
	require.Equal(t, auctionID, resp["data"].([]any)[0].(map[string]any)["id"])

	// an end time in the past is refused by the store
	body["end_time"] = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNetworkFailure_LeavesStateUntouched(t *testing.T) {
	failBids := network.NewSimulatedLink(0, network.WithFailure(func(op string) bool {
		return op == network.OpPlaceBid || op == network.OpCreate
	}))
	app := SetupTestApp(failBids, openAuction("a1", 100))
	token := app.Login(t, "alice@example.com")

	_, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/a1/bids", token, map[string]float64{"amount": 150})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	got, err := app.repo.GetAuction("a1")
	require.NoError(t, err)
	require.Empty(t, got.Bids)
	require.Equal(t, 100.0, got.CurrentPrice)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions", token, map[string]any{
		"title":       "Lamp",
		"description": "Brass",
		"category":    "Home",
		"start_price": 10.0,
		"end_time":    time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Len(t, app.repo.ListAuctions(), 1)
}

func TestToggleWatchlist(t *testing.T) {
	app := SetupTestApp(nil, openAuction("a1", 100))
	token := app.Login(t, "alice@example.com")

	for _, want := range []bool{true, false, true} {
		resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/a1/watchlist", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, want, data(resp)["watching"])
	}

	resp, _ := app.ExecuteRequestAndParse(t, http.MethodGet, "/users/"+identity.DemoUserID+"/watchlist", "", nil)
	require.Len(t, resp["data"].([]any), 1)

	got, err := app.repo.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, []string{identity.DemoUserID}, got.Watchlist)
}

func TestSearchAndFeatured_SeededCatalogue(t *testing.T) {
	app := SetupTestApp(nil, seed.Auctions(time.Now().UTC())...)

	resp, w := app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	featured := resp["data"].([]any)
	require.Len(t, featured, 4)
	for _, f := range featured {
		require.Equal(t, true, f.(map[string]any)["is_open"])
	}

	resp, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions?only_active=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, a := range resp["data"].([]any) {
		require.Equal(t, true, a.(map[string]any)["is_open"])
	}

	resp, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/auctions?q=zzzz-no-such-lot", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))
}

func TestDashboard(t *testing.T) {
	won := openAuction("won", 100)
	app := SetupTestApp(nil, won, openAuction("live", 100))
	token := app.Login(t, "alice@example.com")

	_, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/won/bids", token, map[string]float64{"amount": 150})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/live/bids", token, map[string]float64{"amount": 110})
	require.Equal(t, http.StatusCreated, w.Code)

	// the auction ends with alice on top
	_, err := app.repo.UpdateAuction("won", func(a *models.Auction) error {
		a.EndTime = time.Now().UTC().Add(-time.Second)
		return nil
	})
	require.NoError(t, err)

	resp, w := app.ExecuteRequestAndParse(t, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(resp)
	require.Len(t, d["won"].([]any), 1)
	require.Len(t, d["active_bids"].([]any), 1)
}

func TestSessions(t *testing.T) {
	app := SetupTestApp(nil)
	aliceToken := app.Login(t, "alice@example.com")

	// an anonymous client cannot end someone else's session
	_, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp, w := app.ExecuteRequestAndParse(t, http.MethodGet, "/auth/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice@example.com", data(resp)["email"])

	// both logins get the same id, the older token still stops working
	bobToken := app.Login(t, "bob@example.com")
	_, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/auth/me", aliceToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/auth/logout", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/auth/me", bobToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
