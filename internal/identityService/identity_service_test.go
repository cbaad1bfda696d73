package identity

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/network"
	"auction-house/internal/notify"
	"auction-house/internal/storage"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every operation
type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenStore) Set(string, []byte) error   { return errors.New("disk on fire") }
func (brokenStore) Delete(string) error        { return errors.New("disk on fire") }

// Tests Login
func TestIdentityService_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		password  string
		wantName  string
		wantError error
	}{
		{name: "valid", email: "a@b.com", password: "longenough", wantName: "a"},
		{name: "exactly_six", email: "jane.doe@example.com", password: "123456", wantName: "jane.doe"},
		{name: "no_at_sign", email: "plainname", password: "123456", wantName: "plainname"},
		{name: "short_password", email: "a@b.com", password: "short", wantError: auctionerrors.ErrInvalidCredentials},
		{name: "empty_email", email: "", password: "longenough", wantError: auctionerrors.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := storage.NewMemoryStore()
			service := NewIdentityService(store)

			user, err := service.Login(tc.email, tc.password)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				require.False(t, service.IsAuthenticated())
				_, getErr := store.Get(StorageKey)
				require.ErrorIs(t, getErr, storage.ErrKeyNotFound)
				return
			}

			require.NoError(t, err)
			require.Equal(t, DemoUserID, user.ID)
			require.Equal(t, tc.wantName, user.Name)
			require.Equal(t, tc.email, user.Email)
			require.True(t, strings.HasPrefix(user.Avatar, avatarURL))

			current, ok := service.Current()
			require.True(t, ok)
			require.Equal(t, user, current)
			require.False(t, service.IsLoading())

			raw, err := store.Get(StorageKey)
			require.NoError(t, err)
			require.JSONEq(t, mustJSON(t, user), string(raw))
		})
	}

	t.Run("deterministic_identity", func(t *testing.T) {
		t.Parallel()

		first, err := NewIdentityService(storage.NewMemoryStore()).Login("a@b.com", "longenough")
		require.NoError(t, err)
		second, err := NewIdentityService(storage.NewMemoryStore()).Login("a@b.com", "longenough")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

// Tests Register
func TestIdentityService_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      string
		email     string
		password  string
		wantError error
	}{
		{name: "valid", user: "Jane", email: "jane@example.com", password: "secret1"},
		{name: "missing_name", user: "", email: "jane@example.com", password: "secret1", wantError: auctionerrors.ErrInvalidInput},
		{name: "missing_email", user: "Jane", email: "", password: "secret1", wantError: auctionerrors.ErrInvalidInput},
		{name: "short_password", user: "Jane", email: "jane@example.com", password: "12345", wantError: auctionerrors.ErrInvalidInput},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewIdentityService(storage.NewMemoryStore())
			user, err := service.Register(tc.user, tc.email, tc.password)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				require.False(t, service.IsAuthenticated())
				return
			}

			require.NoError(t, err)
			require.True(t, strings.HasPrefix(user.ID, "user_"))
			require.Equal(t, tc.user, user.Name)
			require.True(t, service.IsAuthenticated())
		})
	}

	t.Run("fresh_ids", func(t *testing.T) {
		t.Parallel()

		service := NewIdentityService(storage.NewMemoryStore())
		a, err := service.Register("A", "a@x.com", "secret1")
		require.NoError(t, err)
		b, err := service.Register("B", "b@x.com", "secret1")
		require.NoError(t, err)
		require.NotEqual(t, a.ID, b.ID)

		current, _ := service.Current()
		require.Equal(t, b.ID, current.ID)
	})
}

// Tests the Anonymous -> Authenticated -> Anonymous cycle
func TestIdentityService_Lifecycle(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStore()
	service := NewIdentityService(store)
	require.False(t, service.IsAuthenticated())

	// failed login is a no-op
	_, err := service.Login("a@b.com", "short")
	require.Error(t, err)
	require.False(t, service.IsAuthenticated())

	_, err = service.Login("a@b.com", "longenough")
	require.NoError(t, err)
	require.True(t, service.IsAuthenticated())

	service.Logout()
	require.False(t, service.IsAuthenticated())
	_, err = store.Get(StorageKey)
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	// logging out twice is fine
	service.Logout()
	require.False(t, service.IsAuthenticated())
}

// Tests CheckAuth
func TestIdentityService_CheckAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stored   []byte
		wantAuth bool
		wantID   string
	}{
		{name: "nothing_stored"},
		{name: "valid_record", stored: []byte(`{"id":"u1","name":"Jane","email":"jane@example.com"}`), wantAuth: true, wantID: "u1"},
		{name: "with_avatar", stored: []byte(`{"id":"u2","name":"Jo","email":"jo@example.com","avatar":"x.svg"}`), wantAuth: true, wantID: "u2"},
		{name: "malformed_json", stored: []byte(`{"id":`)},
		{name: "missing_id", stored: []byte(`{"name":"Jane"}`)},
		{name: "wrong_shape", stored: []byte(`["not","a","user"]`)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := storage.NewMemoryStore()
			if tc.stored != nil {
				require.NoError(t, store.Set(StorageKey, tc.stored))
			}

			service := NewIdentityService(store)
			service.CheckAuth()

			require.Equal(t, tc.wantAuth, service.IsAuthenticated())
			require.False(t, service.IsLoading())
			if tc.wantAuth {
				current, _ := service.Current()
				require.Equal(t, tc.wantID, current.ID)
			}
		})
	}

	t.Run("restores_across_instances", func(t *testing.T) {
		t.Parallel()

		store := storage.NewMemoryStore()
		user, err := NewIdentityService(store).Login("a@b.com", "longenough")
		require.NoError(t, err)

		restarted := NewIdentityService(store)
		require.False(t, restarted.IsAuthenticated())
		restarted.CheckAuth()
		current, ok := restarted.Current()
		require.True(t, ok)
		require.Equal(t, user, current)
	})

	t.Run("broken_storage_degrades", func(t *testing.T) {
		t.Parallel()

		service := NewIdentityService(brokenStore{})
		service.CheckAuth()
		require.False(t, service.IsAuthenticated())

		// persistence failures never fail the caller
		_, err := service.Login("a@b.com", "longenough")
		require.NoError(t, err)
		require.True(t, service.IsAuthenticated())
		service.Logout()
		require.False(t, service.IsAuthenticated())
	})
}

// Tests loading flag and network failure
func TestIdentityService_Network(t *testing.T) {
	t.Parallel()

	t.Run("loading_during_round_trip", func(t *testing.T) {
		t.Parallel()

		var service *IdentityService
		var sawLoading bool
		link := network.NewSimulatedLink(0, network.WithFailure(func(string) bool {
			sawLoading = service.IsLoading()
			return false
		}))
		service = NewIdentityService(storage.NewMemoryStore(), WithLink(link))

		_, err := service.Login("a@b.com", "longenough")
		require.NoError(t, err)
		require.True(t, sawLoading)
		require.False(t, service.IsLoading())
	})

	t.Run("loading_while_operations_overlap", func(t *testing.T) {
		t.Parallel()

		entered := make(chan struct{})
		release := make(chan struct{})
		link := network.NewSimulatedLink(0, network.WithFailure(func(op string) bool {
			if op == network.OpRegister {
				close(entered)
				<-release
			}
			return false
		}))
		service := NewIdentityService(storage.NewMemoryStore(), WithLink(link))

		done := make(chan error, 1)
		go func() {
			_, err := service.Register("Bob", "bob@b.com", "longenough")
			done <- err
		}()
		<-entered

		_, err := service.Login("a@b.com", "longenough")
		require.NoError(t, err)
		require.True(t, service.IsLoading())

		close(release)
		require.NoError(t, <-done)
		require.False(t, service.IsLoading())
	})

	t.Run("transport_failure", func(t *testing.T) {
		t.Parallel()

		link := network.NewSimulatedLink(time.Millisecond, network.WithFailure(func(string) bool { return true }))
		service := NewIdentityService(storage.NewMemoryStore(), WithLink(link))

		_, err := service.Login("a@b.com", "longenough")
		require.ErrorIs(t, err, auctionerrors.ErrNetwork)
		require.NotErrorIs(t, err, auctionerrors.ErrInvalidCredentials)

		_, err = service.Register("A", "a@b.com", "longenough")
		require.ErrorIs(t, err, auctionerrors.ErrNetwork)
		require.False(t, service.IsAuthenticated())
	})
}

// Tests notifications
func TestIdentityService_Notifications(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	notifier := notify.NewMockNotifier(ctrl)
	gomock.InOrder(
		notifier.EXPECT().Error("Invalid credentials. Please try again."),
		notifier.EXPECT().Success("Login successful! Welcome back."),
		notifier.EXPECT().Info("You have been logged out"),
		notifier.EXPECT().Error("Please fill all required fields with valid information."),
		notifier.EXPECT().Success("Registration successful! Welcome to BidHub."),
	)

	service := NewIdentityService(storage.NewMemoryStore(), WithNotifier(notifier))
	_, _ = service.Login("a@b.com", "short")
	_, _ = service.Login("a@b.com", "longenough")
	service.Logout()
	_, _ = service.Register("", "a@b.com", "longenough")
	_, _ = service.Register("A", "a@b.com", "longenough")
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
