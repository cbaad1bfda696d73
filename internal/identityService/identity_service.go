package identity

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/network"
	"auction-house/internal/notify"
	"auction-house/internal/storage"
	"auction-house/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"
)

// StorageKey is where the current identity is persisted
const StorageKey = "auction_user"

// DemoUserID is the fixed id given to every login
const DemoUserID = "123456"

// MinPasswordLength is the shortest password accepted by login and register
const MinPasswordLength = 6

const avatarURL = "https://api.dicebear.com/7.x/initials/svg?seed="

// IdentityService holds at most one signed-in identity
type IdentityService struct {
	mu       sync.RWMutex
	current  *models.User
	loading  int
	store    storage.KeyValue
	link     network.Link
	notifier notify.Notifier
}

// Option configures an IdentityService
type Option func(*IdentityService)

// WithLink sets the simulated network used by Login and Register
func WithLink(link network.Link) Option {
	return func(s *IdentityService) { s.link = link }
}

// WithNotifier sets where operation outcomes are reported
func WithNotifier(n notify.Notifier) Option {
	return func(s *IdentityService) { s.notifier = n }
}

// NewIdentityService creates an anonymous IdentityService persisting to store
func NewIdentityService(store storage.KeyValue, opts ...Option) *IdentityService {
	s := &IdentityService{
		store:    store,
		link:     network.Instant(),
		notifier: notify.Discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login signs in with any non-empty email and a long enough password
func (s *IdentityService) Login(email, password string) (models.User, error) {
	s.beginLoading()
	defer s.endLoading()

	if err := s.link.RoundTrip(network.OpLogin); err != nil {
		s.notifier.Error("Login failed. Please try again later.")
		return models.User{}, fmt.Errorf("identity: login: %w", err)
	}

	if email == "" || utf8.RuneCountInString(password) < MinPasswordLength {
		s.notifier.Error("Invalid credentials. Please try again.")
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrInvalidCredentials)
	}

	user := models.User{
		ID:     DemoUserID,
		Name:   strings.SplitN(email, "@", 2)[0],
		Email:  email,
		Avatar: avatarURL + url.QueryEscape(email),
	}
	s.signIn(user)

	s.notifier.Success("Login successful! Welcome back.")
	return user, nil
}

// Register creates a fresh identity and signs it in
func (s *IdentityService) Register(name, email, password string) (models.User, error) {
	s.beginLoading()
	defer s.endLoading()

	if err := s.link.RoundTrip(network.OpRegister); err != nil {
		s.notifier.Error("Registration failed. Please try again later.")
		return models.User{}, fmt.Errorf("identity: register: %w", err)
	}

	if name == "" || email == "" || utf8.RuneCountInString(password) < MinPasswordLength {
		s.notifier.Error("Please fill all required fields with valid information.")
		return models.User{}, fmt.Errorf("identity: %w", auctionerrors.ErrInvalidInput)
	}

	user := models.User{
		ID:     utils.GenerateID("user"),
		Name:   name,
		Email:  email,
		Avatar: avatarURL + url.QueryEscape(name),
	}
	s.signIn(user)

	s.notifier.Success("Registration successful! Welcome to BidHub.")
	return user, nil
}

// Logout clears the current identity. It always succeeds.
func (s *IdentityService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(StorageKey); err != nil {
		utils.Warn("identity: failed to remove persisted identity", map[string]any{"error": err.Error()})
	}
	s.notifier.Info("You have been logged out")
}

// CheckAuth restores the persisted identity, if any. A missing or unreadable
// record leaves the service anonymous.
func (s *IdentityService) CheckAuth() {
	s.beginLoading()
	defer s.endLoading()

	raw, err := s.store.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			utils.Warn("identity: failed to read persisted identity", map[string]any{"error": err.Error()})
		}
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		fields := map[string]any{"key": StorageKey}
		if err != nil {
			fields["error"] = err.Error()
		}
		utils.Warn("identity: ignoring malformed persisted identity", fields)
		return
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
}

// Current returns the signed-in identity
func (s *IdentityService) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether an identity is signed in
func (s *IdentityService) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// IsLoading reports whether a login, register or restore is in flight
func (s *IdentityService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// beginLoading and endLoading count overlapping operations
func (s *IdentityService) beginLoading() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *IdentityService) endLoading() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}

// signIn makes user current and persists it. A failed write is logged; the
// identity stays current for this process.
func (s *IdentityService) signIn(user models.User) {
	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err == nil {
		err = s.store.Set(StorageKey, raw)
	}
	if err != nil {
		utils.Warn("identity: failed to persist identity", map[string]any{"user_id": user.ID, "error": err.Error()})
	}
}
