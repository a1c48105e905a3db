package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mamazhanov/online-store/internal/cart"
)

// Provider is the external payment collaborator. CreateSession turns an
// intent into a URL the shopper navigates to; the core never retries it
// and never trusts anything beyond the returned URL.
type Provider interface {
	CreateSession(ctx context.Context, intent Intent) (string, error)
	Flow() Flow
}

// Outcome is the display-only terminal state decoded from the redirect
// status parameter. It is advisory: OutcomeSuccess is never treated as
// proof of payment.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeSuccess   Outcome = "success"
	OutcomeCancelled Outcome = "cancel"
)

// Service turns a session's cart into a checkout intent and submits it to
// the configured provider, one submission at a time per session.
type Service struct {
	provider Provider
	carts    *cart.SessionStore
	currency string
	timeout  time.Duration
	log      *slog.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

func NewService(provider Provider, carts *cart.SessionStore, currency string, timeout time.Duration, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		carts:    carts,
		currency: currency,
		timeout:  timeout,
		log:      log,
		inflight: make(map[string]bool),
	}
}

// Submit builds an intent from the session's cart and asks the provider
// for a redirect URL. A second call while one is outstanding for the same
// session returns ErrSubmitInFlight without touching the provider. The
// cart is never modified here; it is only cleared by Finish on a success
// redirect.
func (s *Service) Submit(ctx context.Context, sessionID string, customer Customer) (string, error) {
	if !s.begin(sessionID) {
		return "", ErrSubmitInFlight
	}
	defer s.end(sessionID)

	c := s.carts.Get(sessionID)
	intent, err := BuildIntent(c.Lines(), customer, s.currency, s.provider.Flow())
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url, err := s.provider.CreateSession(ctx, intent)
	if err != nil {
		s.log.Warn("payment collaborator failed", "session", sessionID, "err", err)
		return "", &CollaboratorError{Op: "create checkout session", Err: err}
	}
	s.log.Info("checkout session created", "session", sessionID, "items", len(intent.Lines), "total", intent.Total)
	return url, nil
}

// Finish interprets the redirect status parameter. Success clears the
// cart; cancel preserves it so the shopper can retry; anything else is an
// ordinary page load with no outcome.
func (s *Service) Finish(sessionID, status string) Outcome {
	switch status {
	case string(OutcomeSuccess):
		s.carts.Get(sessionID).Clear()
		return OutcomeSuccess
	case string(OutcomeCancelled):
		return OutcomeCancelled
	default:
		return OutcomeNone
	}
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[sessionID] {
		return false
	}
	s.inflight[sessionID] = true
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}
