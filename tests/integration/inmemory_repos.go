package integration

import (
	"context"
	"sync"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"
)

// In-memory repository implementations backing the end-to-end tests. They
// store copies, so mutations only become visible through an explicit Upsert,
// matching how the PostgreSQL repos behave.

// --- In-Memory Event Ledger ---

type inMemoryEventLedger struct {
	mu     sync.Mutex
	events map[string]domain.PaymentEvent
}

func newInMemoryEventLedger() *inMemoryEventLedger {
	return &inMemoryEventLedger{events: make(map[string]domain.PaymentEvent)}
}

func (l *inMemoryEventLedger) InsertIfAbsent(ctx context.Context, ev *domain.PaymentEvent) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.events[ev.EventID]; ok {
		return false, nil
	}
	l.events[ev.EventID] = *ev
	return true, nil
}

func (l *inMemoryEventLedger) Get(ctx context.Context, eventID string) (*domain.PaymentEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev, ok := l.events[eventID]
	if !ok {
		return nil, nil
	}
	return &ev, nil
}

func (l *inMemoryEventLedger) Count(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int64(len(l.events)), nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction // keyed by payment id
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[string]domain.Transaction)}
}

func (r *inMemoryTransactionRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[paymentID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *inMemoryTransactionRepo) Upsert(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions[t.PaymentID] = *t
	return nil
}

func (r *inMemoryTransactionRepo) MarkFulfilled(ctx context.Context, paymentID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[paymentID]
	if !ok {
		return nil
	}
	t.FulfilledAt = &at
	t.UpdatedAt = at
	r.transactions[paymentID] = t
	return nil
}

func (r *inMemoryTransactionRepo) CountByStatus(ctx context.Context) (map[domain.TransactionStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.TransactionStatus]int64)
	for _, t := range r.transactions {
		counts[t.Status]++
	}
	return counts, nil
}

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu            sync.RWMutex
	subscriptions map[string]domain.Subscription // keyed by subscription id
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{subscriptions: make(map[string]domain.Subscription)}
}

func (r *inMemorySubscriptionRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subscriptions[subscriptionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *inMemorySubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions[s.SubscriptionID] = *s
	return nil
}

func (r *inMemorySubscriptionRepo) CountByStatus(ctx context.Context) (map[domain.SubscriptionStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[domain.SubscriptionStatus]int64)
	for _, s := range r.subscriptions {
		counts[s.Status]++
	}
	return counts, nil
}

// --- In-Memory Fraud Repo ---

type inMemoryFraudRepo struct {
	mu      sync.RWMutex
	reviews map[string]domain.FraudReview // keyed by review id
	alerts  map[string]domain.FraudAlert  // keyed by warning id
}

func newInMemoryFraudRepo() *inMemoryFraudRepo {
	return &inMemoryFraudRepo{
		reviews: make(map[string]domain.FraudReview),
		alerts:  make(map[string]domain.FraudAlert),
	}
}

func (r *inMemoryFraudRepo) GetReviewByReviewID(ctx context.Context, reviewID string) (*domain.FraudReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rev, ok := r.reviews[reviewID]
	if !ok {
		return nil, nil
	}
	return &rev, nil
}

func (r *inMemoryFraudRepo) GetBlockingReview(ctx context.Context, paymentID string) (*domain.FraudReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rev := range r.reviews {
		if rev.PaymentID == paymentID && rev.Blocks() {
			return &rev, nil
		}
	}
	return nil, nil
}

func (r *inMemoryFraudRepo) UpsertReview(ctx context.Context, rev *domain.FraudReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[rev.ReviewID] = *rev
	return nil
}

func (r *inMemoryFraudRepo) GetAlertByWarningID(ctx context.Context, warningID string) (*domain.FraudAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.alerts[warningID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *inMemoryFraudRepo) UpsertAlert(ctx context.Context, a *domain.FraudAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[a.WarningID] = *a
	return nil
}

// --- In-Memory Access Grant Repo ---

type inMemoryAccessGrantRepo struct {
	mu     sync.Mutex
	grants map[string]domain.AccessGrant // keyed by subject|resource
}

func newInMemoryAccessGrantRepo() *inMemoryAccessGrantRepo {
	return &inMemoryAccessGrantRepo{grants: make(map[string]domain.AccessGrant)}
}

func grantKey(subject, resource string) string {
	return subject + "|" + resource
}

func (r *inMemoryAccessGrantRepo) GetActive(ctx context.Context, subject, resource string) (*domain.AccessGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.grants[grantKey(subject, resource)]
	if !ok || !g.Active {
		return nil, nil
	}
	return &g, nil
}

func (r *inMemoryAccessGrantRepo) Grant(ctx context.Context, g *domain.AccessGrant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := grantKey(g.Subject, g.Resource)
	if existing, ok := r.grants[key]; ok && existing.Active {
		return false, nil
	}
	r.grants[key] = *g
	return true, nil
}

func (r *inMemoryAccessGrantRepo) Revoke(ctx context.Context, subject, resource string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := grantKey(subject, resource)
	g, ok := r.grants[key]
	if !ok || !g.Active {
		return nil
	}
	g.Active = false
	g.RevokedAt = &at
	r.grants[key] = g
	return nil
}

func (r *inMemoryAccessGrantRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, g := range r.grants {
		if g.Active {
			n++
		}
	}
	return n, nil
}

// --- In-Memory Credential Repo ---

type inMemoryCredentialRepo struct {
	mu          sync.Mutex
	credentials map[string]domain.Credential // keyed by subscription id
}

func newInMemoryCredentialRepo() *inMemoryCredentialRepo {
	return &inMemoryCredentialRepo{credentials: make(map[string]domain.Credential)}
}

func (r *inMemoryCredentialRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.credentials[subscriptionID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *inMemoryCredentialRepo) Create(ctx context.Context, c *domain.Credential) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.credentials[c.SubscriptionID]; ok {
		return false, nil
	}
	r.credentials[c.SubscriptionID] = *c
	return true, nil
}

// --- Capture Notifier / Alerter ---

type captureNotifier struct {
	mu            sync.Mutex
	notifications []ports.Notification
}

func (n *captureNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
	return nil
}

func (n *captureNotifier) sent() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

func (n *captureNotifier) byKind(kind ports.NotificationKind) []ports.Notification {
	var out []ports.Notification
	for _, notification := range n.sent() {
		if notification.Kind == kind {
			out = append(out, notification)
		}
	}
	return out
}

type captureAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *captureAlerter) Alert(ctx context.Context, message string, fields map[string]string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return nil
}
