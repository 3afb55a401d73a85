package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/shared"
	"artisthub-backend/internal/shared/apperror"
)

// ========================================
// IN-MEMORY REPOSITORY
// ========================================

type memoryRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.Commission
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[uuid.UUID]model.Commission{}}
}

func (r *memoryRepo) Create(_ context.Context, c *model.Commission) (*model.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *c
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	r.items[stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, model.ErrCommissionNotFound(id.String())
	}
	return &c, nil
}

func (r *memoryRepo) List(_ context.Context, f model.ListFilter) ([]*model.Commission, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Commission
	for _, c := range r.items {
		c := c
		if f.ArtistID != nil && c.ArtistID != *f.ArtistID {
			continue
		}
		if f.CommissionerID != nil && c.CommissionerID != *f.CommissionerID {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, len(out), nil
}

func (r *memoryRepo) Update(_ context.Context, c *model.Commission) (*model.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[c.ID]
	if !ok {
		return nil, model.ErrCommissionNotFound(c.ID.String())
	}
	stored.Price = c.Price
	stored.Status = c.Status
	r.items[c.ID] = stored
	return &stored, nil
}

func (r *memoryRepo) Transition(_ context.Context, id uuid.UUID, from []model.Status, to model.Status, price *decimal.Decimal) (*model.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return nil, model.ErrCommissionNotFound(id.String())
	}
	allowed := false
	for _, s := range from {
		if s == stored.Status {
			allowed = true
		}
	}
	if !allowed {
		return nil, apperror.Conflict("commission is %s", stored.Status)
	}
	stored.Status = to
	if price != nil {
		stored.Price = price
	}
	r.items[id] = stored
	return &stored, nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) (*model.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, model.ErrCommissionNotFound(id.String())
	}
	delete(r.items, id)
	return &c, nil
}

// ========================================
// USERS / NOTIFIER / PAYMENTS
// ========================================

type userDirectory map[uuid.UUID]shared.UserBasicInfo

func (d userDirectory) GetBasicInfo(_ context.Context, id uuid.UUID) (*shared.UserBasicInfo, error) {
	u, ok := d[id]
	if !ok {
		return nil, apperror.NotFound("user %s not found", id)
	}
	return &u, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []shared.CommissionNotificationPayload
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, p shared.CommissionNotificationPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, p)
	return n.err
}

func (n *recordingNotifier) kinds() []shared.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.NotificationKind, len(n.sent))
	for i, p := range n.sent {
		out[i] = p.Kind
	}
	return out
}

func (n *recordingNotifier) last() shared.CommissionNotificationPayload {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

type stubLinker struct {
	calls int
}

func (l *stubLinker) CreateCommissionPaymentLink(_ context.Context, c *model.Commission) (*model.CheckoutResponse, error) {
	l.calls++
	return &model.CheckoutResponse{
		CommissionID: c.ID.String(),
		PaymentID:    uuid.NewString(),
		URL:          "https://pay.example.test/" + c.ID.String(),
		Amount:       floatPtr(c.Price.InexactFloat64()),
		Currency:     "usd",
	}, nil
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
