package infra

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
)

type memUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byPhone map[string]string       // phone -> id
}

func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:   make(map[string]*domain.User),
		byPhone: make(map[string]string),
	}
}

func (r *memUserRepo) Create(_ context.Context, p domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byPhone[p.PhoneNumber]; ok {
		return nil, domain.ErrDuplicateKey
	}
	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         p.Name,
		Username:     p.Username,
		PhoneNumber:  p.PhoneNumber,
		PasswordHash: p.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	r.byPhone[u.PhoneNumber] = u.ID
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPhone[phoneNumber]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) SearchByName(_ context.Context, fragment, excludeName string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	frag := strings.ToLower(fragment)
	out := []domain.User{}
	for _, u := range r.users {
		if u.Name == excludeName {
			continue
		}
		if strings.Contains(strings.ToLower(u.Name), frag) {
			out = append(out, *u)
		}
	}
	return out, nil
}

type memOtpRepo struct {
	mu   sync.Mutex
	seq  int64
	recs []domain.OtpRecord
}

func NewMemOtpRepo() domain.OtpRepo {
	return &memOtpRepo{}
}

func (r *memOtpRepo) Create(_ context.Context, phoneNumber, code string) (*domain.OtpRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rec := domain.OtpRecord{
		ID:          r.seq,
		PhoneNumber: phoneNumber,
		Code:        code,
		CreatedAt:   time.Now().UTC(),
	}
	r.recs = append(r.recs, rec)
	cp := rec
	return &cp, nil
}

func (r *memOtpRepo) FindLatest(_ context.Context, phoneNumber string) (*domain.OtpRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *domain.OtpRecord
	for i := range r.recs {
		rec := &r.recs[i]
		if rec.PhoneNumber != phoneNumber {
			continue
		}
		// later timestamp wins, sequence breaks timestamp ties
		if latest == nil || rec.CreatedAt.After(latest.CreatedAt) ||
			(rec.CreatedAt.Equal(latest.CreatedAt) && rec.ID > latest.ID) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *memOtpRepo) DeleteAll(_ context.Context, phoneNumber string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.recs[:0]
	var removed int64
	for _, rec := range r.recs {
		if rec.PhoneNumber == phoneNumber {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	r.recs = kept
	return removed, nil
}
