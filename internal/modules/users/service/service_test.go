package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/infra"
	"github.com/real-dev404/mern-whatsapp-clone-api/internal/platform/security"
)

// fakeSender records deliveries instead of making them.
type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []sentSMS
}

type sentSMS struct {
	To   string
	Body string
}

func (f *fakeSender) Send(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentSMS{To: to, Body: body})
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// lastCode extracts the OTP code from the most recent message body.
func (f *fakeSender) lastCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return ""
	}
	prefix := strings.TrimSuffix(otpMessage, "%s")
	return strings.TrimPrefix(f.sent[len(f.sent)-1].Body, prefix)
}

// otpStore is an in-memory OTP store with a count accessor for assertions.
type otpStore struct {
	mu        sync.Mutex
	seq       int64
	recs      []domain.OtpRecord
	createErr error
}

func (s *otpStore) Create(_ context.Context, phoneNumber, code string) (*domain.OtpRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.seq++
	rec := domain.OtpRecord{ID: s.seq, PhoneNumber: phoneNumber, Code: code, CreatedAt: time.Now().UTC()}
	s.recs = append(s.recs, rec)
	return &rec, nil
}

func (s *otpStore) FindLatest(_ context.Context, phoneNumber string) (*domain.OtpRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *domain.OtpRecord
	for i := range s.recs {
		rec := &s.recs[i]
		if rec.PhoneNumber != phoneNumber {
			continue
		}
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

func (s *otpStore) DeleteAll(_ context.Context, phoneNumber string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recs[:0]
	var removed int64
	for _, rec := range s.recs {
		if rec.PhoneNumber == phoneNumber {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.recs = kept
	return removed, nil
}

func (s *otpStore) countFor(phoneNumber string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.recs {
		if rec.PhoneNumber == phoneNumber {
			n++
		}
	}
	return n
}

func newTestService(t *testing.T) (*Service, domain.UserRepo, *otpStore, *fakeSender) {
	t.Helper()
	users := infra.NewMemUserRepo()
	otps := &otpStore{}
	sender := &fakeSender{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(users, otps, sender, security.NewJWTManager("test-secret", time.Hour), log)
	return svc, users, otps, sender
}

func validParams(phoneNumber string) RegistrationParams {
	return RegistrationParams{
		Name:        "Ada",
		Username:    "ada",
		PhoneNumber: phoneNumber,
		Password:    "correct-horse",
	}
}
