package services

import (
	"context"
	"sync"
	"time"

	"github.com/kamikazebr/engage-server/pkg/models"
	"github.com/stretchr/testify/mock"
)

type mockCodeStore struct{ mock.Mock }

func (m *mockCodeStore) Save(ctx context.Context, code *models.OneTimeCode) error {
	return m.Called(ctx, code).Error(0)
}
func (m *mockCodeStore) Redeem(ctx context.Context, email string, check func(*models.OneTimeCode) (bool, error)) error {
	return m.Called(ctx, email, check).Error(0)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) Issue(email string) (string, time.Time, error) {
	args := m.Called(email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type mockCodeSender struct{ mock.Mock }

func (m *mockCodeSender) SendVerificationCode(email, code string) error {
	return m.Called(email, code).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if u, _ := args.Get(0).(*models.UserProfile); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*models.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Create(ctx context.Context, n *models.NotificationRecord) error {
	return m.Called(ctx, n).Error(0)
}

type mockPushSender struct{ mock.Mock }

func (m *mockPushSender) Send(ctx context.Context, msg *models.PushMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

// memCodeStore keeps codes in a map so overwrite semantics can be observed.
type memCodeStore struct {
	mu    sync.Mutex
	codes map[string]models.OneTimeCode
	saves int
}

func newMemCodeStore() *memCodeStore {
	return &memCodeStore{codes: make(map[string]models.OneTimeCode)}
}

func (s *memCodeStore) Save(_ context.Context, code *models.OneTimeCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code.Email] = *code
	s.saves++
	return nil
}

func (s *memCodeStore) Get(_ context.Context, email string) (*models.OneTimeCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[email]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Redeem holds the lock across check and write, like a transaction would.
func (s *memCodeStore) Redeem(_ context.Context, email string, check func(*models.OneTimeCode) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code *models.OneTimeCode
	if c, ok := s.codes[email]; ok {
		code = &c
	}

	spent, err := check(code)
	switch {
	case code == nil:
	case spent:
		delete(s.codes, email)
	default:
		s.codes[email] = *code
	}
	return err
}
