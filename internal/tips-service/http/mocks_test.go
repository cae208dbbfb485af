package http

import (
	"context"

	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/repo"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/session"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// MockUserRepo
type MockUserRepo struct {
	AuthenticateFunc  func(ctx context.Context, email, password string) (*repo.User, error)
	EmailExistsFunc   func(ctx context.Context, email string) (bool, error)
	PendingExistsFunc func(ctx context.Context, email string) (bool, error)
	CreatePendingFunc func(ctx context.Context, email, password string) error
	ListPendingFunc   func(ctx context.Context) ([]repo.PendingUser, error)
	ApproveFunc       func(ctx context.Context, email string) error

	AuthenticateCalls int
}

func (m *MockUserRepo) Authenticate(ctx context.Context, email, password string) (*repo.User, error) {
	m.AuthenticateCalls++
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, nil
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepo) PendingExists(ctx context.Context, email string) (bool, error) {
	if m.PendingExistsFunc != nil {
		return m.PendingExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepo) CreatePending(ctx context.Context, email, password string) error {
	if m.CreatePendingFunc != nil {
		return m.CreatePendingFunc(ctx, email, password)
	}
	return nil
}

func (m *MockUserRepo) ListPending(ctx context.Context) ([]repo.PendingUser, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepo) Approve(ctx context.Context, email string) error {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, email)
	}
	return nil
}

// MockSessionStore guarda sessões em memória
type MockSessionStore struct {
	CreateFunc func(ctx context.Context, u session.User) (string, error)
	Sessions   map[string]session.User
	Deleted    []string
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{Sessions: map[string]session.User{}}
}

func (m *MockSessionStore) Create(ctx context.Context, u session.User) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	token := "token-" + u.Email
	m.Sessions[token] = u
	return token, nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*session.User, bool, error) {
	u, ok := m.Sessions[token]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	m.Deleted = append(m.Deleted, token)
	delete(m.Sessions, token)
	return nil
}

// MockBetLoader
type MockBetLoader struct {
	LoadFunc    func(ctx context.Context) (*tips.Dashboard, error)
	RefreshFunc func(ctx context.Context) (*tips.Dashboard, error)

	LoadCalls    int
	RefreshCalls int
}

func (m *MockBetLoader) Load(ctx context.Context) (*tips.Dashboard, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return &tips.Dashboard{}, nil
}

func (m *MockBetLoader) Refresh(ctx context.Context) (*tips.Dashboard, error) {
	m.RefreshCalls++
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return &tips.Dashboard{}, nil
}
