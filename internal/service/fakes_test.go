package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/events"
	"github.com/iqoooow/TERRA-ACADEMY/internal/repository"
)

// -------- test fakes --------

type fakeUserRepo struct {
	nextID    int64
	users     []*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (f *fakeUserRepo) add(user *domain.User) *domain.User {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return user
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) ListByStatus(_ context.Context, status domain.Status) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, user := range f.users {
		if user.Status == status {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateStatusFromPending(_ context.Context, id int64, next domain.Status) (bool, error) {
	for _, user := range f.users {
		if user.ID == id && user.Status == domain.StatusPending {
			user.Status = next
			user.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

type fakeSessionRepo struct {
	sessions map[string]int64
	saveErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]int64)}
}

func (f *fakeSessionRepo) Save(_ context.Context, jti string, userID int64, _ time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[jti] = userID
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, jti string) (int64, error) {
	userID, ok := f.sessions[jti]
	if !ok {
		return 0, repository.ErrSessionNotFound
	}
	return userID, nil
}

type fakeDispatcher struct {
	published  []events.Event
	publishErr error
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (f *fakeDispatcher) Close() {}
