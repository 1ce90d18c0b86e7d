package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) List(_ context.Context, search string) ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(search)
	users := []model.User{}
	for _, u := range r.s.users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		users = append(users, u)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; ok {
		return model.User{}, model.ErrConflict
	}
	if r.emailTaken(user.Email, user.ID) {
		return model.User{}, model.ErrConflict
	}
	r.s.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, user model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return model.User{}, model.ErrConflict
	}
	user.CreatedAt = existing.CreatedAt
	r.s.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.users), nil
}

// emailTaken must be called with the lock held.
func (r *UserRepository) emailTaken(email string, self uuid.UUID) bool {
	for id, u := range r.s.users {
		if id != self && u.Email == email {
			return true
		}
	}
	return false
}
