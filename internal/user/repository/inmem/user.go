package inmem

import (
	"context"
	"sync"

	"office-assistant/internal/model"
	"office-assistant/internal/user/repository"
)

// implRepository stores user profiles in memory, keyed by mail.
type implRepository struct {
	mu       sync.RWMutex
	profiles map[string]model.UserProfile
}

var _ repository.UserRepository = (*implRepository)(nil)

// New creates an in-memory user repository.
func New() *implRepository {
	return &implRepository{
		profiles: make(map[string]model.UserProfile),
	}
}

func (r *implRepository) Get(ctx context.Context, mail string) (model.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[mail]
	if !ok {
		return model.UserProfile{}, repository.ErrNotFound
	}
	return profile, nil
}

func (r *implRepository) Upsert(ctx context.Context, profile model.UserProfile) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.Mail] = profile
	return profile, nil
}
