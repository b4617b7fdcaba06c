package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"office-assistant/internal/model"
	"office-assistant/internal/user"
	"office-assistant/internal/user/repository"
)

func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	if sc.UserMail == "" {
		return model.UserProfile{}, user.ErrMissingMail
	}

	profile, err := uc.repo.Get(ctx, sc.UserMail)
	if errors.Is(err, repository.ErrNotFound) {
		return uc.TouchProfile(ctx, sc)
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	return profile, nil
}

func (uc *implUseCase) TouchProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	if sc.UserMail == "" {
		return model.UserProfile{}, user.ErrMissingMail
	}

	profile, err := uc.repo.Get(ctx, sc.UserMail)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return model.UserProfile{}, fmt.Errorf("user.TouchProfile: %w", err)
	}

	profile.Mail = sc.UserMail
	if sc.UserName != "" {
		profile.Name = sc.UserName
	}
	profile.LastActiveAt = time.Now()

	updated, err := uc.repo.Upsert(ctx, profile)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("user.TouchProfile: %w", err)
	}
	return updated, nil
}

func (uc *implUseCase) SetPreferredModel(ctx context.Context, sc model.Scope, modelName string) (model.UserProfile, error) {
	if sc.UserMail == "" {
		return model.UserProfile{}, user.ErrMissingMail
	}
	if !uc.catalog.HasModel(modelName) {
		return model.UserProfile{}, fmt.Errorf("%w: %s", user.ErrUnknownModel, modelName)
	}

	profile, err := uc.GetProfile(ctx, sc)
	if err != nil {
		return model.UserProfile{}, err
	}

	profile.PreferredModel = modelName
	updated, err := uc.repo.Upsert(ctx, profile)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("user.SetPreferredModel: %w", err)
	}

	uc.l.Infof(ctx, "user.SetPreferredModel: user=%s model=%s", sc.UserMail, modelName)
	return updated, nil
}
