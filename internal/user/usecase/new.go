package usecase

import (
	"office-assistant/internal/user"
	"office-assistant/internal/user/repository"
	pkgLog "office-assistant/pkg/log"
)

// ModelCatalog reports which chat models the deployment serves.
// Satisfied by llmprovider.Manager.
type ModelCatalog interface {
	HasModel(model string) bool
	Models() []string
}

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.UserRepository
	catalog ModelCatalog
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.UserRepository, catalog ModelCatalog) *implUseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		catalog: catalog,
	}
}
