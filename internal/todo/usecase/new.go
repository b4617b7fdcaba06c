package usecase

import (
	"office-assistant/internal/similarity"
	"office-assistant/internal/todo"
	"office-assistant/internal/todo/repository"
	pkgLog "office-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TodoRepository
	detector *similarity.Detector
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase instance.
func New(l pkgLog.Logger, repo repository.TodoRepository, detector *similarity.Detector) *implUseCase {
	if detector == nil {
		detector = similarity.NewDetector(nil)
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		detector: detector,
	}
}
