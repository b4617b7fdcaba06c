package usecase

import (
	"office-assistant/internal/assistant"
	"office-assistant/internal/conversation"
	"office-assistant/internal/intent"
	"office-assistant/internal/meeting"
	"office-assistant/internal/todo"
	"office-assistant/internal/user"
	"office-assistant/pkg/datemath"
	pkgLog "office-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	intents  intent.Classifier
	todos    todo.UseCase
	meetings meeting.UseCase
	users    user.UseCase
	chat     conversation.UseCase
	dates    *datemath.Parser
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	intents intent.Classifier,
	todos todo.UseCase,
	meetings meeting.UseCase,
	users user.UseCase,
	chat conversation.UseCase,
	dates *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		intents:  intents,
		todos:    todos,
		meetings: meetings,
		users:    users,
		chat:     chat,
		dates:    dates,
	}
}
