package conversation

import (
	"context"
	"fmt"

	"office-assistant/internal/model"
	"office-assistant/pkg/llmprovider"
)

func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, message string) (string, error) {
	preferredModel := ""
	if profile, err := uc.users.GetProfile(ctx, sc); err == nil {
		preferredModel = profile.PreferredModel
	}

	history, _ := uc.history.Get(sc.UserMail)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Content: systemPrompt},
		Messages:          append(append([]llmprovider.Message{}, history...), llmprovider.Message{Role: llmprovider.RoleUser, Content: message}),
		Temperature:       chatTemperature,
		MaxTokens:         maxResponseTokens,
	}

	resp, err := uc.llm.GenerateWithModel(ctx, preferredModel, req)
	if err != nil {
		return "", fmt.Errorf("conversation.Chat: %w", err)
	}

	reply := resp.Text()
	uc.remember(sc.UserMail, message, reply)
	return reply, nil
}

func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) {
	uc.history.Remove(sc.UserMail)
}

// remember appends the exchange to the user's history, trimming the
// oldest messages past the window.
func (uc *implUseCase) remember(userMail, message, reply string) {
	history, _ := uc.history.Get(userMail)
	history = append(history,
		llmprovider.Message{Role: llmprovider.RoleUser, Content: message},
		llmprovider.Message{Role: llmprovider.RoleAssistant, Content: reply},
	)
	if len(history) > uc.maxMessages {
		history = history[len(history)-uc.maxMessages:]
	}
	uc.history.Add(userMail, history)
}
