package usecase

import (
	"context"
	"strings"

	"office-assistant/internal/intent"
	"office-assistant/internal/model"
)

func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, text string) string {
	if strings.TrimSpace(text) == "" {
		return "請輸入訊息內容。"
	}

	// Best effort; a profile store hiccup must not break the message.
	if _, err := uc.users.TouchProfile(ctx, sc); err != nil {
		uc.l.Warnf(ctx, "assistant.ProcessMessage: touch profile: %v", err)
	}

	result := uc.intents.Analyze(ctx, text)
	if !result.IsExistingFeature {
		uc.l.Debugf(ctx, "assistant.ProcessMessage: no feature matched (%s), falling back to chat", result.Reason)
		return uc.fallbackChat(ctx, sc, text)
	}

	switch result.Category {
	case intent.CategoryTodo:
		return uc.handleTodo(ctx, sc, result, text)
	case intent.CategoryMeeting:
		return uc.handleMeeting(ctx, sc, result, text)
	case intent.CategoryInfo:
		return uc.handleInfo(ctx, sc, result)
	case intent.CategoryModel:
		return uc.handleModelSelect(ctx, sc, result)
	default:
		return uc.fallbackChat(ctx, sc, text)
	}
}

func (uc *implUseCase) WelcomeMessage(sc model.Scope) string {
	name := sc.UserName
	if name == "" {
		name = "您"
	}
	return "嗨 " + name + "！我是辦公室助理，可以幫您管理待辦事項、預約會議室，或回答問題。輸入「幫助」看看我會什麼。"
}

// fallbackChat routes unmatched messages to general conversation. A
// chat failure degrades to a friendly notice, never an error.
func (uc *implUseCase) fallbackChat(ctx context.Context, sc model.Scope, text string) string {
	reply, err := uc.chat.Chat(ctx, sc, text)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.fallbackChat: %v", err)
		return "抱歉，我現在無法回覆，請稍後再試。"
	}
	return reply
}

// payload prefers the classifier's extracted content over the raw
// message.
func payload(result intent.Result, text string) string {
	if strings.TrimSpace(result.Content) != "" {
		return strings.TrimSpace(result.Content)
	}
	return strings.TrimSpace(text)
}
