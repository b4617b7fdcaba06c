package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"office-assistant/internal/intent"
	"office-assistant/internal/model"
	"office-assistant/internal/user"
)

// modelTokenPattern matches plausible model identifiers in free text,
// e.g. "gpt-4o-mini" or "deepseek-chat".
var modelTokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9._-]+`)

func (uc *implUseCase) handleModelSelect(ctx context.Context, sc model.Scope, result intent.Result) string {
	for _, token := range modelTokenPattern.FindAllString(result.Content, -1) {
		profile, err := uc.users.SetPreferredModel(ctx, sc, token)
		if err == nil {
			return fmt.Sprintf("已切換至 %s，之後的對話都會使用這個模型。", profile.PreferredModel)
		}
		if !errors.Is(err, user.ErrUnknownModel) {
			uc.l.Errorf(ctx, "assistant.handleModelSelect: %v", err)
			return "切換模型時發生問題，請稍後再試。"
		}
	}
	return "請告訴我要切換的模型名稱，例如「使用 gpt-4o-mini」。"
}
