package usecase

import (
	"context"
	"fmt"
	"strings"

	"office-assistant/internal/intent"
	"office-assistant/internal/model"
)

const helpMessage = `我可以協助您：

📝 **待辦事項**
- 「查看待辦」列出您的事項
- 「新增待辦 買牛奶」直接新增
- 「幫我記下 跟小明討論預算」智能新增（會檢查重複）
- 「完成第 1 項」標記完成

🏢 **會議室**
- 「預約明天下午三點的會議室」
- 「查詢我的會議」
- 「取消第 1 筆預約」

ℹ️ **其他**
- 「我是誰」「你是誰」「系統狀態」
- 其他問題直接問我就可以了`

const botIntro = `我是辦公室助理機器人，協助您管理待辦事項與會議室預約，也可以回答一般問題。輸入「幫助」可以看到完整功能列表。`

func (uc *implUseCase) handleInfo(ctx context.Context, sc model.Scope, result intent.Result) string {
	switch result.Action {
	case "user_info":
		return uc.infoUser(ctx, sc)
	case "bot_info":
		return botIntro
	case "status":
		return uc.infoStatus(ctx, sc)
	default:
		return helpMessage
	}
}

func (uc *implUseCase) infoUser(ctx context.Context, sc model.Scope) string {
	profile, err := uc.users.GetProfile(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.infoUser: %v", err)
		return "查詢個人資訊時發生問題，請稍後再試。"
	}

	var b strings.Builder
	b.WriteString("👤 **您的資訊**\n")
	fmt.Fprintf(&b, "姓名：%s\n", orUnset(profile.Name))
	fmt.Fprintf(&b, "Email：%s\n", orUnset(profile.Mail))
	fmt.Fprintf(&b, "部門：%s\n", orUnset(profile.Department))
	fmt.Fprintf(&b, "職稱：%s", orUnset(profile.JobTitle))
	if profile.PreferredModel != "" {
		fmt.Fprintf(&b, "\n偏好模型：%s", profile.PreferredModel)
	}
	return b.String()
}

func (uc *implUseCase) infoStatus(ctx context.Context, sc model.Scope) string {
	stats, err := uc.todos.Stats(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.infoStatus: %v", err)
		return "查詢系統狀態時發生問題，請稍後再試。"
	}
	return fmt.Sprintf("📊 系統運作正常。您的待辦：共 %d 項，未完成 %d 項，已完成 %d 項。",
		stats.Total, stats.Pending, stats.Completed)
}

func orUnset(s string) string {
	if s == "" {
		return "未設定"
	}
	return s
}
