package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"office-assistant/internal/intent"
	"office-assistant/internal/model"
	"office-assistant/internal/todo"
)

var indexPattern = regexp.MustCompile(`\d+`)

func (uc *implUseCase) handleTodo(ctx context.Context, sc model.Scope, result intent.Result, text string) string {
	switch result.Action {
	case "add":
		return uc.todoAdd(ctx, sc, payload(result, text))
	case "smart_add":
		return uc.todoSmartAdd(ctx, sc, payload(result, text))
	case "complete":
		return uc.todoComplete(ctx, sc, payload(result, text))
	default:
		return uc.todoList(ctx, sc)
	}
}

func (uc *implUseCase) todoList(ctx context.Context, sc model.Scope) string {
	out, err := uc.todos.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.todoList: %v", err)
		return "查詢待辦事項時發生問題，請稍後再試。"
	}
	if len(out.Pending) == 0 && len(out.Completed) == 0 {
		return "您目前沒有任何待辦事項。"
	}

	var b strings.Builder
	if len(out.Pending) > 0 {
		b.WriteString("📝 **待辦事項**\n")
		for i, item := range out.Pending {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Content)
		}
	} else {
		b.WriteString("📝 目前沒有未完成的待辦事項。\n")
	}
	if len(out.Completed) > 0 {
		fmt.Fprintf(&b, "\n✅ 已完成 %d 項", len(out.Completed))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (uc *implUseCase) todoAdd(ctx context.Context, sc model.Scope, content string) string {
	out, err := uc.todos.Create(ctx, sc, todo.CreateInput{Content: content})
	if err != nil {
		if errors.Is(err, todo.ErrEmptyContent) {
			return "請告訴我要新增的待辦內容。"
		}
		uc.l.Errorf(ctx, "assistant.todoAdd: %v", err)
		return "新增待辦事項時發生問題，請稍後再試。"
	}
	return fmt.Sprintf("已新增待辦：%s", out.Item.Content)
}

func (uc *implUseCase) todoSmartAdd(ctx context.Context, sc model.Scope, content string) string {
	out, err := uc.todos.SmartCreate(ctx, sc, todo.CreateInput{Content: content})
	if err != nil {
		if errors.Is(err, todo.ErrEmptyContent) {
			return "請告訴我要新增的待辦內容。"
		}
		uc.l.Errorf(ctx, "assistant.todoSmartAdd: %v", err)
		return "新增待辦事項時發生問題，請稍後再試。"
	}

	if out.Created {
		return fmt.Sprintf("已新增待辦：%s", out.Item.Content)
	}

	var b strings.Builder
	b.WriteString("⚠️ 發現可能重複的待辦事項：\n")
	for i, match := range out.Duplicates {
		fmt.Fprintf(&b, "%d. %s（相似度 %d%%）\n", i+1, match.Item.Content, match.SimilarityPercent)
	}
	b.WriteString("\n如果仍要新增，請明確告訴我「直接新增」。")
	return b.String()
}

func (uc *implUseCase) todoComplete(ctx context.Context, sc model.Scope, content string) string {
	var indices []int
	for _, raw := range indexPattern.FindAllString(content, -1) {
		if n, err := strconv.Atoi(raw); err == nil {
			indices = append(indices, n)
		}
	}
	if len(indices) == 0 {
		return "請告訴我要完成第幾項，例如「完成第 1 項」。"
	}

	out, err := uc.todos.Complete(ctx, sc, todo.CompleteInput{Indices: indices})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.todoComplete: %v", err)
		return "標記完成時發生問題，請稍後再試。"
	}

	var b strings.Builder
	for _, item := range out.Completed {
		fmt.Fprintf(&b, "✅ 已完成：%s\n", item.Content)
	}
	if len(out.InvalidIndices) > 0 {
		fmt.Fprintf(&b, "（找不到第 %s 項）", joinInts(out.InvalidIndices))
	}
	if b.Len() == 0 {
		return "找不到對應的待辦事項，請先用「查看待辦」確認編號。"
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "、")
}
