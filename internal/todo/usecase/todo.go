package usecase

import (
	"context"
	"fmt"
	"strings"

	"office-assistant/internal/model"
	"office-assistant/internal/todo"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return todo.CreateOutput{}, todo.ErrEmptyContent
	}

	item, err := uc.repo.Create(ctx, model.TodoItem{
		UserMail: sc.UserMail,
		Content:  content,
	})
	if err != nil {
		return todo.CreateOutput{}, fmt.Errorf("todo.Create: %w", err)
	}

	uc.l.Infof(ctx, "todo.Create: user=%s id=%s", sc.UserMail, item.ID)
	return todo.CreateOutput{Item: item}, nil
}

// SmartCreate checks pending items for near-duplicates before
// creating. Candidates soft-block the create: the item is not stored
// and the matches are returned for user confirmation.
func (uc *implUseCase) SmartCreate(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.SmartCreateOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return todo.SmartCreateOutput{}, todo.ErrEmptyContent
	}

	pending, err := uc.repo.ListPending(ctx, sc.UserMail)
	if err != nil {
		return todo.SmartCreateOutput{}, fmt.Errorf("todo.SmartCreate: list pending: %w", err)
	}

	matches := uc.detector.FindSimilar(content, pending)
	if len(matches) > 0 {
		uc.l.Infof(ctx, "todo.SmartCreate: user=%s found %d duplicate candidate(s), holding create",
			sc.UserMail, len(matches))
		return todo.SmartCreateOutput{Duplicates: matches}, nil
	}

	item, err := uc.repo.Create(ctx, model.TodoItem{
		UserMail: sc.UserMail,
		Content:  content,
	})
	if err != nil {
		return todo.SmartCreateOutput{}, fmt.Errorf("todo.SmartCreate: %w", err)
	}

	uc.l.Infof(ctx, "todo.SmartCreate: user=%s id=%s", sc.UserMail, item.ID)
	return todo.SmartCreateOutput{Created: true, Item: item}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (todo.ListOutput, error) {
	items, err := uc.repo.ListByUser(ctx, sc.UserMail)
	if err != nil {
		return todo.ListOutput{}, fmt.Errorf("todo.List: %w", err)
	}

	var out todo.ListOutput
	for _, item := range items {
		switch {
		case item.IsPending():
			out.Pending = append(out.Pending, item)
		case item.IsCompleted():
			out.Completed = append(out.Completed, item)
		}
	}
	return out, nil
}

// Complete marks pending items by their 1-based display positions.
// Out-of-range indices are collected rather than failing the whole
// request, so one typo does not lose the valid completions.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input todo.CompleteInput) (todo.CompleteOutput, error) {
	if len(input.Indices) == 0 {
		return todo.CompleteOutput{}, todo.ErrNoIndices
	}

	pending, err := uc.repo.ListPending(ctx, sc.UserMail)
	if err != nil {
		return todo.CompleteOutput{}, fmt.Errorf("todo.Complete: list pending: %w", err)
	}

	var out todo.CompleteOutput
	for _, idx := range input.Indices {
		if idx < 1 || idx > len(pending) {
			out.InvalidIndices = append(out.InvalidIndices, idx)
			continue
		}

		item, err := uc.repo.UpdateStatus(ctx, sc.UserMail, pending[idx-1].ID, model.TodoStatusCompleted)
		if err != nil {
			return todo.CompleteOutput{}, fmt.Errorf("todo.Complete: update item %s: %w", pending[idx-1].ID, err)
		}
		out.Completed = append(out.Completed, item)
	}

	uc.l.Infof(ctx, "todo.Complete: user=%s completed=%d invalid=%d",
		sc.UserMail, len(out.Completed), len(out.InvalidIndices))
	return out, nil
}

func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (model.TodoStats, error) {
	items, err := uc.repo.ListByUser(ctx, sc.UserMail)
	if err != nil {
		return model.TodoStats{}, fmt.Errorf("todo.Stats: %w", err)
	}

	var stats model.TodoStats
	for _, item := range items {
		stats.Total++
		switch item.Status {
		case model.TodoStatusPending:
			stats.Pending++
		case model.TodoStatusCompleted:
			stats.Completed++
		case model.TodoStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}
