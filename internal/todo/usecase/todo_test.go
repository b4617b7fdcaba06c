package usecase

import (
	"context"
	"errors"
	"testing"

	"office-assistant/internal/model"
	"office-assistant/internal/todo"
	"office-assistant/internal/todo/repository/inmem"
)

func newTestUseCase() todo.UseCase {
	return New(&mockLogger{}, inmem.New(), nil)
}

func testScope() model.Scope {
	return model.Scope{
		UserID:   "user-1",
		UserMail: "alice@example.com",
		UserName: "Alice",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	sc := testScope()

	t.Run("success", func(t *testing.T) {
		out, err := uc.Create(ctx, sc, todo.CreateInput{Content: "買牛奶"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID == "" {
			t.Error("expected generated ID")
		}
		if out.Item.Status != model.TodoStatusPending {
			t.Errorf("expected pending status, got %s", out.Item.Status)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := uc.Create(ctx, sc, todo.CreateInput{Content: "   "})
		if !errors.Is(err, todo.ErrEmptyContent) {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
	})
}

func TestSmartCreate(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	t.Run("creates when no duplicates", func(t *testing.T) {
		uc := newTestUseCase()
		out, err := uc.SmartCreate(ctx, sc, todo.CreateInput{Content: "和小明討論Q3預算"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created || len(out.Duplicates) != 0 {
			t.Errorf("expected clean create, got %+v", out)
		}
	})

	t.Run("holds create on duplicate candidate", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: "和小明討論Q3預算"}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}

		out, err := uc.SmartCreate(ctx, sc, todo.CreateInput{Content: "跟小明討論第三季預算案"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created {
			t.Error("duplicate candidate must block the create")
		}
		if len(out.Duplicates) != 1 {
			t.Fatalf("expected 1 duplicate candidate, got %d", len(out.Duplicates))
		}
		if out.Duplicates[0].Item.Content != "和小明討論Q3預算" {
			t.Errorf("unexpected candidate: %+v", out.Duplicates[0])
		}

		// The held item must not have been stored.
		list, err := uc.List(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Pending) != 1 {
			t.Errorf("expected 1 pending item, got %d", len(list.Pending))
		}
	})

	t.Run("completed items are not duplicate candidates", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: "和小明討論Q3預算"}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		if _, err := uc.Complete(ctx, sc, todo.CompleteInput{Indices: []int{1}}); err != nil {
			t.Fatalf("complete failed: %v", err)
		}

		out, err := uc.SmartCreate(ctx, sc, todo.CreateInput{Content: "跟小明討論第三季預算案"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created {
			t.Errorf("completed item must not block create: %+v", out)
		}
	})

	t.Run("users are isolated", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: "和小明討論Q3預算"}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}

		other := model.Scope{UserMail: "bob@example.com"}
		out, err := uc.SmartCreate(ctx, other, todo.CreateInput{Content: "跟小明討論第三季預算案"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Created {
			t.Error("another user's items must not block create")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	sc := testScope()

	for _, content := range []string{"第一件事", "第二件事", "第三件事"} {
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: content}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}
	if _, err := uc.Complete(ctx, sc, todo.CompleteInput{Indices: []int{2}}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	out, err := uc.List(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Pending) != 2 || len(out.Completed) != 1 {
		t.Fatalf("expected 2 pending / 1 completed, got %d/%d", len(out.Pending), len(out.Completed))
	}
	if out.Completed[0].Content != "第二件事" {
		t.Errorf("unexpected completed item: %+v", out.Completed[0])
	}
	if out.Completed[0].CompletedAt == nil {
		t.Error("expected CompletedAt set")
	}
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	t.Run("indices are 1-based display positions", func(t *testing.T) {
		uc := newTestUseCase()
		for _, content := range []string{"甲", "乙", "丙"} {
			if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: content}); err != nil {
				t.Fatalf("seed create failed: %v", err)
			}
		}

		out, err := uc.Complete(ctx, sc, todo.CompleteInput{Indices: []int{1, 3}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Completed) != 2 {
			t.Fatalf("expected 2 completions, got %d", len(out.Completed))
		}
		if out.Completed[0].Content != "甲" || out.Completed[1].Content != "丙" {
			t.Errorf("unexpected completions: %+v", out.Completed)
		}
	})

	t.Run("out-of-range indices are collected", func(t *testing.T) {
		uc := newTestUseCase()
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: "甲"}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}

		out, err := uc.Complete(ctx, sc, todo.CompleteInput{Indices: []int{0, 1, 5}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Completed) != 1 {
			t.Errorf("expected 1 completion, got %d", len(out.Completed))
		}
		if len(out.InvalidIndices) != 2 {
			t.Errorf("expected 2 invalid indices, got %v", out.InvalidIndices)
		}
	})

	t.Run("no indices", func(t *testing.T) {
		uc := newTestUseCase()
		_, err := uc.Complete(ctx, sc, todo.CompleteInput{})
		if !errors.Is(err, todo.ErrNoIndices) {
			t.Fatalf("expected ErrNoIndices, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	sc := testScope()

	for _, content := range []string{"甲", "乙", "丙"} {
		if _, err := uc.Create(ctx, sc, todo.CreateInput{Content: content}); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}
	if _, err := uc.Complete(ctx, sc, todo.CompleteInput{Indices: []int{1}}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	stats, err := uc.Stats(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.Pending != 2 || stats.Completed != 1 || stats.Cancelled != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
