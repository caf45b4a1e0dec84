package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"time-management.com/time-management/internal/cache"
	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	repository "time-management.com/time-management/internal/repositories"
)

func setupTags(t *testing.T) (*TagService, *testEnv) {
	env := setup(t)
	return env.tags, env
}

func TestTagValidation(t *testing.T) {
	tags, _ := setupTags(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.TagRequest
	}{
		{"missing name", dto.TagRequest{Color: "#3498db"}},
		{"name too long", dto.TagRequest{Name: strings.Repeat("x", 51), Color: "#3498db"}},
		{"bad color", dto.TagRequest{Name: "Bug", Color: "red"}},
		{"short hex", dto.TagRequest{Name: "Bug", Color: "#fff"}},
		{"no hash", dto.TagRequest{Name: "Bug", Color: "e74c3c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tags.CreateTag(ctx, tc.req); err == nil {
				t.Errorf("expected validation error for %+v", tc.req)
			} else if apperrors.StatusCode(err) != 400 {
				t.Errorf("expected 400, got %d", apperrors.StatusCode(err))
			}
		})
	}
}

func TestTagCRUD(t *testing.T) {
	tags, _ := setupTags(t)
	ctx := context.Background()

	created, err := tags.CreateTag(ctx, dto.TagRequest{Name: "Bug", Color: "#e74c3c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := tags.UpdateTag(ctx, created.ID, dto.TagRequest{Name: "Defect", Color: "#c0392b"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := tags.GetTagByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if diff := cmp.Diff(updated, got); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}

	if err := tags.DeleteTag(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := tags.GetTagByID(ctx, created.ID); !errors.Is(err, apperrors.ErrTagNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestDeleteTagDetachesFromTasks(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	creator := env.newUser(t, "a@local.test")

	tag, err := env.tags.CreateTag(ctx, dto.TagRequest{Name: "Urgent", Color: "#f39c12"})
	if err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	task, err := env.tasks.CreateTask(ctx, creator.ID, dto.CreateTaskRequest{
		Title:  "Tagged work",
		TagIDs: []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if len(task.Tags) != 1 {
		t.Fatalf("expected 1 tag on task, got %d", len(task.Tags))
	}

	if err := env.tags.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("delete tag failed: %v", err)
	}

	reloaded, err := env.tasks.GetTaskByID(ctx, creator.ID, task.ID)
	if err != nil {
		t.Fatalf("task must survive tag deletion: %v", err)
	}
	if len(reloaded.Tags) != 0 {
		t.Errorf("expected tag detached, got %d tags", len(reloaded.Tags))
	}
}

func TestTagListServedThroughCatalogue(t *testing.T) {
	// A nil redis client must behave as a pass-through, never an error.
	env := setup(t)
	ctx := context.Background()

	tags := NewTagService(repository.NewTagRepository(env.db), cache.NewTagCatalogue(nil, time.Minute))

	if _, err := tags.CreateTag(ctx, dto.TagRequest{Name: "Feature", Color: "#3498db"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := tags.ListTags(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Feature" {
		t.Errorf("unexpected list: %+v", list)
	}
}
