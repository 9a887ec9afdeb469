package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateTask(t *testing.T) {
	if err := ValidateTask("write tests"); err != nil {
		t.Errorf("expected valid task, got %v", err)
	}
	if err := ValidateTask(""); !errors.Is(err, ErrEmptyTask) {
		t.Errorf("expected ErrEmptyTask, got %v", err)
	}
	if err := ValidateTask("   \t"); !errors.Is(err, ErrEmptyTask) {
		t.Errorf("expected ErrEmptyTask for whitespace, got %v", err)
	}
}

func TestValidatePriority(t *testing.T) {
	for _, priority := range ValidPriorities() {
		if err := ValidatePriority(priority); err != nil {
			t.Errorf("expected %q to be valid, got %v", priority, err)
		}
	}

	err := ValidatePriority(Priority("urgent"))
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if !strings.Contains(err.Error(), "valid: high, medium, low") {
		t.Errorf("expected error to list valid priorities, got %q", err)
	}
}

func TestValidateTodo(t *testing.T) {
	valid := Todo{
		ID:        1,
		Task:      "water plants",
		Priority:  PriorityLow,
		CreatedAt: time.Now(),
		Tags:      []string{},
	}
	if err := ValidateTodo(&valid); err != nil {
		t.Fatalf("expected valid todo, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Todo)
		want   error
	}{
		{"empty task", func(td *Todo) { td.Task = "  " }, ErrEmptyTask},
		{"bad priority", func(td *Todo) { td.Priority = "urgent" }, ErrInvalidPriority},
		{"zero createdAt", func(td *Todo) { td.CreatedAt = time.Time{} }, ErrMissingCreatedAt},
		{"nil tags", func(td *Todo) { td.Tags = nil }, ErrMissingTags},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			todo := valid
			tc.mutate(&todo)
			if err := ValidateTodo(&todo); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Error("expected high to rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("expected medium to rank before low")
	}
	if Priority("urgent").Rank() <= PriorityLow.Rank() {
		t.Error("expected unknown priorities to rank last")
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, priority := range ValidPriorities() {
		if !priority.IsValid() {
			t.Errorf("expected %q to be valid", priority)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error("expected urgent to be invalid")
	}
	if Priority("").IsValid() {
		t.Error("expected empty priority to be invalid")
	}
}
