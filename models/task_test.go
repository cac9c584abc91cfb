package models

import (
	"errors"
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "high", want: PriorityHigh},
		{input: "HIGH", want: PriorityHigh},
		{input: " Medium ", want: PriorityMedium},
		{input: "m", want: PriorityMedium},
		{input: "low", want: PriorityLow},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if PriorityNone.Valid() {
		t.Error("empty priority should not be valid")
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority should not be valid")
	}
}

func TestTask_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "minimal task",
			task: Task{ID: 1, Text: "buy milk"},
		},
		{
			name: "full task",
			task: Task{ID: 7, Text: "ship release", Priority: PriorityHigh, Tags: []string{"work"}},
		},
		{
			name:    "zero id",
			task:    Task{ID: 0, Text: "buy milk"},
			wantErr: true,
		},
		{
			name:    "negative id",
			task:    Task{ID: -3, Text: "buy milk"},
			wantErr: true,
		},
		{
			name:    "empty text",
			task:    Task{ID: 1},
			wantErr: true,
		},
		{
			name:    "unknown priority",
			task:    Task{ID: 1, Text: "buy milk", Priority: "urgent"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTask_HasTag(t *testing.T) {
	task := Task{ID: 1, Text: "x", Tags: []string{"home", "Errands"}}

	if !task.HasTag("home") {
		t.Error("expected exact tag match")
	}
	if task.HasTag("errands") {
		t.Error("tag match must be case-sensitive")
	}
	if task.HasTag("hom") {
		t.Error("partial tag must not match")
	}
}

func TestTask_Clone(t *testing.T) {
	due := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	orig := Task{ID: 1, Text: "x", Tags: []string{"a"}, DueDate: &due}

	c := orig.Clone()
	c.Tags[0] = "b"
	*c.DueDate = due.Add(time.Hour)

	if orig.Tags[0] != "a" {
		t.Error("clone shares tag slice with original")
	}
	if !orig.DueDate.Equal(due) {
		t.Error("clone shares due date with original")
	}
}
