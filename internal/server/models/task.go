package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Task is one row of the tasks collection, scoped to its owner.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UserID      string     `json:"user_id"`
}

// TaskPatch is a partial update decoded from a PATCH body. Only fields
// present in the JSON are applied. Deadline needs the extra DeadlineSet flag
// because "deadline": null clears the value while an absent key leaves it
// unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Category    *string
	Deadline    *time.Time
	DeadlineSet bool
}

var jsonNull = []byte("null")

func (p *TaskPatch) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       *string         `json:"title"`
		Description *string         `json:"description"`
		Completed   *bool           `json:"completed"`
		Category    *string         `json:"category"`
		Deadline    json.RawMessage `json:"deadline"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Title = raw.Title
	p.Description = raw.Description
	p.Completed = raw.Completed
	p.Category = raw.Category

	if raw.Deadline != nil {
		p.DeadlineSet = true
		if !bytes.Equal(bytes.TrimSpace(raw.Deadline), jsonNull) {
			var deadline time.Time
			if err := json.Unmarshal(raw.Deadline, &deadline); err != nil {
				return err
			}
			p.Deadline = &deadline
		}
	}
	return nil
}

// IsEmpty reports whether the patch names no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Category == nil && !p.DeadlineSet
}
