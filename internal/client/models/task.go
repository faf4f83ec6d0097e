// Package models defines the row types exchanged with the remote store and
// the patch types used for partial updates.
package models

import "time"

// Task is one row of the tasks collection. ID and CreatedAt are assigned by
// the server; UserID scopes the row to its owner.
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

// TaskPatch is a partial update: only non-nil fields are written. Deadline
// uses a double pointer so "set to null" and "leave unchanged" stay distinct.
type TaskPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Completed   *bool       `json:"completed,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Deadline    **time.Time `json:"deadline,omitempty"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Category == nil && p.Deadline == nil
}

// ApplyTo returns a copy of t with the named fields replaced.
func (p TaskPatch) ApplyTo(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	return t
}
