// Package views contains the pure functions that partition store snapshots
// into the display sections. No state is kept here; every render recomputes
// from the current snapshot.
package views

import (
	"math"
	"time"

	"taskpurse/internal/client/models"
)

// urgentWindowDays is the days-remaining threshold at or below which an
// incomplete task with a deadline counts as urgent.
const urgentWindowDays = 3

// DaysRemaining is ceil((deadline - now) / 1 day). A deadline in the past
// yields a negative count.
func DaysRemaining(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// TaskSections holds the three task sections in their fixed display order.
type TaskSections struct {
	Urgent  []models.Task
	Ongoing []models.Task
	Done    []models.Task
}

// BuildTaskSections partitions tasks into Urgent / Ongoing / Done.
//
// Urgent: incomplete, has a deadline, and DaysRemaining <= 3. Overdue tasks
// have negative days remaining and therefore stay Urgent; there is no
// separate overdue bucket. Done: completed, regardless of deadline.
// Order within each section follows the input order.
func BuildTaskSections(tasks []models.Task, now time.Time) TaskSections {
	var s TaskSections
	for _, t := range tasks {
		switch {
		case t.Completed:
			s.Done = append(s.Done, t)
		case t.Deadline != nil && DaysRemaining(*t.Deadline, now) <= urgentWindowDays:
			s.Urgent = append(s.Urgent, t)
		default:
			s.Ongoing = append(s.Ongoing, t)
		}
	}
	return s
}

// BudgetSections holds the two budget sections.
type BudgetSections struct {
	Income  []models.BudgetItem
	Outcome []models.BudgetItem
}

// BuildBudgetSections partitions items strictly by Type, preserving input
// order within each section.
func BuildBudgetSections(items []models.BudgetItem) BudgetSections {
	var s BudgetSections
	for _, item := range items {
		if item.Type == models.TypeIncome {
			s.Income = append(s.Income, item)
		} else {
			s.Outcome = append(s.Outcome, item)
		}
	}
	return s
}

// Totals sums the magnitudes of each section.
func (s BudgetSections) Totals() (income, outcome float64) {
	for _, item := range s.Income {
		income += item.Amount
	}
	for _, item := range s.Outcome {
		outcome += item.Amount
	}
	return income, outcome
}
