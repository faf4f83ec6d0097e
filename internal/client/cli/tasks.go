package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/models"
	"taskpurse/internal/client/views"
	"taskpurse/internal/common"
)

const deadlineLayout = "2006-01-02"

// clearMark entered in an optional field clears the stored value.
const clearMark = "-"

func (a *App) header(ctx context.Context, title string) string {
	if a.prefs.Theme(ctx) == common.ThemeDark {
		return "== " + strings.ToUpper(title) + " =="
	}
	return "-- " + title + " --"
}

// listTasks re-reads the collection every time the screen is shown. A failed
// read keeps the last-known snapshot on screen.
func (a *App) listTasks(ctx context.Context) {
	if err := a.taskService.Refresh(ctx); err != nil {
		a.println(err.Error())
	}
	s := a.taskService.Sections(time.Now())

	a.println(a.header(ctx, "Urgent"))
	a.printTasks(s.Urgent, true)
	a.println(a.header(ctx, "Ongoing"))
	a.printTasks(s.Ongoing, false)
	a.println(a.header(ctx, "Done"))
	a.printTasks(s.Done, false)
}

func (a *App) printTasks(tasks []models.Task, withDays bool) {
	if len(tasks) == 0 {
		a.println("  (none)")
		return
	}
	now := time.Now()
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %s  %s", mark, t.ID, t.Title)
		if withDays && t.Deadline != nil {
			d := views.DaysRemaining(*t.Deadline, now)
			if d < 0 {
				line += fmt.Sprintf("  (overdue by %d d)", -d)
			} else {
				line += fmt.Sprintf("  (%d d left)", d)
			}
		}
		a.println(line)
	}
}

func (a *App) addTask(ctx context.Context) {
	title, err := getSimpleText(a.in, "Enter title", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	description, err := getSimpleText(a.in, "Enter description (optional)", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	category, err := getSimpleText(a.in, "Enter category (optional)", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	deadlineText, err := getSimpleText(a.in, "Enter deadline YYYY-MM-DD (optional)", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}

	draft := models.Task{Title: title, Description: description, Category: category}
	if deadlineText != "" {
		deadline, err := time.Parse(deadlineLayout, deadlineText)
		if err != nil {
			a.println("Invalid deadline, expected YYYY-MM-DD")
			return
		}
		draft.Deadline = &deadline
	}

	created, err := a.taskService.Create(ctx, draft)
	if err != nil {
		a.println(err.Error())
		return
	}
	a.printf("Created task %s\n", created.ID)
}

// editTask re-reads the row from the server before editing. A row deleted
// elsewhere surfaces as an explicit message and the screen simply returns;
// nothing navigates on its own.
func (a *App) editTask(ctx context.Context, id string) {
	current, err := a.taskService.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			a.println("Task no longer exists")
			return
		}
		a.println(err.Error())
		return
	}

	a.printf("Editing %q\n", current.Title)

	var patch models.TaskPatch

	if v, err := GetOptionalText(a.in, "Title", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v != "" {
		patch.Title = &v
	}

	if v, err := GetOptionalText(a.in, "Description ('-' to clear)", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v == clearMark {
		empty := ""
		patch.Description = &empty
	} else if v != "" {
		patch.Description = &v
	}

	if v, err := GetOptionalText(a.in, "Category ('-' to clear)", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v == clearMark {
		empty := ""
		patch.Category = &empty
	} else if v != "" {
		patch.Category = &v
	}

	if v, err := GetOptionalText(a.in, "Deadline YYYY-MM-DD ('-' to clear)", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v == clearMark {
		var null *time.Time
		patch.Deadline = &null
	} else if v != "" {
		deadline, err := time.Parse(deadlineLayout, v)
		if err != nil {
			a.println("Invalid deadline, expected YYYY-MM-DD")
			return
		}
		d := &deadline
		patch.Deadline = &d
	}

	if patch.IsEmpty() {
		a.println("Nothing to change")
		return
	}
	if err := a.taskService.Update(ctx, id, patch); err != nil {
		a.println(err.Error())
		return
	}
	a.println("Saved")
}

func (a *App) toggleTask(ctx context.Context, id string) {
	if err := a.taskService.ToggleCompleted(ctx, id); err != nil {
		a.println(err.Error())
	}
}

func (a *App) deleteTask(ctx context.Context, id string) {
	if err := a.taskService.Delete(ctx, id); err != nil {
		a.println(err.Error())
		return
	}
	a.println("Deleted")
}
