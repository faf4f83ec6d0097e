package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) getStatus() string {
	s := ""
	if u := a.authService.CurrentUser(); u != nil {
		s = u.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	a.println("Welcome to TaskPurse CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(a.in)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		a.printf("tp %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				a.println("Available commands: tasks, task add|edit|done|del <id>, budget, budget add|edit|toggle|del <id>, settings, theme <light|dark>, currency <code>, refresh, logout, exit")
			} else {
				a.println("Available commands: register, login, exit")
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				a.println(err.Error())
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				a.println(err.Error())
			}
		case "logout":
			if err := a.Logout(ctx); err != nil {
				a.println(err.Error())
			}

		case "tasks":
			a.listTasks(ctx)
		case "task":
			a.taskCommand(ctx, args)

		case "budget":
			if len(args) == 0 {
				a.listBudget(ctx)
			} else {
				a.budgetCommand(ctx, args)
			}

		case "settings":
			a.showSettings(ctx)
		case "theme":
			if len(args) == 0 {
				a.println("Usage: theme <light|dark>")
				continue
			}
			a.setTheme(ctx, args[0])
		case "currency":
			if len(args) == 0 {
				a.println("Usage: currency <code>")
				continue
			}
			a.setCurrency(ctx, args[0])

		case "refresh":
			a.refresh(ctx)

		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

func (a *App) taskCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("Usage: task add|edit|done|del <id>")
		return
	}
	switch args[0] {
	case "add":
		a.addTask(ctx)
	case "edit":
		if len(args) < 2 {
			a.println("Usage: task edit <id>")
			return
		}
		a.editTask(ctx, args[1])
	case "done":
		if len(args) < 2 {
			a.println("Usage: task done <id>")
			return
		}
		a.toggleTask(ctx, args[1])
	case "del":
		if len(args) < 2 {
			a.println("Usage: task del <id>")
			return
		}
		a.deleteTask(ctx, args[1])
	default:
		a.println("Unknown task command:", args[0])
	}
}

func (a *App) budgetCommand(ctx context.Context, args []string) {
	switch args[0] {
	case "add":
		a.addBudgetItem(ctx)
	case "edit":
		if len(args) < 2 {
			a.println("Usage: budget edit <id>")
			return
		}
		a.editBudgetItem(ctx, args[1])
	case "toggle":
		if len(args) < 2 {
			a.println("Usage: budget toggle <id>")
			return
		}
		a.toggleBudgetItem(ctx, args[1])
	case "del":
		if len(args) < 2 {
			a.println("Usage: budget del <id>")
			return
		}
		a.deleteBudgetItem(ctx, args[1])
	default:
		a.println("Unknown budget command:", args[0])
	}
}

func (a *App) refresh(ctx context.Context) {
	if err := a.taskService.Refresh(ctx); err != nil {
		a.println("tasks:", err.Error())
	}
	if err := a.budgetService.Refresh(ctx); err != nil {
		a.println("budget:", err.Error())
	}
}
