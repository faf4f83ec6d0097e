package cli

import (
	"context"
	"errors"
	"fmt"

	"taskpurse/internal/client/client"
	"taskpurse/internal/client/models"
	"taskpurse/internal/common"
	"taskpurse/internal/currency"
)

// listBudget re-reads the collection every time the screen is shown. A failed
// read keeps the last-known snapshot on screen.
func (a *App) listBudget(ctx context.Context) {
	if err := a.budgetService.Refresh(ctx); err != nil {
		a.println(err.Error())
	}
	s := a.budgetService.Sections()
	symbol := currency.Symbol(a.prefs.Currency(ctx))

	a.println(a.header(ctx, "Income"))
	a.printBudgetItems(s.Income)
	a.println(a.header(ctx, "Outcome"))
	a.printBudgetItems(s.Outcome)

	income, outcome := s.Totals()
	a.printf("Total: +%s%.2f / -%s%.2f\n", symbol, income, symbol, outcome)
}

func (a *App) printBudgetItems(items []models.BudgetItem) {
	if len(items) == 0 {
		a.println("  (none)")
		return
	}
	for _, item := range items {
		a.printf("  %s  %s%.2f  %s\n", item.ID, currency.Symbol(item.Currency), item.Amount, item.Title)
	}
}

func (a *App) addBudgetItem(ctx context.Context) {
	title, err := getSimpleText(a.in, "Enter title", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	amountText, err := getSimpleText(a.in, "Enter amount", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	amount, err := common.ParseAmount(amountText)
	if err != nil {
		a.println(err.Error())
		return
	}
	direction, err := getSimpleText(a.in, "Enter type (income/outcome)", a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	code, err := GetOptionalText(a.in, fmt.Sprintf("Currency (default %s)", a.prefs.Currency(ctx)), a.out)
	if err != nil {
		a.println(err.Error())
		return
	}
	if code == "" {
		code = a.prefs.Currency(ctx)
	}

	created, err := a.budgetService.Create(ctx, models.BudgetItem{
		Title:    title,
		Amount:   amount,
		Type:     models.BudgetItemType(direction),
		Currency: code,
	})
	if err != nil {
		a.println(err.Error())
		return
	}
	a.printf("Created budget item %s\n", created.ID)
}

func (a *App) editBudgetItem(ctx context.Context, id string) {
	current, err := a.budgetService.Fetch(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			a.println("Budget item no longer exists")
			return
		}
		a.println(err.Error())
		return
	}

	a.printf("Editing %q\n", current.Title)

	var patch models.BudgetItemPatch

	if v, err := GetOptionalText(a.in, "Title", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v != "" {
		patch.Title = &v
	}

	if v, err := GetOptionalText(a.in, "Amount", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v != "" {
		amount, err := common.ParseAmount(v)
		if err != nil {
			a.println(err.Error())
			return
		}
		patch.Amount = &amount
	}

	if v, err := GetOptionalText(a.in, "Currency", a.out); err != nil {
		a.println(err.Error())
		return
	} else if v != "" {
		patch.Currency = &v
	}

	if patch.IsEmpty() {
		a.println("Nothing to change")
		return
	}
	if err := a.budgetService.Update(ctx, id, patch); err != nil {
		a.println(err.Error())
		return
	}
	a.println("Saved")
}

func (a *App) toggleBudgetItem(ctx context.Context, id string) {
	if err := a.budgetService.ToggleType(ctx, id); err != nil {
		a.println(err.Error())
	}
}

func (a *App) deleteBudgetItem(ctx context.Context, id string) {
	if err := a.budgetService.Delete(ctx, id); err != nil {
		a.println(err.Error())
		return
	}
	a.println("Deleted")
}
