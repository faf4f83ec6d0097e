package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskpurse/internal/client/models"
)

func TestListBudget_SectionsAndTotals(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}
	stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "salary", Amount: 1000, Type: models.TypeIncome, Currency: "USD"})
	stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "rent", Amount: 600, Type: models.TypeOutcome, Currency: "USD"})

	a, out := newTestApp(t, stub, "")
	require.NoError(t, a.budgetService.Refresh(ctx))

	a.listBudget(ctx)
	text := out.String()

	require.Contains(t, text, "-- Income --")
	require.Contains(t, text, "salary")
	require.Contains(t, text, "-- Outcome --")
	require.Contains(t, text, "rent")
	require.Contains(t, text, "Total: +$1000.00 / -$600.00")
}

func TestListBudget_FetchesOnShow(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}
	stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "added elsewhere", Amount: 10, Type: models.TypeIncome, Currency: "USD"})

	// no prior Refresh: showing the screen must issue the read itself
	a, out := newTestApp(t, stub, "")
	a.listBudget(ctx)

	require.Contains(t, out.String(), "added elsewhere")
}

func TestListBudget_TotalsUsePreferredCurrencySymbol(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}
	stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "salary", Amount: 100, Type: models.TypeIncome, Currency: "USD"})

	a, out := newTestApp(t, stub, "")
	require.NoError(t, a.budgetService.Refresh(ctx))

	a.setCurrency(ctx, "EUR")
	a.listBudget(ctx)

	require.Contains(t, out.String(), "Total: +€100.00 / -€0.00")
}

func TestAddBudgetItem_DefaultsCurrencyFromPreference(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}

	// title, amount, type, currency left empty
	a, out := newTestApp(t, stub, "groceries\n42.50\noutcome\n\n")
	a.setCurrency(ctx, "GBP")
	a.addBudgetItem(ctx)

	require.Contains(t, out.String(), "Created budget item id-1")
	got, ok := a.budgetService.Get("id-1")
	require.True(t, ok)
	require.Equal(t, 42.5, got.Amount)
	require.Equal(t, "GBP", got.Currency)
	require.Equal(t, models.TypeOutcome, got.Type)
}

func TestAddBudgetItem_RejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}

	a, out := newTestApp(t, stub, "groceries\n-5\n")
	a.addBudgetItem(ctx)

	require.Contains(t, out.String(), "amount")
	require.Empty(t, stub.items)
}

func TestToggleBudgetItem(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}
	created, err := stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "refund", Amount: 20, Type: models.TypeOutcome, Currency: "USD"})
	require.NoError(t, err)

	a, _ := newTestApp(t, stub, "")
	require.NoError(t, a.budgetService.Refresh(ctx))

	a.toggleBudgetItem(ctx, created.ID)

	got, ok := a.budgetService.Get(created.ID)
	require.True(t, ok)
	require.Equal(t, models.TypeIncome, got.Type)
	require.Equal(t, 20.0, got.Amount)
}

func TestEditBudgetItem_AmountOnly(t *testing.T) {
	ctx := context.Background()
	stub := &stubClient{}
	created, err := stub.CreateBudgetItem(ctx, models.BudgetItem{Title: "rent", Amount: 600, Type: models.TypeOutcome, Currency: "USD"})
	require.NoError(t, err)

	// title keep, amount 650, currency keep
	a, out := newTestApp(t, stub, "\n650\n\n")
	require.NoError(t, a.budgetService.Refresh(ctx))

	a.editBudgetItem(ctx, created.ID)
	require.Contains(t, out.String(), "Saved")

	got, ok := a.budgetService.Get(created.ID)
	require.True(t, ok)
	require.Equal(t, 650.0, got.Amount)
	require.Equal(t, "rent", got.Title)
}
