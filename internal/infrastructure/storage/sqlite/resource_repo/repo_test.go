package resource_repo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/types"
	"grainpay/internal/domain"
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/storage/sqlite"
)

func setupDB(t *testing.T) *sqlite.TxManager {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "grainpay.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, sqlite.Migrate(ctx, db))
	return sqlite.NewTxManager(db)
}

var fixedNow = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

func TestExpenseRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepo(setupDB(t))

	date := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Save(ctx, expense.NewExpense("Cellphone", types.MustMoney("1000.00"), date, expense.PaymentMoney, fixedNow))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Cellphone", created.Description)
	assert.True(t, created.Amount.Equal(types.MustMoney("1000")))
	assert.True(t, created.Date.Equal(date))
	assert.True(t, created.CreatedAt.Equal(fixedNow))
	assert.Equal(t, expense.PaymentMoney, created.PaymentType)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got.Description = "Phone bill"
	got.PaymentType = expense.PaymentCreditCard
	got.Amount = types.MustMoney("12.34")
	got.Touch(fixedNow.Add(time.Hour))
	updated, err := repo.Save(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Phone bill", updated.Description)
	assert.Equal(t, expense.PaymentCreditCard, updated.PaymentType)
	assert.Equal(t, "12.34", updated.Amount.StringFixed(2))
	assert.True(t, updated.CreatedAt.Equal(fixedNow))
	assert.True(t, updated.UpdatedAt.Equal(fixedNow.Add(time.Hour)))

	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.DeleteByID(ctx, created.ID)))
}

func TestExpenseRepo_UpdateMissingRow(t *testing.T) {
	repo := NewExpenseRepo(setupDB(t))

	ghost := expense.NewExpense("x", types.MustMoney("1"), fixedNow, expense.PaymentVoucher, fixedNow)
	ghost.AssignID(404)

	_, err := repo.Save(context.Background(), ghost)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestIncomeRepo_FindAllPagingAndSort(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepo(setupDB(t))

	for i, amount := range []string{"30", "10", "20"} {
		date := time.Date(2023, 5, i+1, 0, 0, 0, 0, time.UTC)
		_, err := repo.Save(ctx, income.NewIncome("income", types.MustMoney(amount), date, fixedNow))
		require.NoError(t, err)
	}

	page, err := repo.FindAll(ctx, domain.PageRequest{Page: 0, Size: 2, Sort: "amount"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "10", page.Content[0].Amount.String())
	assert.Equal(t, "20", page.Content[1].Amount.String())

	page, err = repo.FindAll(ctx, domain.PageRequest{Page: 0, Size: 10, Sort: "-date"})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.True(t, page.Content[0].Date.Equal(time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)))

	beyond, err := repo.FindAll(ctx, domain.PageRequest{Page: 3, Size: 10, Sort: "id"})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Content)
	assert.Empty(t, beyond.Content)

	_, err = repo.FindAll(ctx, domain.PageRequest{Page: 0, Size: 10, Sort: "paymentType"})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestIncomeRepo_AmountRoundTripsExactly(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepo(setupDB(t))

	for _, amount := range []string{"99999999999999999.99", "123456789012345.67", "0.01"} {
		saved, err := repo.Save(ctx, income.NewIncome("exact", types.MustMoney(amount), fixedNow, fixedNow))
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, amount, got.Amount.StringFixed(2))
	}
}

func TestIncomeRepo_SortsAmountNumerically(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepo(setupDB(t))

	for _, amount := range []string{"9", "100", "10.5"} {
		_, err := repo.Save(ctx, income.NewIncome("income", types.MustMoney(amount), fixedNow, fixedNow))
		require.NoError(t, err)
	}

	page, err := repo.FindAll(ctx, domain.PageRequest{Page: 0, Size: 10, Sort: "amount"})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, "9", page.Content[0].Amount.String())
	assert.Equal(t, "10.5", page.Content[1].Amount.String())
	assert.Equal(t, "100", page.Content[2].Amount.String())
}

func TestTxManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	txm := setupDB(t)
	repo := NewIncomeRepo(txm)

	err := txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Save(ctx, income.NewIncome("rolled back", types.MustMoney("1"), fixedNow, fixedNow)); err != nil {
			return err
		}
		return apperror.NewInvalidArgument("abort")
	})
	require.Error(t, err)

	page, err := repo.FindAll(ctx, domain.DefaultPageRequest())
	require.NoError(t, err)
	assert.Zero(t, page.TotalElements)
}

func TestServices_EndToEndOnSQLite(t *testing.T) {
	ctx := context.Background()
	txm := setupDB(t)
	svc := expense.NewService(NewExpenseRepo(txm), txm, func() time.Time { return fixedNow })

	amount := types.MustAmount("1000.00")
	date := types.NewDateTime(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC))
	pt := expense.PaymentMoney
	saved, err := svc.Save(ctx, expense.DTO{Description: "Cellphone", Amount: &amount, Date: &date, PaymentType: &pt})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	require.NotNil(t, saved.CreatedAt)

	saved.Description = "Cellphone case"
	updated, err := svc.UpdateByID(ctx, *saved.ID, saved)
	require.NoError(t, err)
	assert.Equal(t, "Cellphone case", updated.Description)
	assert.True(t, saved.CreatedAt.Equal(*updated.CreatedAt))

	require.NoError(t, svc.DeleteByID(ctx, *saved.ID))
	err = svc.DeleteByID(ctx, *saved.ID)
	require.Error(t, err)
	assert.Equal(t, expense.NotFoundMessage, err.(*apperror.AppError).Message)
}
