package income

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/tx"
	"grainpay/internal/core/types"
	"grainpay/internal/core/validate"
	"grainpay/internal/domain"
)

func TestDTO_DecodeAndValidate(t *testing.T) {
	body := `{"description":"Salary","amount":"5200.1","date":"2023-05-05"}`

	var dto DTO
	require.NoError(t, json.Unmarshal([]byte(body), &dto))
	require.NoError(t, validate.Struct(&dto))

	assert.Equal(t, "5200.10", dto.Amount.String())
	assert.Equal(t, "2023-05-05", dto.Date.String())
}

func TestDTO_RejectsDateTime(t *testing.T) {
	var dto DTO
	assert.Error(t, json.Unmarshal([]byte(`{"date":"2023-05-05T10:00:00"}`), &dto))
}

func TestDTO_ValidationMessages(t *testing.T) {
	err := validate.Struct(DTO{})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"description: Description cannot be empty",
		"amount: Amount cannot be null",
		"date: Date cannot be null",
	}, appErr.Errors)
}

func TestMapper_RoundTrip(t *testing.T) {
	now := time.Date(2023, 5, 6, 12, 0, 0, 0, time.UTC)
	m := NewMapper(func() time.Time { return now })

	amount := types.MustAmount("5200.10")
	date := types.NewDate(time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC))
	in := DTO{Description: "Salary", Amount: &amount, Date: &date}

	e := m.ToEntity(in)
	assert.True(t, e.IsNew())
	e.AssignID(3)

	out := m.ToDTO(e)
	require.NotNil(t, out.ID)
	assert.Equal(t, int64(3), *out.ID)
	assert.Equal(t, "Salary", out.Description)
	assert.True(t, amount.Equal(*out.Amount))
	assert.True(t, date.Equal(*out.Date))
	require.NotNil(t, out.CreatedAt)
	assert.Equal(t, "2023-05-06T12:00:00", out.CreatedAt.String())

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"description": "Salary",
		"amount": 5200.10,
		"date": "2023-05-05",
		"createdAt": "2023-05-06T12:00:00",
		"updatedAt": "2023-05-06T12:00:00"
	}`, string(data))
}

func TestNewIncome_DropsTimeOfDay(t *testing.T) {
	i := NewIncome("Bonus", types.MustMoney("10"), time.Date(2023, 5, 5, 18, 45, 0, 0, time.UTC), time.Now())
	assert.Equal(t, time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), i.Date)
}

// emptyRepo finds nothing.
type emptyRepo struct{}

func (emptyRepo) FindAll(_ context.Context, p domain.PageRequest) (domain.Page[*Income], error) {
	return domain.Page[*Income]{Number: p.Page, Size: p.Size}, nil
}

func (emptyRepo) FindByID(_ context.Context, id int64) (*Income, error) {
	return nil, apperror.NewRecordNotFound("incomes", id)
}

func (emptyRepo) Save(_ context.Context, e *Income) (*Income, error) {
	return nil, apperror.NewRecordNotFound("incomes", e.ID)
}

func (emptyRepo) DeleteByID(_ context.Context, id int64) error {
	return apperror.NewRecordNotFound("incomes", id)
}

func TestService_NotFoundMessage(t *testing.T) {
	var svc Service = NewService(emptyRepo{}, tx.Passthrough, nil)

	_, err := svc.FindByID(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "Income not found!", err.(*apperror.AppError).Message)

	err = svc.DeleteByID(context.Background(), 999)
	assert.True(t, apperror.IsNotFound(err))

	page, err := svc.FindAll(context.Background(), domain.DefaultPageRequest())
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}
