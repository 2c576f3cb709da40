package expense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/types"
	"grainpay/internal/core/validate"
)

func TestPaymentType_JSON(t *testing.T) {
	tests := []struct {
		pt    PaymentType
		wire  string
		label string
	}{
		{PaymentMoney, `"Money"`, "Money"},
		{PaymentVoucher, `"VR"`, "Voucher"},
		{PaymentCreditCard, `"Credit Card"`, "Credit Card"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			data, err := json.Marshal(tt.pt)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))
			assert.Equal(t, tt.label, tt.pt.Label())

			var got PaymentType
			require.NoError(t, json.Unmarshal([]byte(tt.wire), &got))
			assert.Equal(t, tt.pt, got)
		})
	}
}

func TestPaymentType_UnknownTagRejected(t *testing.T) {
	var pt PaymentType
	assert.Error(t, json.Unmarshal([]byte(`"Bitcoin"`), &pt))
	assert.Error(t, json.Unmarshal([]byte(`3`), &pt))

	for _, code := range []string{`"MONEY"`, `"CREDIT_CARD"`, `"money"`} {
		assert.Error(t, json.Unmarshal([]byte(code), &pt), code)
	}
}

func TestPaymentType_ScanStorageCode(t *testing.T) {
	var pt PaymentType
	require.NoError(t, pt.Scan([]byte("CREDIT_CARD")))
	assert.Equal(t, PaymentCreditCard, pt)

	v, err := pt.Value()
	require.NoError(t, err)
	assert.Equal(t, "CREDIT_CARD", v)

	_, err = PaymentType("CASH").Value()
	assert.Error(t, err)

	assert.Error(t, pt.Scan("Credit Card"), "wire tags are not storage codes")
}

func TestDTO_DecodeCreateRequest(t *testing.T) {
	body := `{"description":"Cellphone","amount":1000.00,"date":"2023-04-01T00:00:00","paymentType":"Money"}`

	var dto DTO
	require.NoError(t, json.Unmarshal([]byte(body), &dto))
	require.NoError(t, validate.Struct(dto))

	assert.Nil(t, dto.ID)
	assert.Equal(t, "1000.00", dto.Amount.String())
	assert.Equal(t, "2023-04-01T00:00:00", dto.Date.String())
	assert.Equal(t, PaymentMoney, *dto.PaymentType)
}

func TestDTO_ValidationMessages(t *testing.T) {
	err := validate.Struct(DTO{Description: " "})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ValidationFailedMessage, appErr.Message)
	assert.ElementsMatch(t, []string{
		"description: Description cannot be empty",
		"amount: Amount cannot be null",
		"date: Date cannot be null",
		"paymentType: Payment type cannot be null",
	}, appErr.Errors)
}

func TestMapper_RoundTrip(t *testing.T) {
	now := time.Date(2023, 4, 2, 8, 30, 0, 0, time.UTC)
	m := NewMapper(func() time.Time { return now })

	amount := types.MustAmount("12.5")
	date := types.NewDateTime(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC))
	pt := PaymentVoucher
	id := int64(9)
	in := DTO{ID: &id, Description: "Lunch", Amount: &amount, Date: &date, PaymentType: &pt}

	e := m.ToEntity(in)
	assert.True(t, e.IsNew(), "mapper must not copy the DTO id")
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, now, e.UpdatedAt)

	e.AssignID(id)
	out := m.ToDTO(e)

	require.NotNil(t, out.ID)
	assert.Equal(t, id, *out.ID)
	assert.Equal(t, in.Description, out.Description)
	assert.True(t, in.Amount.Equal(*out.Amount))
	assert.Equal(t, "12.50", out.Amount.String())
	assert.True(t, in.Date.Equal(*out.Date))
	assert.Equal(t, pt, *out.PaymentType)
	assert.Equal(t, types.NewDateTime(now), *out.CreatedAt)
}

func TestMapper_ToDTOOmitsUnsetFields(t *testing.T) {
	out := NewMapper(nil).ToDTO(&Expense{Description: "x"})

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"x","amount":0.00}`, string(data))
}
