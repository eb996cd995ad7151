package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/luisrmz-dev/vendoria-backend/pkg/errors"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/analytics/cards?period=45", nil)
	value, err := ParseQueryInt(r, "period", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 45, value)
}

func TestParseQueryIntDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/analytics/cards", nil)
	value, err := ParseQueryInt(r, "period", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 30, value)
}

func TestParseQueryIntRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/analytics/cards?period=soon", nil)
	_, err := ParseQueryInt(r, "period", 30, 1, 365)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestParseQueryIntRejectsOutOfRange(t *testing.T) {
	for _, raw := range []string{"0", "366", "-5"} {
		r := httptest.NewRequest("GET", "/analytics/cards?period="+raw, nil)
		_, err := ParseQueryInt(r, "period", 30, 1, 365)
		require.Error(t, err, "period=%s", raw)
	}
}

func TestParseOptionalQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/analytics/low-stock-alerts", nil)
	value, err := ParseOptionalQueryInt(r, "threshold", 0, 1_000_000)
	require.NoError(t, err)
	assert.Nil(t, value)

	r = httptest.NewRequest("GET", "/analytics/low-stock-alerts?threshold=10", nil)
	value, err = ParseOptionalQueryInt(r, "threshold", 0, 1_000_000)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 10, *value)

	r = httptest.NewRequest("GET", "/analytics/low-stock-alerts?threshold=-1", nil)
	_, err = ParseOptionalQueryInt(r, "threshold", 0, 1_000_000)
	require.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type params struct {
		Period int `json:"period" validate:"min=1,max=365"`
	}
	require.NoError(t, ValidateStruct(params{Period: 30}))

	err := ValidateStruct(params{Period: 1000})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "period")
}
