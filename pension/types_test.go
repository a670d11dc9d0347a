package pension_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pension-engine/pension"
	"github.com/warp/pension-engine/schedule"
)

func TestContractRecordValidate(t *testing.T) {
	valid := pension.ContractRecord{
		Sex:             "f",
		BirthDate:       date(1960, time.May, 15),
		PensionStartAge: 60,
		InitialAmount:   decPtr("1000.00"),
	}
	require.NoError(t, valid.Validate("PC-0001"))

	cases := []struct {
		name   string
		mutate func(r *pension.ContractRecord)
		field  string
	}{
		{"zero birth date", func(r *pension.ContractRecord) { r.BirthDate = time.Time{} }, "birth date"},
		{"zero start age", func(r *pension.ContractRecord) { r.PensionStartAge = 0 }, "pension start age"},
		{"negative start age", func(r *pension.ContractRecord) { r.PensionStartAge = -1 }, "pension start age"},
		{"nil amount", func(r *pension.ContractRecord) { r.InitialAmount = nil }, "initial pension amount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := valid
			tc.mutate(&rec)

			err := rec.Validate("PC-0001")
			require.Error(t, err)
			assert.True(t, errors.Is(err, pension.ErrMissingField))

			var fieldErr *pension.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.field, fieldErr.Field)
			assert.Equal(t, schedule.ContractID("PC-0001"), fieldErr.ContractID)
		})
	}
}

func TestParametersValidate(t *testing.T) {
	valid := testParams(date(2024, time.January, 1), "0.05", 80)
	require.NoError(t, valid.Validate())

	zeroRate := testParams(date(2024, time.January, 1), "0", 80)
	assert.NoError(t, zeroRate.Validate(), "a zero rate means no indexation, not a bad run")

	cases := []struct {
		name   string
		params pension.Parameters
		reason string
	}{
		{"zero report date", pension.Parameters{IndexingRate: dec("0.05"), MaxAgeYears: 80}, "missing"},
		{"negative rate", testParams(date(2024, time.January, 1), "-0.05", 80), "negative"},
		{"zero max age", pension.Parameters{ReportDate: date(2024, time.January, 1), IndexingRate: dec("0.05")}, "missing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, pension.ErrMissingParameter))
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := &pension.FieldError{ContractID: "PC-0042", Field: "birth date"}
	assert.Equal(t, "contract PC-0042: missing birth date", err.Error())
	assert.True(t, pension.IsContractError(err))
	assert.False(t, pension.IsConfigurationError(err))
}

func TestParameterErrorMessage(t *testing.T) {
	missing := &pension.ParameterError{Name: "report date"}
	assert.Equal(t, `parameter "report date": missing`, missing.Error())

	negative := &pension.ParameterError{Name: "indexing rate", Reason: "negative"}
	assert.Equal(t, `parameter "indexing rate": negative`, negative.Error())

	assert.True(t, pension.IsConfigurationError(missing))
	assert.False(t, pension.IsContractError(missing))
}
