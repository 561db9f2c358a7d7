package kiwi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisreis/tripwing/internal/services/kiwi"
)

func intPtr(v int) *int { return &v }

func validInput() kiwi.QueryInput {
	return kiwi.QueryInput{
		FlyFrom:  "LHR",
		FlyTo:    "JFK",
		DateFrom: "01/09/2026",
		DateTo:   "07/09/2026",
	}
}

func TestNewSearchQueryMissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*kiwi.QueryInput)
		field  string
	}{
		{"missing fly_from", func(in *kiwi.QueryInput) { in.FlyFrom = "" }, "fly_from"},
		{"missing fly_to", func(in *kiwi.QueryInput) { in.FlyTo = "" }, "fly_to"},
		{"missing date_from", func(in *kiwi.QueryInput) { in.DateFrom = "" }, "date_from"},
		{"missing date_to", func(in *kiwi.QueryInput) { in.DateTo = "" }, "date_to"},
		{"blank fly_to", func(in *kiwi.QueryInput) { in.FlyTo = "   " }, "fly_to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := kiwi.NewSearchQuery(in)
			require.Error(t, err)
			assert.EqualError(t, err, "missing or invalid "+tt.field+" parameter")
		})
	}
}

func TestNewSearchQueryDefaults(t *testing.T) {
	query, err := kiwi.NewSearchQuery(validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, query.Adults)
	assert.Equal(t, 0, query.Children)
	assert.Equal(t, 0, query.Infants)
	assert.Equal(t, "M", query.SelectedCabins)
	assert.Equal(t, "EUR", query.Curr)
	assert.Equal(t, 2, query.MaxStopovers)
	assert.Equal(t, "price", query.Sort)
	assert.Equal(t, 5, query.Limit)
	assert.Empty(t, query.ReturnFrom)
	assert.Empty(t, query.ReturnTo)
}

func TestNewSearchQueryExplicitZeroIsNotDefaulted(t *testing.T) {
	in := validInput()
	in.Adults = intPtr(0)
	in.MaxStopovers = intPtr(0)

	query, err := kiwi.NewSearchQuery(in)
	require.NoError(t, err)
	assert.Equal(t, 0, query.Adults)
	assert.Equal(t, 0, query.MaxStopovers)
}

func TestNewSearchQueryKeepsCallerValues(t *testing.T) {
	in := validInput()
	in.ReturnFrom = "14/09/2026"
	in.ReturnTo = "21/09/2026"
	in.Adults = intPtr(2)
	in.Children = intPtr(1)
	in.SelectedCabins = "C"
	in.Curr = "USD"
	in.Sort = "duration"
	in.Limit = intPtr(10)

	query, err := kiwi.NewSearchQuery(in)
	require.NoError(t, err)
	assert.Equal(t, "14/09/2026", query.ReturnFrom)
	assert.Equal(t, "21/09/2026", query.ReturnTo)
	assert.Equal(t, 2, query.Adults)
	assert.Equal(t, 1, query.Children)
	assert.Equal(t, "C", query.SelectedCabins)
	assert.Equal(t, "USD", query.Curr)
	assert.Equal(t, "duration", query.Sort)
	assert.Equal(t, 10, query.Limit)
}

func TestValuesOneWay(t *testing.T) {
	query, err := kiwi.NewSearchQuery(validInput())
	require.NoError(t, err)

	values := query.Values()
	assert.Equal(t, "LHR", values.Get("fly_from"))
	assert.Equal(t, "JFK", values.Get("fly_to"))
	assert.Equal(t, "01/09/2026", values.Get("date_from"))
	assert.Equal(t, "07/09/2026", values.Get("date_to"))
	assert.Equal(t, "1", values.Get("adults"))
	assert.Equal(t, "0", values.Get("children"))
	assert.Equal(t, "0", values.Get("infants"))
	assert.Equal(t, "M", values.Get("selected_cabins"))
	assert.Equal(t, "EUR", values.Get("curr"))
	assert.Equal(t, "2", values.Get("max_stopovers"))
	assert.Equal(t, "price", values.Get("sort"))
	assert.Equal(t, "5", values.Get("limit"))

	_, hasReturnFrom := values["return_from"]
	_, hasReturnTo := values["return_to"]
	assert.False(t, hasReturnFrom)
	assert.False(t, hasReturnTo)
}

func TestValuesRoundTrip(t *testing.T) {
	in := validInput()
	in.ReturnFrom = "14/09/2026"
	in.ReturnTo = "21/09/2026"

	query, err := kiwi.NewSearchQuery(in)
	require.NoError(t, err)

	values := query.Values()
	assert.Equal(t, "14/09/2026", values.Get("return_from"))
	assert.Equal(t, "21/09/2026", values.Get("return_to"))
}
