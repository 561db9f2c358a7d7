package kiwi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Defaults applied when optional search parameters are omitted.
const (
	DefaultAdults         = 1
	DefaultChildren       = 0
	DefaultInfants        = 0
	DefaultSelectedCabins = "M"
	DefaultCurrency       = "EUR"
	DefaultMaxStopovers   = 2
	DefaultSort           = "price"
	DefaultLimit          = 5
)

// QueryInput carries raw search parameters as received from the caller.
// Pointer fields distinguish an omitted value from an explicit zero.
type QueryInput struct {
	FlyFrom        string
	FlyTo          string
	DateFrom       string
	DateTo         string
	ReturnFrom     string
	ReturnTo       string
	Adults         *int
	Children       *int
	Infants        *int
	SelectedCabins string
	Curr           string
	MaxStopovers   *int
	Sort           string
	Limit          *int
}

// SearchQuery is a fully resolved flight search: every field holds either
// the caller's value or the documented default. Return dates stay empty when
// the caller did not ask for a round trip.
type SearchQuery struct {
	FlyFrom        string
	FlyTo          string
	DateFrom       string
	DateTo         string
	ReturnFrom     string
	ReturnTo       string
	Adults         int
	Children       int
	Infants        int
	SelectedCabins string
	Curr           string
	MaxStopovers   int
	Sort           string
	Limit          int
}

// NewSearchQuery validates raw input and resolves defaults in one pass.
// It fails on the first mandatory field that is absent or blank, naming the
// field, and never touches the network.
func NewSearchQuery(in QueryInput) (SearchQuery, error) {
	required := []struct {
		name  string
		value string
	}{
		{"fly_from", in.FlyFrom},
		{"fly_to", in.FlyTo},
		{"date_from", in.DateFrom},
		{"date_to", in.DateTo},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return SearchQuery{}, fmt.Errorf("missing or invalid %s parameter", field.name)
		}
	}

	query := SearchQuery{
		FlyFrom:        in.FlyFrom,
		FlyTo:          in.FlyTo,
		DateFrom:       in.DateFrom,
		DateTo:         in.DateTo,
		ReturnFrom:     in.ReturnFrom,
		ReturnTo:       in.ReturnTo,
		Adults:         intOrDefault(in.Adults, DefaultAdults),
		Children:       intOrDefault(in.Children, DefaultChildren),
		Infants:        intOrDefault(in.Infants, DefaultInfants),
		SelectedCabins: stringOrDefault(in.SelectedCabins, DefaultSelectedCabins),
		Curr:           stringOrDefault(in.Curr, DefaultCurrency),
		MaxStopovers:   intOrDefault(in.MaxStopovers, DefaultMaxStopovers),
		Sort:           stringOrDefault(in.Sort, DefaultSort),
		Limit:          intOrDefault(in.Limit, DefaultLimit),
	}
	return query, nil
}

// Values renders the query as URL parameters for the search endpoint.
// Mandatory and defaulted fields are always present; return dates are
// included only when set.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	values.Set("fly_from", q.FlyFrom)
	values.Set("fly_to", q.FlyTo)
	values.Set("date_from", q.DateFrom)
	values.Set("date_to", q.DateTo)
	values.Set("adults", strconv.Itoa(q.Adults))
	values.Set("children", strconv.Itoa(q.Children))
	values.Set("infants", strconv.Itoa(q.Infants))
	values.Set("selected_cabins", q.SelectedCabins)
	values.Set("curr", q.Curr)
	values.Set("max_stopovers", strconv.Itoa(q.MaxStopovers))
	values.Set("sort", q.Sort)
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.ReturnFrom != "" {
		values.Set("return_from", q.ReturnFrom)
	}
	if q.ReturnTo != "" {
		values.Set("return_to", q.ReturnTo)
	}
	return values
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func stringOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
