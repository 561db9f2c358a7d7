package domain

import (
	"encoding/json"
	"testing"

	"github.com/xeipuuv/gojsonschema"
)

// schemaLoader renders the published plan_trip input schema as a document
// loader so the contract can be validated like any client would.
func schemaLoader(t *testing.T) gojsonschema.JSONLoader {
	t.Helper()
	tool := PlanTripTool()
	if tool == nil || tool.InputSchema == nil {
		t.Fatal("expected tool with input schema")
	}
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		t.Fatalf("marshal input schema: %v", err)
	}
	return gojsonschema.NewBytesLoader(raw)
}

func validateArgs(t *testing.T, args map[string]any) *gojsonschema.Result {
	t.Helper()
	result, err := gojsonschema.Validate(schemaLoader(t), gojsonschema.NewGoLoader(args))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return result
}

func validArgs() map[string]any {
	return map[string]any{
		"fly_from":  "LHR",
		"fly_to":    "JFK",
		"date_from": "01/09/2026",
		"date_to":   "07/09/2026",
	}
}

func TestPlanTripToolContract(t *testing.T) {
	tool := PlanTripTool()
	if tool.Name != "plan_trip" {
		t.Fatalf("expected tool name plan_trip, got %q", tool.Name)
	}
	if tool.Description == "" {
		t.Fatal("expected tool description")
	}
}

func TestPlanTripSchemaAcceptsMinimalArgs(t *testing.T) {
	result := validateArgs(t, validArgs())
	if !result.Valid() {
		t.Fatalf("expected valid args, got %v", result.Errors())
	}
}

func TestPlanTripSchemaAcceptsFullArgs(t *testing.T) {
	args := validArgs()
	args["return_from"] = "14/09/2026"
	args["return_to"] = "21/09/2026"
	args["adults"] = 2
	args["children"] = 1
	args["infants"] = 0
	args["selected_cabins"] = "C"
	args["curr"] = "USD"
	args["max_stopovers"] = 1
	args["sort"] = "duration"
	args["limit"] = 10

	result := validateArgs(t, args)
	if !result.Valid() {
		t.Fatalf("expected valid args, got %v", result.Errors())
	}
}

func TestPlanTripSchemaRequiresMandatoryFields(t *testing.T) {
	for _, field := range []string{"fly_from", "fly_to", "date_from", "date_to"} {
		t.Run(field, func(t *testing.T) {
			args := validArgs()
			delete(args, field)
			result := validateArgs(t, args)
			if result.Valid() {
				t.Fatalf("expected args without %s to be rejected", field)
			}
		})
	}
}

func TestPlanTripSchemaRejectsUnknownEnumValues(t *testing.T) {
	args := validArgs()
	args["selected_cabins"] = "X"
	if result := validateArgs(t, args); result.Valid() {
		t.Fatal("expected unknown cabin class to be rejected")
	}

	args = validArgs()
	args["sort"] = "cheapness"
	if result := validateArgs(t, args); result.Valid() {
		t.Fatal("expected unknown sort key to be rejected")
	}
}

func TestPlanTripSchemaRejectsNonStringMandatoryField(t *testing.T) {
	args := validArgs()
	args["fly_to"] = 42
	if result := validateArgs(t, args); result.Valid() {
		t.Fatal("expected non-string fly_to to be rejected")
	}
}
