// Mentor - AI/ML Algorithm Advisory and Usage Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mentor

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Prompt string `validate:"required,min=1,max=20"`
	Limit  int    `validate:"gte=1,lte=100"`
	Mode   string `validate:"omitempty,oneof=summary detailed"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := sampleRequest{Prompt: "cluster customers", Limit: 10, Mode: "summary"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateStruct_RequiredField(t *testing.T) {
	t.Parallel()

	req := sampleRequest{Limit: 10}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Prompt is required") {
		t.Errorf("Message = %q, want required-field message", apiErr.Message)
	}
}

func TestValidateStruct_MultipleFailures(t *testing.T) {
	t.Parallel()

	req := sampleRequest{Prompt: strings.Repeat("x", 50), Limit: 0, Mode: "bogus"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 3 {
		t.Errorf("Errors() = %d failures, want 3", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details missing fields list: %+v", apiErr.Details)
	}
	if len(fields) != 3 {
		t.Errorf("fields = %d, want 3", len(fields))
	}
}

func TestValidateStruct_TranslatedMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  sampleRequest
		want string
	}{
		{"max string", sampleRequest{Prompt: strings.Repeat("x", 21), Limit: 1}, "at most 20 characters"},
		{"gte int", sampleRequest{Prompt: "p", Limit: 0}, "greater than or equal to 1"},
		{"oneof", sampleRequest{Prompt: "p", Limit: 1, Mode: "weird"}, "must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
