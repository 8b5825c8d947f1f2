package utils

import (
	"testing"
)

type sampleRequest struct {
	Title  string `validate:"required,min=1,max=10"`
	SortBy string `validate:"omitempty,oneof=priority due_at"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
		wantRule  string
	}{
		{"valid", sampleRequest{Title: "ok"}, "", ""},
		{"missing title", sampleRequest{}, "title", "required"},
		{"title too long", sampleRequest{Title: "far too long a title"}, "title", "max"},
		{"bad sort", sampleRequest{Title: "ok", SortBy: "bogus"}, "sortby", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			details := GetValidationErrors(err)
			if len(details) != 1 {
				t.Fatalf("details = %d entries, want 1", len(details))
			}
			if details[0].Field != tt.wantField || details[0].Rule != tt.wantRule {
				t.Errorf("detail = %+v, want field %q rule %q", details[0], tt.wantField, tt.wantRule)
			}
			if details[0].Message == "" {
				t.Error("empty message")
			}
		})
	}
}
