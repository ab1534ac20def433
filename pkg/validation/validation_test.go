package validation

import (
	"testing"
)

func TestRun(t *testing.T) {
	rules := []Rule{
		{Field: "amount", Tag: "required,gt=0", Message: "Amount must be a positive number"},
		{Field: "method", Tag: "required,oneof=cash card online bank_transfer check"},
		{Field: "notes", Tag: "max=500"},
	}

	tests := []struct {
		name      string
		body      map[string]interface{}
		wantCount int
		wantFirst string
	}{
		{
			name:      "valid payment",
			body:      map[string]interface{}{"amount": 1000.0, "method": "cash"},
			wantCount: 0,
		},
		{
			name:      "negative amount",
			body:      map[string]interface{}{"amount": -5.0, "method": "cash"},
			wantCount: 1,
			wantFirst: "Amount must be a positive number",
		},
		{
			name:      "missing amount",
			body:      map[string]interface{}{"method": "cash"},
			wantCount: 1,
			wantFirst: "Amount must be a positive number",
		},
		{
			name:      "bad method and bad amount reports amount first",
			body:      map[string]interface{}{"amount": 0.0, "method": "bitcoin"},
			wantCount: 2,
			wantFirst: "Amount must be a positive number",
		},
		{
			name:      "optional field absent is fine",
			body:      map[string]interface{}{"amount": 10.0, "method": "card"},
			wantCount: 0,
		},
		{
			name:      "empty body fails required rules only",
			body:      nil,
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Run(tt.body, rules)
			if len(errs) != tt.wantCount {
				t.Fatalf("Run() returned %d errors, want %d: %v", len(errs), tt.wantCount, errs)
			}
			if tt.wantFirst != "" && errs[0].Message != tt.wantFirst {
				t.Errorf("first message = %q, want %q", errs[0].Message, tt.wantFirst)
			}
		})
	}
}

func TestRunCustomPredicate(t *testing.T) {
	rules := []Rule{
		{
			Field:   "aadharNumber",
			Message: "Aadhar number must be 12 digits",
			Check: func(v interface{}, present bool) bool {
				s, ok := v.(string)
				if !present || !ok {
					return false
				}
				if len(s) != 12 {
					return false
				}
				for _, c := range s {
					if c < '0' || c > '9' {
						return false
					}
				}
				return true
			},
		},
	}

	if errs := Run(map[string]interface{}{"aadharNumber": "123456789012"}, rules); len(errs) != 0 {
		t.Errorf("valid aadhar rejected: %v", errs)
	}
	errs := Run(map[string]interface{}{"aadharNumber": "12ab"}, rules)
	if len(errs) != 1 || errs[0].Message != "Aadhar number must be 12 digits" {
		t.Errorf("invalid aadhar not caught: %v", errs)
	}
}
