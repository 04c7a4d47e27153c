package facility

import "testing"

func TestAccessors(t *testing.T) {
	matched, err := FromNumericalCode(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if matched.NumericalCode() != 2 {
		t.Fatalf("expected code 2, got %d", matched.NumericalCode())
	}

	if matched.Label() != "MAIL" {
		t.Fatalf("expected label MAIL, got %q", matched.Label())
	}

	if matched.String() != "MAIL" {
		t.Fatalf("expected string MAIL, got %q", matched.String())
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "code error includes offending value",
			err:  &InvalidFacilityCodeError{Code: 24},
			want: "invalid facility '24'",
		},
		{
			name: "negative code printed as-is",
			err:  &InvalidFacilityCodeError{Code: -1},
			want: "invalid facility '-1'",
		},
		{
			name: "label error includes offending value",
			err:  &InvalidFacilityLabelError{Label: "cron"},
			want: "invalid facility 'cron'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, tt.err.Error())
			}
		})
	}
}
