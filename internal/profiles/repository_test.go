package profiles

import (
	"errors"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpsertProfileCommand
		want error
	}{
		{
			name: "valid",
			cmd:  UpsertProfileCommand{BusinessName: "Acme Co", DefaultCurrency: "USD"},
		},
		{
			name: "currency optional",
			cmd:  UpsertProfileCommand{BusinessName: "Acme Co"},
		},
		{
			name: "missing name",
			cmd:  UpsertProfileCommand{DefaultCurrency: "USD"},
			want: ErrMissingName,
		},
		{
			name: "bad currency",
			cmd:  UpsertProfileCommand{BusinessName: "Acme Co", DefaultCurrency: "DOLLARS"},
			want: ErrBadCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCommand(tt.cmd)
			if !errors.Is(err, tt.want) {
				t.Errorf("validateCommand = %v, want %v", err, tt.want)
			}
		})
	}
}
