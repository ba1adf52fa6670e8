package pkg

import (
	"testing"

	"github.com/membercore/membercore/internal/domain"
)

func TestParseSortToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    domain.OrderSpec
		wantErr bool
	}{
		{"simple asc", "name_asc", domain.OrderSpec{Column: "name", Direction: domain.SortAsc}, false},
		{"simple desc", "name_desc", domain.OrderSpec{Column: "name", Direction: domain.SortDesc}, false},
		{"column with underscore", "created_at_desc", domain.OrderSpec{Column: "created_at", Direction: domain.SortDesc}, false},
		{"mixed-case direction", "name_DESC", domain.OrderSpec{Column: "name", Direction: domain.SortDesc}, false},
		{"missing direction", "name", domain.OrderSpec{}, true},
		{"unknown direction", "name_upward", domain.OrderSpec{}, true},
		{"empty column", "_asc", domain.OrderSpec{}, true},
		{"trailing underscore", "name_", domain.OrderSpec{}, true},
		{"empty token", "", domain.OrderSpec{}, true},
		{"injection attempt", "name; DROP TABLE x_asc", domain.OrderSpec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortToken(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.token, got)
				}
				if !domain.IsValidation(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSortToken(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("got %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSortTokens(t *testing.T) {
	t.Run("empty input yields no specs", func(t *testing.T) {
		specs, err := ParseSortTokens("")
		if err != nil {
			t.Fatalf("ParseSortTokens: %v", err)
		}
		if len(specs) != 0 {
			t.Errorf("expected no specs, got %v", specs)
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		specs, err := ParseSortTokens("name_asc, created_at_desc")
		if err != nil {
			t.Fatalf("ParseSortTokens: %v", err)
		}
		want := []domain.OrderSpec{
			{Column: "name", Direction: domain.SortAsc},
			{Column: "created_at", Direction: domain.SortDesc},
		}
		if len(specs) != len(want) {
			t.Fatalf("got %d specs; want %d", len(specs), len(want))
		}
		for i := range want {
			if specs[i] != want[i] {
				t.Errorf("spec[%d]=%+v; want %+v", i, specs[i], want[i])
			}
		}
	})

	t.Run("one bad token fails the whole list", func(t *testing.T) {
		_, err := ParseSortTokens("name_asc,bogus")
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
