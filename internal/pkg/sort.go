package pkg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/membercore/membercore/internal/domain"
)

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseSortToken decodes a token of the form "<column>_<asc|desc>",
// e.g. "name_asc" or "created_at_desc". The direction suffix is matched
// case-insensitively and normalized to upper case. Anything else fails
// with a validation error.
func ParseSortToken(token string) (domain.OrderSpec, error) {
	idx := strings.LastIndex(token, "_")
	if idx <= 0 || idx == len(token)-1 {
		return domain.OrderSpec{}, invalidSort(token)
	}

	column := token[:idx]
	var direction domain.SortDirection
	switch strings.ToLower(token[idx+1:]) {
	case "asc":
		direction = domain.SortAsc
	case "desc":
		direction = domain.SortDesc
	default:
		return domain.OrderSpec{}, invalidSort(token)
	}

	if !validFieldName.MatchString(column) {
		return domain.OrderSpec{}, invalidSort(token)
	}

	return domain.OrderSpec{Column: column, Direction: direction}, nil
}

// ParseSortTokens decodes a comma-separated list of sort tokens, preserving
// order. An empty input yields no specs.
func ParseSortTokens(s string) ([]domain.OrderSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	specs := make([]domain.OrderSpec, 0, len(parts))
	for _, part := range parts {
		spec, err := ParseSortToken(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func invalidSort(token string) error {
	return domain.NewAppError(domain.CodeValidation,
		fmt.Sprintf("invalid sort token %q: expected <column>_<asc|desc>", token), nil)
}
