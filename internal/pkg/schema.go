package pkg

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/membercore/membercore/internal/domain"
)

// schemaCache memoizes parsed model schemas across calls.
var schemaCache sync.Map

// ModelColumns returns the database column names of the given model,
// introspected via GORM's schema parser. A model that cannot be parsed is a
// programming defect and yields a configuration error, not a caller error.
func ModelColumns(db *gorm.DB, model any) ([]string, error) {
	s, err := schema.Parse(model, &schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeConfiguration,
			fmt.Sprintf("cannot introspect schema for %T", model), err)
	}

	columns := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		// Skip relation-only fields that have no backing column.
		if f.DBName == "" {
			continue
		}
		columns = append(columns, f.DBName)
	}
	if len(columns) == 0 {
		return nil, domain.NewAppError(domain.CodeConfiguration,
			fmt.Sprintf("model %T has no columns", model), nil)
	}
	return columns, nil
}
