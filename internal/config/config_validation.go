package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	seederrors "github.com/alexisbeaulieu97/datatable/pkg/errors"
)

// ValidateSeed checks field rules and that every row id is unique.
func ValidateSeed(seed *Seed) error {
	if seed == nil {
		return seederrors.NewValidationError("seed", "seed is nil", nil)
	}

	if err := validatorInstance().Struct(seed); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(seed.Rows))
	for i, row := range seed.Rows {
		if first, exists := seen[row.ID]; exists {
			return seederrors.NewRowError(i, "id",
				fmt.Sprintf("duplicate row id %d (first used by rows[%d])", row.ID, first),
				nil,
			)
		}
		seen[row.ID] = i
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		row, field := rowField(yamlishFieldName(fe))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		switch fe.Tag() {
		case "page_size":
			msg = fmt.Sprintf("page size %v is not one of 5, 10, 20", fe.Value())
		case "gte":
			msg = fmt.Sprintf("%s must be %s or greater, got %v", field, fe.Param(), fe.Value())
		}
		if row == seederrors.NoRow {
			return seederrors.NewValidationError(field, msg, err)
		}
		return seederrors.NewRowError(row, field, msg, err)
	}
	return seederrors.NewValidationError("seed", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

var rowFieldRegex = regexp.MustCompile(`^rows\[(\d+)\]\.?(.*)$`)

// rowField splits "rows[2].id" into 2 and "id". Other names are document keys.
func rowField(name string) (int, string) {
	m := rowFieldRegex.FindStringSubmatch(name)
	if m == nil {
		return seederrors.NoRow, name
	}
	row, err := strconv.Atoi(m[1])
	if err != nil {
		return seederrors.NoRow, name
	}
	return row, m[2]
}
