package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/shared/apperror"
)

// ========================================
// SHARED FIELD RULES
// ========================================
// Mọi DTO dùng chung các rule này để error message thống nhất giữa các domain

// NotBlank rejects empty and whitespace-only strings. nil pointers pass,
// so pair it with ozzo.Required (or ozzo.NilOrNotEmpty) for required fields.
var NotBlank = ozzo.By(func(value interface{}) error {
	v, isNil := ozzo.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
})

// UUID checks the identifier shape.
var UUID = is.UUID.Error("must be a valid UUID")

// MaxPrice khớp cột NUMERIC(12,2)
const MaxPrice = 9_999_999_999.99

// Price: absent is fine, present must be in [0, MaxPrice] with at most two decimals.
var Price = ozzo.By(func(value interface{}) error {
	v, isNil := ozzo.Indirect(value)
	if isNil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return errors.New("must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	if f < 0 {
		return errors.New("must be a non-negative number")
	}
	if f > MaxPrice {
		return fmt.Errorf("must be no greater than %.2f", MaxPrice)
	}
	d := decimal.NewFromFloat(f)
	if !d.Equal(d.Round(2)) {
		return errors.New("must have at most two decimal places")
	}
	return nil
})

// Bounded returns a rule for ints in [min, max].
func Bounded(min, max int) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		v, isNil := ozzo.Indirect(value)
		if isNil {
			return nil
		}
		n, ok := v.(int)
		if !ok {
			return errors.New("must be an integer")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	})
}

// MaxPage giữ OFFSET = (page-1)*limit trong giới hạn int
const MaxPage = 10000

// Page is the rule for the page query param.
var Page = Bounded(0, MaxPage)

// OneOfFold checks enum membership ignoring case. Empty values pass.
func OneOfFold(allowed ...string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		v, isNil := ozzo.Indirect(value)
		if isNil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if strings.EqualFold(a, s) {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	})
}

// ========================================
// ERROR CONVERSION
// ========================================

// Check converts an ozzo validation result into the InvalidArgument error.
// nil stays nil; non-validation errors are returned untouched.
func Check(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}

	var fieldErrs ozzo.Errors
	if errors.As(err, &fieldErrs) {
		return apperror.InvalidArgument("%s", fieldErrs.Error())
	}

	var ruleErr ozzo.Error
	if errors.As(err, &ruleErr) {
		return apperror.InvalidArgument("%s", ruleErr.Error())
	}

	var internalErr ozzo.InternalError
	if errors.As(err, &internalErr) {
		return apperror.Internal("validation failed", err)
	}

	return apperror.InvalidArgument("%s", err.Error())
}

// ParseID validates a single identifier and returns it parsed.
func ParseID(field, raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, apperror.InvalidArgument("%s: cannot be blank", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("%s: must be a valid UUID", field)
	}
	return id, nil
}

// ParseOptionalID is ParseID for filters: nil/empty means "no filter".
func ParseOptionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := ParseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
