package catalog

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Pure, side-effect-free checks (spec §4.1). Every mutating and reading
// entry point runs these before touching the map; on the first failure the
// call aborts and makes no state change.

func validateISBN(isbn int32) error {
	if err := validation.Validate(isbn, validation.By(func(value interface{}) error {
		v := value.(int32)
		if v <= 0 {
			return fmt.Errorf("isbn must be positive, got %d", v)
		}
		return nil
	})); err != nil {
		return invalidArgumentf("isbn", "%v", err)
	}
	return nil
}

func validateNewBook(b NewBook) error {
	if err := validateISBN(b.ISBN); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error("title must not be empty")),
		validation.Field(&b.Author,
			validation.Required.Error("author must not be empty")),
		validation.Field(&b.Price,
			validation.By(func(value interface{}) error {
				p := value.(decimal.Decimal)
				if p.Sign() < 0 {
					return fmt.Errorf("price must be non-negative")
				}
				return nil
			})),
		validation.Field(&b.Copies,
			validation.Min(0).Error("copy count must be non-negative")),
	); err != nil {
		return invalidArgumentf("book", "%v", err)
	}
	return nil
}

func validateCopyCount(n int) error {
	return validation.Validate(n, validation.Min(0).Error("copy count must be non-negative"))
}

func validateRating(r int) error {
	return validation.Validate(r, validation.Min(0).Error("rating must be >= 0"), validation.Max(5).Error("rating must be <= 5"))
}

func validateCount(k int) error {
	return validation.Validate(k, validation.Min(0).Error("count must be non-negative"))
}
