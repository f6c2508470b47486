package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidMobile reports whether s is exactly 10 ASCII digits. No '+', spaces,
// separators or country codes are accepted.
func ValidMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

type MenuItemInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Price int64  `json:"price" validate:"gte=0"`
}

type CustomerInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Mobile string `json:"mobile" validate:"mobile"`
}

type OrderLineInput struct {
	ItemName string `json:"item_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return ValidMobile(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register mobile validation: %v", err))
	}
	return v
}

// ValidateMenuItem checks a new or updated menu item. The name is trimmed first.
func ValidateMenuItem(name string, price int64) error {
	return validateStruct(MenuItemInput{Name: strings.TrimSpace(name), Price: price})
}

func ValidateCustomer(name, mobile string) error {
	return validateStruct(CustomerInput{Name: strings.TrimSpace(name), Mobile: mobile})
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return ValidationError{Field: fe.Field(), Message: messageFor(fe)}
	}
	return err
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "mobile":
		return "must be exactly 10 digits"
	default:
		return "is invalid"
	}
}
