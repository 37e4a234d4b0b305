package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/citymart/storefront/internal/domain"
)

// expiryPattern accepts MM/YY with a month of 01-12.
var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// FormValidator validates checkout forms and converts failures into
// field-level domain validation errors.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds the validator with the card_expiry rule
// registered.
func NewFormValidator() (*FormValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, err
	}

	return &FormValidator{validate: v}, nil
}

// ValidateAddress checks the address form.
func (fv *FormValidator) ValidateAddress(addr domain.Address) error {
	return fv.toValidationError("checkout.address", fv.validate.Struct(addr))
}

// ValidatePayment checks the payment form.
func (fv *FormValidator) ValidatePayment(pay domain.Payment) error {
	return fv.toValidationError("checkout.payment", fv.validate.Struct(pay))
}

func (fv *FormValidator) toValidationError(op string, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Internal(err, op, "form validation failed")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe.Field())] = fieldMessage(fe)
	}
	return &domain.ValidationError{Op: op, Fields: fields}
}

// fieldName converts a struct field name to its JSON form.
func fieldName(name string) string {
	if name == "CVV" {
		return "cvv"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "card_expiry":
		return "Must be in MM/YY format"
	default:
		return "Invalid value"
	}
}
