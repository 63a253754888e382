package order

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// User-facing validation messages, matching what the storefront shows.
const (
	MsgMissingItems        = "Отсутствуют товары в заказе"
	MsgMissingCustomerData = "Отсутствуют данные клиента"
	MsgInvalidTotal        = "Некорректная сумма заказа"
	MsgInvalidItems        = "Некорректный состав заказа"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate applies the server-side checks, never trusting what the client
// already validated. Checks run in order and the first failure wins.
func Validate(o *Order) *Error {
	if len(o.Items) == 0 {
		return NewValidation(MsgMissingItems)
	}
	if strings.TrimSpace(o.Customer.Name) == "" || strings.TrimSpace(o.Customer.Phone) == "" {
		return NewValidation(MsgMissingCustomerData)
	}
	if o.Total <= 0 {
		return NewValidation(MsgInvalidTotal)
	}

	if err := validate.Struct(o); err != nil {
		verr := NewValidation(MsgInvalidItems)
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			verr.Details = errs[0].Field() + " " + errs[0].Tag()
		}
		return verr
	}

	return nil
}
