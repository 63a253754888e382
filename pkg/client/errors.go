package client

import (
	"errors"
	"fmt"

	"github.com/alfat81/fto/internal/order"
)

// ErrEmptyCart rejects submission before any network call is made.
var ErrEmptyCart = errors.New("Корзина пуста! Добавьте товары для оформления заказа.")

// ValidationError names the form field the customer has to correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmissionError covers everything after validation passed: a non-2xx
// response, a success:false body, or a request that never completed
// (StatusCode 0). The cart is untouched and the customer may resubmit;
// the message always quotes the fallback phone.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "не удалось отправить заказ"
	}
	return fmt.Sprintf(
		"Ошибка при отправке заказа: %s. Попробуйте снова или позвоните по телефону %s",
		msg, order.ContactPhone,
	)
}
