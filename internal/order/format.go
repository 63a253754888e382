package order

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// CommentPlaceholder is shown when the customer left no comment.
	CommentPlaceholder = "Не указан"

	storeAddress = "ул. Тургенева, 9, Нижний Новгород"

	// ContactPhone is the human fallback channel quoted in failure messages
	// and appended to every notification.
	ContactPhone = "+7 (960) 178-67-38"
)

var rub = message.NewPrinter(language.Russian)

// FormatAmount renders a ruble amount with Russian digit grouping,
// e.g. 12500 -> "12 500 ₽".
func FormatAmount(v int64) string {
	return rub.Sprintf("%d ₽", v)
}

// FormatNotification builds the chat message for a submitted order. The
// output is deterministic for a given order and id.
func FormatNotification(o Order, orderID string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 НОВЫЙ ЗАКАЗ %s\n\n", orderID)
	b.WriteString("📋 ТОВАРЫ:\n")

	for i, item := range o.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "📦 %s\n", item.Name)
		if qty := item.Qty(); qty > 1 {
			fmt.Fprintf(&b, "💰 %s × %d\n", FormatAmount(item.Price), qty)
		} else {
			fmt.Fprintf(&b, "💰 %s\n", FormatAmount(item.Price))
		}
	}

	fmt.Fprintf(&b, "\n💰 ИТОГО: %s\n\n", FormatAmount(o.Total))

	comment := strings.TrimSpace(o.Customer.Comment)
	if comment == "" {
		comment = CommentPlaceholder
	}

	b.WriteString("👤 КЛИЕНТ:\n")
	fmt.Fprintf(&b, "👤 Имя: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "📱 Телефон: %s\n", FormatPhone(o.Customer.Phone))
	fmt.Fprintf(&b, "💬 Комментарий: %s\n\n", comment)

	fmt.Fprintf(&b, "⏰ Дата заказа: %s\n\n", o.Date.Format("02.01.2006 15:04"))

	fmt.Fprintf(&b, "📍 Адрес: %s\n", storeAddress)
	fmt.Fprintf(&b, "📞 Контактный телефон: %s", ContactPhone)

	return b.String()
}

// FormatFailureNotification is the secondary best-effort message describing
// a relay-time failure. Plain text so it survives broken HTML in the cause.
func FormatFailureNotification(orderID string, cause error) string {
	return fmt.Sprintf(
		"⚠️ Ошибка при обработке заказа %s\n\n%v",
		orderID, cause,
	)
}
