// Package relay forwards formatted order notifications to the configured
// Telegram chat. One notification per submission, no queueing, no retry:
// a failure is surfaced to the caller and the customer resubmits.
package relay

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/config"
	"github.com/alfat81/fto/internal/order"
)

// RelayFailedMessage is what the customer sees when the upstream send fails.
const RelayFailedMessage = "Ошибка при обработке заказа. Пожалуйста, попробуйте позже."

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	bot      sender
	chatID   int64
	logger   *zap.Logger
	reporter *Reporter
}

// NewTelegram builds the relay. Missing token or chat id is a configuration
// error detected before any network call is made.
func NewTelegram(cfg config.Telegram, timeout time.Duration, reporter *Reporter, logger *zap.Logger) (*Telegram, error) {
	if !cfg.Configured() {
		return nil, order.NewConfiguration("Не настроены параметры Telegram бота")
	}

	httpClient := &http.Client{Timeout: timeout}
	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Relay bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	return &Telegram{
		bot:      botAPI,
		chatID:   cfg.ChatID,
		logger:   logger,
		reporter: reporter,
	}, nil
}

// SendOrder formats and relays the order notification. On upstream failure
// it returns a RELAY_ERROR carrying the upstream description and emits a
// best-effort secondary failure notification through the same path.
func (t *Telegram) SendOrder(ctx context.Context, o order.Order, orderID string) error {
	msg := tgbotapi.NewMessage(t.chatID, order.FormatNotification(o, orderID))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error("Failed to relay order notification",
			zap.String("order_id", orderID),
			zap.Error(err))
		t.notifyFailure(orderID, err)
		return order.NewRelay(RelayFailedMessage, err.Error())
	}

	t.logger.Info("Order relayed",
		zap.String("order_id", orderID),
		zap.Int64("chat_id", t.chatID))

	t.sendReport(o, orderID)
	return nil
}

// notifyFailure mirrors a relay-time failure into the chat. Its own failure
// is logged and swallowed; it never masks the primary error response.
func (t *Telegram) notifyFailure(orderID string, cause error) {
	msg := tgbotapi.NewMessage(t.chatID, order.FormatFailureNotification(orderID, cause))
	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Warn("Failed to send failure notification",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}

// sendReport attaches the xlsx order summary as a document when reporting
// is enabled. Best-effort: the order is already relayed, so a report
// failure is only logged.
func (t *Telegram) sendReport(o order.Order, orderID string) {
	if t.reporter == nil {
		return
	}

	path, err := t.reporter.Export(o, orderID)
	if err != nil {
		t.logger.Error("Failed to create order report",
			zap.String("order_id", orderID),
			zap.Error(err))
		return
	}

	doc := tgbotapi.NewDocument(t.chatID, tgbotapi.FilePath(path))
	doc.Caption = fmt.Sprintf("📊 Детали заказа %s", orderID)
	if _, err := t.bot.Send(doc); err != nil {
		t.logger.Error("Failed to send order report",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}
