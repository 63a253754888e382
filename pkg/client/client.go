// Package client is the programmatic storefront side of the order protocol:
// it gates submission on local validation, posts the order and reconciles
// cart state from the response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/cart"
	"github.com/alfat81/fto/internal/order"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Result is the reconciled outcome of a successful submission.
type Result struct {
	OrderID string
	Message string
}

type orderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
	Error   string `json:"error"`
}

// Submit validates the customer's input, snapshots the cart into an Order
// and posts it. The cart is cleared only after the server confirms success;
// every failure path leaves it intact so the customer can correct and
// resubmit. There is no automatic retry.
func (c *Client) Submit(ctx context.Context, m *cart.Manager, customer order.Customer) (*Result, error) {
	if m.Len() == 0 {
		return nil, ErrEmptyCart
	}

	name := strings.TrimSpace(customer.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, &ValidationError{
			Field:   "name",
			Message: "Пожалуйста, введите ваше имя (минимум 2 символа)",
		}
	}

	phone := strings.TrimSpace(customer.Phone)
	if !order.IsValidPhone(phone) {
		return nil, &ValidationError{
			Field:   "phone",
			Message: "Пожалуйста, введите корректный номер телефона в формате +7 (999) 123-45-67",
		}
	}

	o := order.Order{
		Items: m.Items(),
		Customer: order.Customer{
			Name:    name,
			Phone:   phone,
			Comment: strings.TrimSpace(customer.Comment),
		},
		Total: m.Total(),
		Date:  time.Now(),
	}

	resp, err := c.post(ctx, o)
	if err != nil {
		return nil, err
	}

	if err := m.Clear(ctx); err != nil {
		// The order is already placed; a failed cart write must not turn
		// success into an error for the customer.
		c.logger.Warn("Failed to clear cart after successful order",
			zap.String("order_id", resp.OrderID),
			zap.Error(err))
	}

	return &Result{OrderID: resp.OrderID, Message: resp.Message}, nil
}

func (c *Client) post(ctx context.Context, o order.Order) (*orderResponse, error) {
	body, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/api/order", c.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Order request failed", zap.Error(err))
		return nil, &SubmissionError{}
	}
	defer httpResp.Body.Close()

	var resp orderResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, &SubmissionError{StatusCode: httpResp.StatusCode}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 || !resp.Success {
		return nil, &SubmissionError{
			StatusCode: httpResp.StatusCode,
			Message:    resp.Error,
		}
	}

	return &resp, nil
}
