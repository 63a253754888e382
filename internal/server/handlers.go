package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/order"
	"github.com/alfat81/fto/internal/relay"
)

const successMessage = "Заказ успешно отправлен! Менеджер свяжется с вами в ближайшее время."

type orderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

type healthResponse struct {
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
	Version            string `json:"version"`
	TelegramConfigured bool   `json:"telegramConfigured"`
}

// handleOrder is the single RECEIVED -> VALIDATING -> RELAYING -> RESPONDING
// pass over a submission. No state survives the request: a relayed chat
// message is the only record an order ever existed.
func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	s.metrics.OrdersReceived.Inc()

	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		s.metrics.OrdersRejected.Inc()
		s.writeJSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Error:   "Некорректное тело запроса",
		})
		return
	}

	if verr := order.Validate(&o); verr != nil {
		s.metrics.OrdersRejected.Inc()
		s.writeJSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Error:   verr.Message,
		})
		return
	}

	if o.Date.IsZero() {
		o.Date = time.Now()
	}

	// The client-supplied total is accepted as-is; only note disagreement.
	if computed := o.ComputedTotal(); computed != o.Total {
		s.logger.Debug("client total differs from computed total",
			zap.Int64("client_total", o.Total),
			zap.Int64("computed_total", computed))
	}

	orderID := order.NewID(time.Now())

	if s.relay == nil {
		s.metrics.OrdersFailed.Inc()
		s.logger.Error("Order rejected, relay not configured",
			zap.String("order_id", orderID))
		s.writeJSON(w, http.StatusInternalServerError, orderResponse{
			Success: false,
			Error:   relay.RelayFailedMessage,
		})
		return
	}

	start := time.Now()
	err := s.relay.SendOrder(r.Context(), o, orderID)
	s.metrics.RelayDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.OrdersFailed.Inc()
		resp := orderResponse{
			Success: false,
			Error:   relay.RelayFailedMessage,
		}
		if typed := order.AsError(err); typed != nil && !s.cfg.Production() {
			resp.Details = typed.Details
		}
		s.writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	s.metrics.OrdersRelayed.Inc()
	s.writeJSON(w, http.StatusOK, orderResponse{
		Success: true,
		Message: successMessage,
		OrderID: orderID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:             "ok",
		Timestamp:          time.Now().Format(time.RFC3339),
		Version:            version,
		TelegramConfigured: s.relay != nil,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Backend Фабрики торгового оборудования",
		"api": map[string]string{
			"order":  "POST /api/order",
			"health": "GET /health",
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, map[string]string{
		"error":  "Эндпоинт не найден",
		"path":   r.URL.Path,
		"method": r.Method,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}
