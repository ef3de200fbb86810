package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"extremefit-api/internal/model"
	"extremefit-api/internal/payment"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrOrderAlreadyPaid  = errors.New("order is already paid")
	ErrBadWebhookPayload = errors.New("malformed webhook payload")
	ErrMissingEventID    = errors.New("webhook event id is missing")
)

// PaypalService drives payment for a placed order. In simulated mode the
// PayPal API is skipped and the order is marked paid directly, which keeps
// local development working without sandbox credentials.
type PaypalService interface {
	Pay(ctx context.Context, orderID uuid.UUID) (*PayResponse, error)
	Capture(ctx context.Context, paypalOrderID string) (*model.Order, error)
	ProcessWebhookEvent(ctx context.Context, headers http.Header, body []byte) error
}

// paypalWebhookEvent is the slice of PayPal's event payload the order flow
// reads: the capture's related order id arrives under supplementary_data.
type paypalWebhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}

type PayResponse struct {
	OrderID       uuid.UUID `json:"order_id"`
	PaypalOrderID string    `json:"paypal_order_id,omitempty"`
	ApproveURL    string    `json:"approve_url,omitempty"`
	PaymentStatus string    `json:"payment_status"`
}

type paypalService struct {
	client    payment.PaypalClient
	orderRepo repository.OrderRepository
	eventRepo repository.WebhookEventRepository
	wsHub     *ws.Hub
	simulated bool
}

func NewPaypalService(
	client payment.PaypalClient,
	orderRepo repository.OrderRepository,
	eventRepo repository.WebhookEventRepository,
	hub *ws.Hub,
	simulated bool,
) PaypalService {
	return &paypalService{
		client:    client,
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		wsHub:     hub,
		simulated: simulated,
	}
}

func (s *paypalService) Pay(ctx context.Context, orderID uuid.UUID) (*PayResponse, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil, ErrOrderAlreadyPaid
	}

	if s.simulated {
		if err := s.orderRepo.UpdatePaymentStatus(order.ID, model.PaymentStatusPaid); err != nil {
			return nil, err
		}
		s.broadcastPaid(order)
		return &PayResponse{
			OrderID:       order.ID,
			PaymentStatus: model.PaymentStatusPaid,
		}, nil
	}

	res, err := s.client.CreateOrder(ctx, order.TotalAmount, "USD")
	if err != nil {
		return nil, fmt.Errorf("create paypal order: %w", err)
	}

	if err := s.orderRepo.SetPaypalOrderID(order.ID, res.PaypalOrderID); err != nil {
		return nil, err
	}

	return &PayResponse{
		OrderID:       order.ID,
		PaypalOrderID: res.PaypalOrderID,
		ApproveURL:    res.ApproveURL,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

// Capture finalizes an approved PayPal order and marks the local order paid.
func (s *paypalService) Capture(ctx context.Context, paypalOrderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByPaypalOrderID(paypalOrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return order, nil
	}

	if !s.simulated {
		if err := s.client.CaptureOrder(ctx, paypalOrderID); err != nil {
			return nil, fmt.Errorf("capture paypal order: %w", err)
		}
	}

	if err := s.orderRepo.UpdatePaymentStatus(order.ID, model.PaymentStatusPaid); err != nil {
		return nil, err
	}
	order.PaymentStatus = model.PaymentStatusPaid
	s.broadcastPaid(order)
	return order, nil
}

// ProcessWebhookEvent handles capture notifications with replay dedupe.
// The delivery is confirmed with PayPal's verify endpoint before any order
// state changes; simulated mode skips the back-channel call.
func (s *paypalService) ProcessWebhookEvent(ctx context.Context, headers http.Header, body []byte) error {
	if !s.simulated {
		if err := s.client.VerifyWebhookSignature(ctx, headers, body); err != nil {
			return fmt.Errorf("verify webhook signature: %w", err)
		}
	}

	var evt paypalWebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return fmt.Errorf("%w: %v", ErrBadWebhookPayload, err)
	}
	if evt.ID == "" {
		return ErrMissingEventID
	}

	seen, err := s.eventRepo.Exists(evt.ID)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	paypalOrderID := evt.Resource.SupplementaryData.RelatedIDs.OrderID
	if evt.EventType == "PAYMENT.CAPTURE.COMPLETED" && paypalOrderID != "" {
		order, err := s.orderRepo.FindByPaypalOrderID(paypalOrderID)
		if err == nil && order.PaymentStatus != model.PaymentStatusPaid {
			if err := s.orderRepo.UpdatePaymentStatus(order.ID, model.PaymentStatusPaid); err != nil {
				return err
			}
			order.PaymentStatus = model.PaymentStatusPaid
			s.broadcastPaid(order)
		}
	}

	return s.eventRepo.MarkProcessed(evt.ID, evt.EventType, "paypal")
}

func (s *paypalService) broadcastPaid(order *model.Order) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.BroadcastOrderEvent(ws.OrderEvent{
		Type:    "order_paid",
		OrderID: order.ID.String(),
		UserID:  order.UserID.String(),
		Status:  model.PaymentStatusPaid,
	})
}
