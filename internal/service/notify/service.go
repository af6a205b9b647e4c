package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/service/reporting"
	client "github.com/mamadbah2/buildtrack/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// Notifier pushes site events to the site manager.
type Notifier interface {
	LowStock(ctx context.Context, material models.Material) error
	DailyReport(ctx context.Context, report models.DailyReport) error
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// WhatsAppNotifier delivers notifications through the WhatsApp Cloud API.
type WhatsAppNotifier struct {
	client    client.Client
	recipient string
	logger    *zap.Logger
}

// NewWhatsAppNotifier wires a notifier that messages the given recipient.
func NewWhatsAppNotifier(c client.Client, recipient string, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{client: c, recipient: recipient, logger: logger}
}

// LowStock alerts the site manager that a material reached its reorder threshold.
func (n *WhatsAppNotifier) LowStock(ctx context.Context, material models.Material) error {
	return n.SendOutbound(ctx, models.OutboundMessageRequest{
		To:      n.recipient,
		Message: reporting.FormatLowStockAlert(material),
	})
}

// DailyReport sends the end-of-day summary.
func (n *WhatsAppNotifier) DailyReport(ctx context.Context, report models.DailyReport) error {
	return n.SendOutbound(ctx, models.OutboundMessageRequest{
		To:      n.recipient,
		Message: reporting.FormatDailyReport(report),
	})
}

// SendOutbound sends an arbitrary message.
func (n *WhatsAppNotifier) SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	id, err := n.client.SendText(ctxWithTimeout, req.To, req.Message)
	if err != nil {
		return err
	}
	n.logger.Debug("notification sent", zap.String("to", req.To), zap.String("message_id", id))
	return nil
}

// Nop discards notifications. It is used when no messaging provider is configured.
type Nop struct{}

func (Nop) LowStock(context.Context, models.Material) error                   { return nil }
func (Nop) DailyReport(context.Context, models.DailyReport) error             { return nil }
func (Nop) SendOutbound(context.Context, models.OutboundMessageRequest) error { return nil }
