package inventory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/service/notify"
)

const sinkTimeout = 10 * time.Second

// Ledger is the subset of the ledger the inventory service drives.
type Ledger interface {
	RecordUsage(form models.UsageForm) (models.MaterialUsage, models.Material, error)
}

// UsageMirror receives a copy of every recorded usage entry.
type UsageMirror interface {
	AppendUsage(ctx context.Context, usage models.MaterialUsage) error
}

// Service records material usage and fans the result out to the usage mirror
// and the low-stock notifier. Sink failures are logged and never undo the
// ledger mutation.
type Service struct {
	ledger   Ledger
	mirror   UsageMirror
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService constructs the inventory service. mirror and notifier may be nil.
func NewService(ledger Ledger, mirror UsageMirror, notifier notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{ledger: ledger, mirror: mirror, notifier: notifier, logger: logger}
}

// RecordUsage draws stock from the ledger. When the draw takes the material
// from above its minimum to at or below it, a low-stock alert is sent.
func (s *Service) RecordUsage(ctx context.Context, form models.UsageForm) (models.MaterialUsage, models.Material, error) {
	usage, material, err := s.ledger.RecordUsage(form)
	if err != nil {
		return usage, material, err
	}

	s.logger.Info("material usage recorded",
		zap.Int("material_id", material.ID),
		zap.Float64("quantity", usage.Quantity),
		zap.Float64("remaining", material.Current))

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()

	if s.mirror != nil {
		if err := s.mirror.AppendUsage(sinkCtx, usage); err != nil {
			s.logger.Warn("failed to mirror usage row", zap.Int("usage_id", usage.ID), zap.Error(err))
		}
	}

	wasAbove := material.Current+usage.Quantity > material.Minimum
	if material.LowStock() && wasAbove {
		if err := s.notifier.LowStock(sinkCtx, material); err != nil {
			s.logger.Warn("failed to send low stock alert", zap.Int("material_id", material.ID), zap.Error(err))
		}
	}

	return usage, material, nil
}
