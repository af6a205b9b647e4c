package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/ledger"
	"github.com/mamadbah2/buildtrack/internal/service/notify"
)

type recordingMirror struct {
	rows []models.MaterialUsage
	err  error
}

func (m *recordingMirror) AppendUsage(_ context.Context, u models.MaterialUsage) error {
	m.rows = append(m.rows, u)
	return m.err
}

type recordingNotifier struct {
	notify.Nop
	alerts []models.Material
}

func (n *recordingNotifier) LowStock(_ context.Context, m models.Material) error {
	n.alerts = append(n.alerts, m)
	return nil
}

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New(ledger.WithClock(func() time.Time { return time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC) }))
	_, err := l.AddMaterial(models.MaterialForm{Name: "Sand", Unit: "cubic yards", Current: "10", Minimum: "5", Cost: "35"})
	require.NoError(t, err)
	return l
}

func TestRecordUsageAlertsOnCrossingThreshold(t *testing.T) {
	l := newLedger(t)
	mirror := &recordingMirror{}
	notifier := &recordingNotifier{}
	svc := NewService(l, mirror, notifier, nil)

	_, mat, err := svc.RecordUsage(context.Background(), models.UsageForm{MaterialID: "1", Quantity: "4"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, mat.Current)
	assert.Empty(t, notifier.alerts)

	_, mat, err = svc.RecordUsage(context.Background(), models.UsageForm{MaterialID: "1", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, mat.Current)
	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "Sand", notifier.alerts[0].Name)

	_, _, err = svc.RecordUsage(context.Background(), models.UsageForm{MaterialID: "1", Quantity: "1"})
	require.NoError(t, err)
	assert.Len(t, notifier.alerts, 1)
	assert.Len(t, mirror.rows, 3)
}

func TestRecordUsageSinkFailureKeepsMutation(t *testing.T) {
	l := newLedger(t)
	svc := NewService(l, &recordingMirror{err: errors.New("quota exceeded")}, nil, nil)

	usage, _, err := svc.RecordUsage(context.Background(), models.UsageForm{MaterialID: "1", Quantity: "2"})
	require.NoError(t, err)
	assert.Equal(t, 1, usage.ID)
	assert.Equal(t, 8.0, l.Materials()[0].Current)
}

func TestRecordUsageRejectionSkipsSinks(t *testing.T) {
	l := newLedger(t)
	mirror := &recordingMirror{}
	svc := NewService(l, mirror, nil, nil)

	_, _, err := svc.RecordUsage(context.Background(), models.UsageForm{MaterialID: "1", Quantity: "15"})

	var stockErr *ledger.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Empty(t, mirror.rows)
	assert.True(t, decimal.NewFromInt(35).Equal(l.Materials()[0].Cost))
}
