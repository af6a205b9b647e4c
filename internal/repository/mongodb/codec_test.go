package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

func TestDailyReportMoneyRoundTripsAsDecimal128(t *testing.T) {
	reg := NewRegistry()
	report := models.DailyReport{
		Date:          time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		LaborCost:     decimal.RequireFromString("1234567890.123456789"),
		MaterialsCost: decimal.RequireFromString("0.1"),
		LowStock:      []string{},
	}

	data, err := bson.MarshalWithRegistry(reg, report)
	require.NoError(t, err)
	assert.Equal(t, bsontype.Decimal128, bson.Raw(data).Lookup("labor_cost").Type)

	var decoded models.DailyReport
	require.NoError(t, bson.UnmarshalWithRegistry(reg, data, &decoded))
	assert.True(t, report.LaborCost.Equal(decoded.LaborCost), decoded.LaborCost.String())
	assert.True(t, report.MaterialsCost.Equal(decoded.MaterialsCost), decoded.MaterialsCost.String())
}

func TestDecodeFloatMoney(t *testing.T) {
	data, err := bson.Marshal(bson.M{"labor_cost": 150.5, "materials_cost": nil})
	require.NoError(t, err)

	var decoded models.DailyReport
	require.NoError(t, bson.UnmarshalWithRegistry(NewRegistry(), data, &decoded))
	assert.True(t, decimal.RequireFromString("150.5").Equal(decoded.LaborCost), decoded.LaborCost.String())
	assert.True(t, decoded.MaterialsCost.IsZero())
}

func TestDecodeRejectsStringMoney(t *testing.T) {
	data, err := bson.Marshal(bson.M{"labor_cost": "150"})
	require.NoError(t, err)

	var decoded models.DailyReport
	assert.Error(t, bson.UnmarshalWithRegistry(NewRegistry(), data, &decoded))
}
