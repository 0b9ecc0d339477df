package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/stock"
)

func TestCorrectionType(t *testing.T) {
	cases := []struct {
		name   string
		reason string
		diff   string
		want   string
	}{
		{"damage shortfall", entity.ReasonDamage, "-5", entity.TxTypeDamageWaste},
		{"expired shortfall", entity.ReasonExpired, "-1.25", entity.TxTypeDamageWaste},
		{"theft shortfall", entity.ReasonTheftLoss, "-10", entity.TxTypeDamageWaste},
		{"physical count shortfall", entity.ReasonPhysicalCount, "-5", entity.TxTypeAdjustment},
		{"correction shortfall", entity.ReasonCorrection, "-2", entity.TxTypeAdjustment},
		{"system error shortfall", entity.ReasonSystemError, "-2", entity.TxTypeAdjustment},
		{"damage with surplus", entity.ReasonDamage, "5", entity.TxTypeAdjustment},
		{"physical count surplus", entity.ReasonPhysicalCount, "5", entity.TxTypeAdjustment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.CorrectionType(tc.reason, decimal.RequireFromString(tc.diff))
			assert.Equal(t, tc.want, got)
		})
	}
}
