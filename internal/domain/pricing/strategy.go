package pricing

import (
	"errors"

	"keyshop/internal/domain/product"
)

var ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

// Strategy decides whether a product is discounted and by how much.
// The concrete rule set lives outside this backend; implementations are
// passed into each calculation call rather than stored on a service, so a
// request never observes another request's strategy.
type Strategy interface {
	IsApplicable(p product.Product) bool
	Discount(p product.Product, priceCents int64) int64
}

// PercentageStrategy discounts every applicable product by a flat percentage.
type PercentageStrategy struct {
	percentOff float64
	applicable func(product.Product) bool
}

func NewPercentageStrategy(percentOff float64, applicable func(product.Product) bool) (*PercentageStrategy, error) {
	if percentOff < 0 || percentOff > 100 {
		return nil, ErrInvalidPercentage
	}
	if applicable == nil {
		applicable = func(product.Product) bool { return true }
	}
	return &PercentageStrategy{percentOff: percentOff, applicable: applicable}, nil
}

func (s *PercentageStrategy) IsApplicable(p product.Product) bool {
	return s.applicable(p)
}

func (s *PercentageStrategy) Discount(_ product.Product, priceCents int64) int64 {
	d := int64(float64(priceCents) * s.percentOff / 100.0)
	if d < 0 {
		return 0
	}
	return d
}

// NoDiscount applies to nothing. Used when no campaign is active.
type NoDiscount struct{}

func (NoDiscount) IsApplicable(product.Product) bool     { return false }
func (NoDiscount) Discount(product.Product, int64) int64 { return 0 }
