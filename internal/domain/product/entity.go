package product

import (
	"github.com/google/uuid"
)

// Product is a read-only catalog snapshot. The catalog itself is maintained
// by an external service; this backend only consumes it for price and
// display fields.
type Product struct {
	id             uuid.UUID
	title          string
	unitPriceCents int64
	imageURL       string
}

func Reconstruct(id uuid.UUID, title string, unitPriceCents int64, imageURL string) Product {
	return Product{
		id:             id,
		title:          title,
		unitPriceCents: unitPriceCents,
		imageURL:       imageURL,
	}
}

func (p Product) ID() uuid.UUID         { return p.id }
func (p Product) Title() string         { return p.title }
func (p Product) UnitPriceCents() int64 { return p.unitPriceCents }
func (p Product) ImageURL() string      { return p.imageURL }
