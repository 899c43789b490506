package domain

import "time"

// Product is an affiliate catalog entry. Field names follow the public JSON
// contract consumed by the storefront, hence the camelCase tags.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	Specs         []string  `json:"specs"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Featured      bool      `json:"featured"`
	AffiliateLink string    `json:"affiliateLink"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductPatch carries a partial update. A nil pointer means the field was
// omitted and must be left unchanged.
type ProductPatch struct {
	Name          *string
	Category      *string
	Price         *float64
	Image         *string
	Description   *string
	Specs         *[]string
	Rating        *float64
	Reviews       *int
	Featured      *bool
	AffiliateLink *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Image == nil && p.Description == nil && p.Specs == nil &&
		p.Rating == nil && p.Reviews == nil && p.Featured == nil &&
		p.AffiliateLink == nil
}
