package dto

import "github.com/spec-kit/catalog-service/internal/domain"

// ProductCreateRequest payload for new products. Optional fields are
// pointers so that omission can fall back to server-side defaults.
type ProductCreateRequest struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Specs         []string `json:"specs"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	Featured      *bool    `json:"featured"`
	AffiliateLink string   `json:"affiliateLink"`
}

// ProductUpdateRequest payload for partial updates. A nil field was omitted
// and leaves the stored value untouched.
type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Category      *string   `json:"category"`
	Price         *float64  `json:"price"`
	Image         *string   `json:"image"`
	Description   *string   `json:"description"`
	Specs         *[]string `json:"specs"`
	Rating        *float64  `json:"rating"`
	Reviews       *int      `json:"reviews"`
	Featured      *bool     `json:"featured"`
	AffiliateLink *string   `json:"affiliateLink"`
}

// Patch converts the request into a domain patch.
func (r ProductUpdateRequest) Patch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:          r.Name,
		Category:      r.Category,
		Price:         r.Price,
		Image:         r.Image,
		Description:   r.Description,
		Specs:         r.Specs,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		Featured:      r.Featured,
		AffiliateLink: r.AffiliateLink,
	}
}

// DeleteResponse confirms a product removal.
type DeleteResponse struct {
	Message string `json:"message"`
}
