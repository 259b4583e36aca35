package promotion

import "time"

type PromotionDB struct {
	ID        int64
	StoreID   int64
	Name      string
	Type      string
	Active    bool
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// flashSalePayload jsonb-содержимое для type = 'flash_sale'.
type flashSalePayload struct {
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
	DiscountPercent    float64   `json:"discount_percent"`
	EligibleProductIDs []int64   `json:"eligible_product_ids"`
}

// mixMatchPayload jsonb-содержимое для type = 'mix_match'.
type mixMatchPayload struct {
	MinItems           int      `json:"min_items"`
	BundlePrice        float64  `json:"bundle_price"`
	EligibleCategories []string `json:"eligible_categories"`
}
