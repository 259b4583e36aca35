package entities

import "time"

// TaxonomyKind категории и бренды имеют одинаковую плоскую форму,
// различаются только дискриминатором.
type TaxonomyKind string

const (
	TaxonomyCategory TaxonomyKind = "category"
	TaxonomyBrand    TaxonomyKind = "brand"
)

func (k TaxonomyKind) String() string {
	return string(k)
}

func IsValidTaxonomyKind(k TaxonomyKind) bool {
	switch k {
	case TaxonomyCategory, TaxonomyBrand:
		return true
	default:
		return false
	}
}

type TaxonomyEntry struct {
	ID        int64
	Kind      TaxonomyKind
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
