package page

import "time"

type PageDB struct {
	ID        string
	Slug      string
	Category  *string
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PageModifyDB struct {
	ID        *string
	Slug      *string
	Category  *string
	Title     *string
	Body      *string
	Published *bool
}
