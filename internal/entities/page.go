package entities

import "time"

type PageContent struct {
	ID        string
	Slug      string
	Category  string
	Title     string
	Body      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PageContentModify struct {
	ID        *string
	Slug      *string
	Category  *string
	Title     *string
	Body      *string
	Published *bool
}
