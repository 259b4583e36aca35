package page

import "marketplace/internal/entities"

func ToDomain(p *PageDB) *entities.PageContent {
	if p == nil {
		return nil
	}

	category := ""
	if p.Category != nil {
		category = *p.Category
	}

	return &entities.PageContent{
		ID:        p.ID,
		Slug:      p.Slug,
		Category:  category,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDomainModify(p *entities.PageContentModify) *PageModifyDB {
	if p == nil {
		return nil
	}
	return &PageModifyDB{
		ID:        p.ID,
		Slug:      p.Slug,
		Category:  p.Category,
		Title:     p.Title,
		Body:      p.Body,
		Published: p.Published,
	}
}
