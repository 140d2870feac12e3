package models

// TourPackage is an admin-managed tour product.
type TourPackage struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        int64  `json:"price"`
	DurationDays int    `json:"duration_days"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Article is an admin-managed news/blog entry.
type Article struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
