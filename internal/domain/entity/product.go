// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a catalog record supplied by the upstream store API.
// The cart treats it as opaque beyond ID and Price.
type Product struct {
	ID          int     `json:"id"`          // Upstream product identifier, unique within the catalog.
	Title       string  `json:"title"`       // Display title.
	Price       float64 `json:"price"`       // Unit price at the time the record was fetched.
	Description string  `json:"description"` // Long-form description.
	Category    string  `json:"category"`    // Upstream category slug, e.g. "electronics".
	Image       string  `json:"image"`       // URL of the product image.
}
