package model

// CatalogStats is shown on the admin dashboard.
type CatalogStats struct {
	Brands   int
	Models   int
	Products int
	Users    int
}
