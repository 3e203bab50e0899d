package dto

type ProductFilters struct {
	CategoryKey string // route key; empty or "all" means every category
	SortBy      string // featured, price-low, price-high, rating, newest
}

type CategoryInfo struct {
	Key          string
	Name         string
	Title        string
	Description  string
	ProductCount int
}
