package models

// Defaults for the product listing query.
const (
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
)

// ProductQuery carries the optional filter/sort/page parameters of a
// product listing.
// Every field is optional; Normalize fills in the defaults. The 'query' tags
// match the HTTP query-string parameter names, the validation tags reject
// out-of-domain values before any predicate is built from them.
type ProductQuery struct {
	Category  string   `query:"category" validate:"omitempty,oneof=electronics clothing food home sports other"`
	MinPrice  *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	InStock   *bool    `query:"inStock"`
	Search    string   `query:"search"`
	StoreID   string   `query:"storeId" validate:"omitempty,uuid"`
	SortBy    string   `query:"sortBy" validate:"omitempty,oneof=name price quantity createdAt"`
	SortOrder string   `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      int      `query:"page" validate:"omitempty,gte=1"`
	Limit     int      `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Normalize applies the default sort, order, page and limit to any field
// that was not supplied.
func (q *ProductQuery) Normalize() {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = DefaultSortOrder
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

// Offset returns the number of rows to skip for the requested page.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
