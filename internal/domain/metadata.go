package domain

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords int, pagination Pagination) *Metadata {
	return &Metadata{
		CurrentPage:  pagination.Page,
		FirstPage:    1,
		LastPage:     (totalRecords + pagination.PageSize - 1) / pagination.PageSize,
		PageSize:     pagination.PageSize,
		TotalRecords: totalRecords,
	}
}
