package catalog

// Page: одна страница выдачи.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`     // с 1
	PageSize int  `json:"pageSize"` // элементов на странице
	HasNext  bool `json:"hasNext"`
	HasPrev  bool `json:"hasPrev"`
	Total    int  `json:"total"`
}

const DefaultPageSize = 20

// Paginate вырезает нужную страницу. Неположительные page и pageSize
// заменяются на 1 и DefaultPageSize.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	pageItems := items[start:end]
	if pageItems == nil {
		pageItems = []T{}
	}

	return Page[T]{
		Items:    pageItems,
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
