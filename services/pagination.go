package services

const defaultPageSize = 10

// normalizePage clamps page and pageSize to sane values
func normalizePage(page, pageSize int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// totalPages is ceil(total / pageSize)
func totalPages(total, pageSize int64) int64 {
	return (total + pageSize - 1) / pageSize
}
