package pagination

// Params carries the offset paging inputs shared by every listing route.
type Params struct {
	Page  int64
	Limit int64
}

// Normalize clamps page and limit to the defaults the listings assume.
func Normalize(page, limit int) Params {
	p := Params{Page: int64(page), Limit: int64(limit)}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

func (p Params) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
