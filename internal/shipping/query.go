package shipping

import "time"

// ListQuery carries the conjunctive filters and pagination of a shipment
// search. Nil filter fields are no-ops.
type ListQuery struct {
	StartDatetime *time.Time
	EndDatetime   *time.Time
	Carriers      []string
	MinPrice      *int
	MaxPrice      *int
	Page          int
	Limit         int
}

// buildListResponse computes the pagination envelope around one page.
func buildListResponse(q ListQuery, total int64, records []ShipmentRecord) *ListResponse {
	var nextPage *int
	if total > int64(q.Page)*int64(q.Limit) {
		n := q.Page + 1
		nextPage = &n
	}
	lastPage := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return &ListResponse{
		Page:     q.Page,
		NextPage: nextPage,
		LastPage: lastPage,
		Limit:    q.Limit,
		Total:    total,
		Items:    len(records),
		Records:  records,
	}
}
