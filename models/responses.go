package models

// ResultResponse is the generic acknowledgement body returned by mutation
// endpoints that have no resource representation to return.
type ResultResponse struct {
	Result string `json:"result"`
}

// Page wraps a paginated collection. HasMore tells the client whether another
// page exists without requiring a second count query on its side.
type Page[T any] struct {
	Data    []T   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"has_more"`
}

// InfiniteScrollPage wraps keyset-paginated collections (conversations).
// Clients pass the last id they have seen instead of a page number.
type InfiniteScrollPage[T any] struct {
	Data    []T  `json:"data"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// ListResponse wraps flat, non-paginated collections (API keys, tags).
type ListResponse[T any] struct {
	Data []T `json:"data"`
}
