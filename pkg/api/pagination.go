package api

// Paginated is the server's list envelope: {count, next, previous, results}.
// Next and Previous are absolute URLs, or null at either end of the set.
type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
