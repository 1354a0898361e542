package dto

// ErrorResponse is the error wire format for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse carries a human-readable success message
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationInfo represents pagination metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
