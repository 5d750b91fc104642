package dto

// Standard API response envelope. Every endpoint uses it except the public
// registration endpoint, whose failure shape is a flat {"error": string}
// because that is the contract the registration form consumes.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

func SuccessWithMeta(data interface{}, meta *Meta) Response {
	return Response{Success: true, Data: data, Meta: meta}
}

func ErrorResponse(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}

// NewMeta computes the pagination block from a raw total. Out-of-range page
// and limit values are clamped so query-string garbage cannot divide by zero.
func NewMeta(page, limit int, total int64) *Meta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return &Meta{CurrentPage: page, PerPage: limit, TotalPages: totalPages, TotalCount: total}
}
