package apimodels

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"` // error message on failure
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope for paginated list endpoints.
type ListResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func NewListResponse(data interface{}, total int64, page, pageSize int) ListResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return ListResponse{
		Success:    true,
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type Pagination struct {
	Page     int `json:"page" query:"page"`         // page number (1,2,3..)
	PageSize int `json:"pageSize" query:"pageSize"` // records per page
}

func (r Pagination) GetPage() (page, pageSize int) {
	page = 1
	pageSize = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
