package dto

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is returned by update endpoints that have nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// UserQuery carries the user_id query parameter shared by the listing endpoints.
type UserQuery struct {
	UserID string `query:"user_id"`
}
