package dto

// APIResponse wraps every successful response body.
type APIResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Data     any            `json:"data"`
	Metadata map[string]any `json:"metadata"`
}

// ErrorResponse is returned for every failed request. Errors maps request fields to
// messages and is only present for a rejected create.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewAPIResponse builds a successful envelope. metadata may be nil.
func NewAPIResponse(message string, data any, metadata map[string]any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data, Metadata: metadata}
}

// NewErrorResponse builds a failed envelope.
func NewErrorResponse(message string, fields map[string]string) ErrorResponse {
	if len(fields) == 0 {
		fields = nil
	}
	return ErrorResponse{Success: false, Message: message, Errors: fields}
}
