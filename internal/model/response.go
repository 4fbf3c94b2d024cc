package model

import (
	"encoding/json"

	"food-delivery-api/pkg/apierror"
)

// APIResponse is the envelope every endpoint answers with.
// Success is true iff StatusCode < 400, and Data is nil on failure.
type APIResponse struct {
	StatusCode int                   `json:"statusCode"`
	Data       any                   `json:"data"`
	Message    string                `json:"message"`
	Success    bool                  `json:"success"`
	Errors     []apierror.FieldError `json:"errors,omitempty"`
}

func NewSuccess(status int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	}
}

func NewFailure(status int, message string, errs []apierror.FieldError) APIResponse {
	return APIResponse{
		StatusCode: status,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

// FallbackFailureBody is sent when an envelope cannot be serialized.
const FallbackFailureBody = `{"statusCode":500,"data":null,"message":"internal server error","success":false}`

// Encode serializes resp. A payload JSON cannot represent, such as NaN,
// yields the fallback 500 body instead, so clients always get an envelope.
func (resp APIResponse) Encode() (body []byte, status int, err error) {
	body, err = json.Marshal(resp)
	if err != nil {
		return []byte(FallbackFailureBody), 500, err
	}
	return body, resp.StatusCode, nil
}
