// internal/app/system/apperrors/httpwrite.go
package apperrors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the JSON error envelope clients receive.
//
//	{ "error": { "message": "...", "statusCode": 404 } }
type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Write converts err into the HTTP error response. Taxonomy errors keep
// their message and status code. Anything else is logged and becomes a
// 500 with a fixed message so internal details never reach the client.
func Write(w http.ResponseWriter, logger *zap.Logger, err error) {
	ae := As(err)
	if ae == nil {
		if logger != nil {
			logger.Error("unexpected error", zap.Error(err))
		}
		ae = Internal("Internal Server Error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.StatusCode)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errorInfo{Message: ae.Message, StatusCode: ae.StatusCode},
	})
}
