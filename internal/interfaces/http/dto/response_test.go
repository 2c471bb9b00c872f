package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidation))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusTooManyRequests, GetHTTPStatus(ErrCodeRateLimited))
	assert.Equal(t, http.StatusRequestEntityTooLarge, GetHTTPStatus(ErrCodePayloadTooLarge))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_SOMETHING_ELSE"))
}

func TestSuccessResponseJSON(t *testing.T) {
	body, err := json.Marshal(NewSuccessResponse(map[string]int{"total_items": 2}, "Cart retrieved successfully.", "req-1"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": true,
		"data": {"total_items": 2},
		"message": "Cart retrieved successfully.",
		"request_id": "req-1"
	}`, string(body))
}

func TestErrorResponseJSON(t *testing.T) {
	body, err := json.Marshal(NewErrorResponseWithRequestID(ErrCodeNotFound, "Cart not found.", "req-2"))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": false,
		"error": {"code": "ERR_NOT_FOUND", "message": "Cart not found."},
		"request_id": "req-2"
	}`, string(body))
}

func TestValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-3", []ValidationDetail{
		{Field: "quantity", Message: "Must be at least 1"},
	})

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "quantity", resp.Error.Details[0].Field)
	assert.Equal(t, "req-3", resp.RequestID)
}
