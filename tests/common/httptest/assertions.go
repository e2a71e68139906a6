//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Detail  json.RawMessage `json:"detail"`
}

// AssertSuccessResponse checks the status and, when targetStruct is set, decodes the
// envelope's data field into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}
	if targetStruct == nil || w.Body.Len() == 0 {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to decode response JSON: %s", w.Body.String()) {
		return
	}
	assert.True(t, env.Success, "success flag not set: %s", w.Body.String())
	err := json.Unmarshal(env.Data, targetStruct)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response data: %s", w.Body.String()))
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, env.Success)

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
