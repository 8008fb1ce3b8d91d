package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codequiz/internal/domain"
	"codequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("question_id")}, string(domain.CodeValidation), http.StatusBadRequest},
		{"not found", domain.NewQuestionNotFoundError("abc"), string(domain.CodeQuestionNotFound), http.StatusNotFound},
		{"source unavailable", domain.NewSourceUnavailableError("down", errors.New("timeout")), string(domain.CodeSourceUnavailable), http.StatusServiceUnavailable},
		{"configuration missing", domain.NewConfigurationMissingError("sheets.tab"), string(domain.CodeConfigurationMissing), http.StatusInternalServerError},
		{"invalid input", domain.NewInvalidInputError("bad"), string(domain.CodeInvalidInput), http.StatusBadRequest},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "nope"), "HTTP_ERROR", http.StatusMethodNotAllowed},
		{"unknown", errors.New("kaboom"), string(domain.CodeInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body struct {
				Code   string `json:"code"`
				Status int    `json:"status"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedHTTP, resp.StatusCode)
			assert.Equal(t, tt.expectedHTTP, body.Status)
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}

func TestValidationMiddleware(t *testing.T) {
	vm := NewValidationMiddleware(validation.NewValidator())
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})

	var gotCriteria domain.FilterCriteria
	var gotForce bool
	app.Get("/", vm.ValidateFilterParams(), vm.ValidateForceParam(), func(c *fiber.Ctx) error {
		gotCriteria = FilterCriteria(c)
		gotForce = Force(c)
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, domain.FilterCriteria{Difficulty: domain.FilterAll, Type: domain.FilterAll}, gotCriteria)
	assert.False(t, gotForce)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?difficulty=Easy&force=1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, domain.FilterCriteria{Difficulty: "Easy", Type: domain.FilterAll}, gotCriteria)
	assert.True(t, gotForce)

	long := strings.Repeat("x", 60)
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?type="+long, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
