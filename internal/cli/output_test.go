package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/invoicer/internal/models"
	"github.com/thenoetrevino/invoicer/internal/services/backup"
	"github.com/thenoetrevino/invoicer/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(mockDataWithID{ID: 7, Name: "Acme"}))
	})

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "Acme", data["Name"])
	assert.Equal(t, float64(7), data["ID"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		contains string
	}{
		{"value with ID", mockDataWithID{ID: 42}, "42\n"},
		{"pointer with ID", &models.Invoice{ID: 9}, "9\n"},
		{"falls through without ID", mockDataWithoutID{Name: "plain", Value: 3}, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.Success(tt.data))
			})
			assert.Contains(t, output, tt.contains)
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success([]string{"item1", "item2"}))
	})
	assert.Contains(t, output, "item1")
}

// ============================================================================
// Error Reporting Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Error("TEST_ERROR", "something went wrong"))
	})
	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "TEST_ERROR", errData["code"])
	assert.NotContains(t, errData, "suggestion")

	output = testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.ErrorWithSuggestion("TEST_ERROR", "bad", "try again"))
	})
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "try again", result["error"].(map[string]any)["suggestion"])
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	formatter := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Error("TEST_ERROR", "something went wrong"))
	})
	assert.Empty(t, output)
}

func TestOutputFormatter_Fail_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		exitCode int
	}{
		{"not found", models.NotFound("invoice", 4), "NOT_FOUND", ExitNotFound},
		{"validation", models.NewValidationError("items[0].quantity", "must be greater than 0"), "VALIDATION_ERROR", ExitValidation},
		{"wrapped validation", fmt.Errorf("add invoice: %w", models.NewValidationError("status", "bad")), "VALIDATION_ERROR", ExitValidation},
		{"malformed backup", errors.Join(backup.ErrMalformed, models.NewValidationError("", "not JSON")), "MALFORMED_DATA", ExitDataErr},
		{"storage unavailable", fmt.Errorf("open: %w", models.ErrStorageUnavailable), "STORAGE_UNAVAILABLE", ExitError},
		{"storage", models.Storage("insert client", errors.New("disk I/O error")), "STORAGE_ERROR", ExitError},
		{"anything else", errors.New("boom"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}

			var failErr error
			output := testutil.CaptureOutput(t, func() {
				failErr = formatter.Fail(tt.err)
			})

			assert.Equal(t, tt.exitCode, ExitCode(failErr))
			assert.ErrorIs(t, failErr, tt.err)

			errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
			assert.Equal(t, tt.code, errData["code"])
			assert.Equal(t, tt.err.Error(), errData["message"])
		})
	}
}

func TestOutputFormatter_Fail_ReportsField(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Fail(models.NewValidationError("items[1].rate", "must not be negative"))
	})
	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "items[1].rate", errData["field"])
}

func TestOutputFormatter_Usage(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = formatter.Usage("nothing to update")
	})
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Equal(t, "USAGE_ERROR", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(errors.New(`required flag(s) "client" not set`)))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", &StatusError{Code: ExitNotFound, Err: models.ErrNotFound})))
}
