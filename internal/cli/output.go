package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/invoicer/internal/models"
	"github.com/thenoetrevino/invoicer/internal/services/backup"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.report(code, message, suggestion, "")
}

// Fail reports err in the current output mode and returns a *StatusError
// whose code matches the error class
func (f *OutputFormatter) Fail(err error) error {
	code, exit := Classify(err)

	var field string
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		field = validationErr.Field
	}

	if fmtErr := f.report(code, err.Error(), suggestionFor(exit), field); fmtErr != nil {
		return &StatusError{Code: ExitError, Err: errors.Join(err, fmtErr)}
	}
	return &StatusError{Code: exit, Err: err}
}

// Usage reports a usage problem found after flag parsing
func (f *OutputFormatter) Usage(message string) error {
	err := errors.New(message)
	if fmtErr := f.report("USAGE_ERROR", message, "Run with --help to see the accepted flags", ""); fmtErr != nil {
		return &StatusError{Code: ExitError, Err: errors.Join(err, fmtErr)}
	}
	return &StatusError{Code: ExitUsage, Err: err}
}

// Classify returns the machine-readable code and exit code for err
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, backup.ErrMalformed):
		return "MALFORMED_DATA", ExitDataErr
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, models.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE", ExitError
	case errors.Is(err, models.ErrStorage):
		return "STORAGE_ERROR", ExitError
	default:
		return "ERROR", ExitError
	}
}

func suggestionFor(exit int) string {
	switch exit {
	case ExitNotFound:
		return "List existing records with the list subcommand"
	case ExitDataErr:
		return "The file must be a JSON object with clients, invoices and settings"
	default:
		return ""
	}
}

func (f *OutputFormatter) report(code, message, suggestion, field string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if field != "" {
			errData["field"] = field
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	// Default implementation - can be enhanced per data type
	fmt.Printf("%+v\n", data)
	return nil
}
