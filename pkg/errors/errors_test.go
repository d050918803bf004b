package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("content.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "content.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("nav[1].href", "duplicate href", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "nav[1].href", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate href")
}

func TestSubmissionErrorCarriesStatus(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad request")
	err := NewSubmissionError(400, underlying)

	var submissionErr *SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	require.Equal(t, 400, submissionErr.StatusCode)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "status 400")
}

func TestSubmissionErrorTransportFailure(t *testing.T) {
	t.Parallel()

	err := NewSubmissionError(0, stdErrors.New("connection refused"))
	require.Equal(t, "submission failed: connection refused", err.Error())
}

func TestRenderErrorIncludesRoute(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("writer closed")
	err := NewRenderError("/about", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "/about", renderErr.Route)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[/about]")
}
