package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success(t *testing.T) {
	tests := []struct {
		name     string
		json     bool
		quiet    bool
		data     interface{}
		validate func(t *testing.T, out string)
	}{
		{
			name: "json wraps data",
			json: true,
			data: map[string]interface{}{"test": "value"},
			validate: func(t *testing.T, out string) {
				var result map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(out), &result))
				assert.Equal(t, true, result["success"])
				assert.Equal(t, "value", result["data"].(map[string]interface{})["test"])
			},
		},
		{
			name:  "quiet prints id",
			quiet: true,
			data:  mockDataWithID{ID: "abc-123", Name: "x"},
			validate: func(t *testing.T, out string) {
				assert.Equal(t, "abc-123\n", out)
			},
		},
		{
			name:  "quiet without id falls back to human output",
			quiet: true,
			data:  mockDataWithoutID{Name: "n", Value: 7},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "Value:7")
			},
		},
		{
			name: "human output",
			data: mockDataWithoutID{Name: "n", Value: 7},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "Name:n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(tt.json, tt.quiet)
			require.NoError(t, f.Success(tt.data))
			tt.validate(t, out.String())
		})
	}
}

func TestOutputFormatter_Printf_SilentInMachineModes(t *testing.T) {
	for _, mode := range []struct{ json, quiet bool }{{true, false}, {false, true}} {
		f, out, _ := newTestFormatter(mode.json, mode.quiet)
		f.Printf("hello %s\n", "world")
		assert.Empty(t, out.String())
	}

	f, out, _ := newTestFormatter(false, false)
	f.Printf("hello %s\n", "world")
	assert.Equal(t, "hello world\n", out.String())
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)
	require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task x not found", "Use 'todo task list'"))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "task x not found", errData["message"])
	assert.Equal(t, "Use 'todo task list'", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)
	require.NoError(t, f.Error("SOME_CODE", "something broke"))

	assert.Empty(t, out.String())
	assert.True(t, strings.Contains(errOut.String(), "something broke"))
	assert.NotContains(t, errOut.String(), "Suggestion")
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	cause := errors.New("disk full")

	err := f.Fail(ExitError, "TASK_CREATE_ERROR", cause, "try again")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitError, ExitCodeFor(err))
	assert.Contains(t, errOut.String(), "disk full")
	assert.Contains(t, errOut.String(), "try again")
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitError, ExitCodeFor(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCodeFor(NewExitError(ExitNotFound, errors.New("missing"))))
	assert.Equal(t, "exit status 5", NewExitError(ExitValidation, nil).Error())
}
