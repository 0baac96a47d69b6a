package validation_test

import (
	"testing"
	"time"

	"todoboard/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"To-do":            "to-do",
		"In Progress":      "in-progress",
		"  Code   Review ": "code-review",
		"QA\tSign off":     "qa-sign-off",
	}
	for title, want := range cases {
		assert.Equal(t, want, validation.Slug(title), title)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, err := validation.ParseDateRange("2024-12-23 ~ 2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, "2024-12-23 ~ 2025-01-01", validation.FormatDateRange(start, end))
}

func TestParseDateRange_Invalid(t *testing.T) {
	for _, value := range []string{
		"2024-12-23",
		"2024-12-23~2025-01-01",
		"2025-01-01 ~ 2024-12-23",
		"yesterday ~ today",
	} {
		_, _, err := validation.ParseDateRange(value)
		assert.ErrorIs(t, err, validation.ErrDateRange, value)
	}
}

type sample struct {
	Title string `json:"title" validate:"required,max=5"`
	Date  string `json:"date" validate:"daterange"`
}

func TestStruct_Messages(t *testing.T) {
	err := validation.Struct(sample{Title: "", Date: "nope"})

	require.Error(t, err)
	assert.ElementsMatch(t, []string{
		"title is required",
		"date must look like YYYY-MM-DD ~ YYYY-MM-DD",
	}, validation.Messages(err))
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, validation.Struct(sample{Title: "ok", Date: ""}))
	assert.NoError(t, validation.Struct(sample{Title: "ok", Date: "2024-01-01 ~ 2024-01-01"}))
}
