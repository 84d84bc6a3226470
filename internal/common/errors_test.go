package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		err      error
		sentinel error
		code     string
	}{
		{BadRequestError("No file uploaded"), ErrBadRequest, CodeBadRequest},
		{ExtractionError("invalid PDF", cause), ErrExtraction, CodeExtraction},
		{NormalizationError("no response from AI model", nil), ErrNormalization, CodeNormalization},
		{SchemaParseError("invalid JSON", cause), ErrSchemaParse, CodeSchemaParse},
		{PersistenceError("insert resume", cause), ErrPersistence, CodePersistence},
		{NotFoundErrorf("resume %s not found", "abc"), ErrNotFound, CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.code, ErrorCode(tt.err))

			wrapped := fmt.Errorf("pipeline: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.code, ErrorCode(wrapped))
		})
	}
}

func TestErrorTaxonomy_KeepsCause(t *testing.T) {
	cause := errors.New("bad xref")
	err := ExtractionError("invalid PDF", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNormalization)
	assert.Contains(t, err.Error(), "invalid PDF")
	assert.Contains(t, err.Error(), "bad xref")
}

func TestErrorCode_Plain(t *testing.T) {
	assert.Equal(t, "", ErrorCode(errors.New("x")))
	assert.Nil(t, WrapError(nil, "ctx"))
	assert.EqualError(t, WrapError(errors.New("x"), "ctx"), "ctx: x")
}
