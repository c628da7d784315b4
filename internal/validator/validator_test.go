package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadForm struct {
	Name         string `json:"name" validate:"required,max=150"`
	DocumentType string `json:"document_type" validate:"required,document_type"`
}

func TestValidate_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&uploadForm{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "document_type")
}

func TestValidate_DocumentTypeRule(t *testing.T) {
	v := New()

	err := v.Validate(&uploadForm{Name: "Q2", DocumentType: "financial_statement"})
	assert.NoError(t, err)

	err = v.Validate(&uploadForm{Name: "Q2", DocumentType: "selfie"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "must be a valid document type", vErr.Errors["document_type"])
}
