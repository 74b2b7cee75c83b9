package httperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"explicit bad request", BadRequest("bad payload"), http.StatusBadRequest},
		{"explicit not found", NotFound("nope"), http.StatusNotFound},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped record not found", errors.Join(errors.New("ctx"), gorm.ErrRecordNotFound), http.StatusNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, http.StatusBadRequest},
		{"driver duplicate message", errors.New(`ERROR: duplicate key value violates unique constraint "idx_products_name"`), http.StatusBadRequest},
		{"mysql duplicate message", errors.New("Error 1062: Duplicate entry 'x' for key 'name'"), http.StatusBadRequest},
		{"query shape", gorm.ErrInvalidField, http.StatusBadRequest},
		{"missing where", gorm.ErrMissingWhereClause, http.StatusBadRequest},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestEError(t *testing.T) {
	assert.Equal(t, "boom", BadRequest("boom").Error())

	wrapped := Internal("", errors.New("db down"))
	assert.Equal(t, "db down", wrapped.Error())

	var e *E
	assert.True(t, errors.As(Internal("x", errors.New("y")), &e))
	assert.Equal(t, http.StatusInternalServerError, e.Status)
}
