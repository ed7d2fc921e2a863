package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGormDBFromDSNRejectsEmpty(t *testing.T) {
	db, err := NewGormDBFromDSN("", false)

	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrEmptyDSN)
}
