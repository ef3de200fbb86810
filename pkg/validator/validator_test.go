package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idCarrier struct {
	ID uuid.UUID `validate:"uuid_required"`
}

func TestUUIDRequiredRejectsNilUUID(t *testing.T) {
	errs := ValidateStruct(&idCarrier{})
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid_required", errs[0].Tag)
	assert.Equal(t, "idCarrier.ID", errs[0].FailedField)
}

func TestUUIDRequiredAcceptsRealUUID(t *testing.T) {
	assert.Empty(t, ValidateStruct(&idCarrier{ID: uuid.New()}))
}

func TestUUIDRequiredRejectsNonUUIDField(t *testing.T) {
	type misused struct {
		Name string `validate:"uuid_required"`
	}
	errs := ValidateStruct(&misused{Name: "not-an-id"})
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid_required", errs[0].Tag)
}
