package sqlutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func TestStringConversions(t *testing.T) {
	assert.Equal(t, sql.NullString{}, ToSqlString(nil))
	assert.Equal(t, sql.NullString{String: "logo.png", Valid: true}, ToSqlString(pointer.String("logo.png")))

	assert.Nil(t, FromSqlStringPtr(sql.NullString{}))
	assert.Equal(t, "logo.png", *FromSqlStringPtr(sql.NullString{String: "logo.png", Valid: true}))
}

func TestInt32Conversions(t *testing.T) {
	assert.False(t, ToSqlInt32(nil).Valid)
	assert.Equal(t, sql.NullInt32{Int32: 77, Valid: true}, ToSqlInt32(pointer.Int(77)))

	assert.Nil(t, FromSqlInt32(sql.NullInt32{}))
	assert.Equal(t, 77, *FromSqlInt32(sql.NullInt32{Int32: 77, Valid: true}))
}

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	assert.False(t, ToNullUUID(nil).Valid)
	assert.Equal(t, uuid.NullUUID{UUID: id, Valid: true}, ToNullUUID(&id))

	assert.Nil(t, FromNullUUID(uuid.NullUUID{}))
	got := FromNullUUID(uuid.NullUUID{UUID: id, Valid: true})
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}
