package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestChatMessage_TimestampAutoCreated(t *testing.T) {
	// Timestamp is not named CreatedAt, so GORM only fills it on insert when
	// the field is tagged for auto-creation. Without the tag every Postgres
	// row would carry the zero time and history ordering would be undefined.
	s, err := schema.Parse(&ChatMessage{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Timestamp")
	require.NotNil(t, field)
	assert.NotZero(t, field.AutoCreateTime)
}
