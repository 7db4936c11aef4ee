package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHelpRequest(t *testing.T) {
	assert.True(t, IsHelpRequest("?"))
	assert.True(t, IsHelpRequest("  ?  "))
	assert.True(t, IsHelpRequest("\t?\n"))

	assert.False(t, IsHelpRequest("??"))
	assert.False(t, IsHelpRequest("Was bedeutet das?"))
	assert.False(t, IsHelpRequest(""))
}

func TestDialogSessionProgress(t *testing.T) {
	s := &DialogSession{
		Questions: []DialogQuestion{
			{ID: "q1", Field: "BAUJAHR"},
			{ID: "q2", Field: "DÄMMSYSTEM"},
		},
	}

	assert.False(t, s.Completed())
	assert.Equal(t, "q1", s.CurrentQuestion().ID)

	s.CurrentIndex = 1
	assert.Equal(t, "q2", s.CurrentQuestion().ID)

	s.CurrentIndex = 2
	assert.True(t, s.Completed())
	assert.Nil(t, s.CurrentQuestion())
}

func TestStorageResultLocation(t *testing.T) {
	assert.Equal(t, "local", (&StorageResult{StoredLocally: true}).Location())
	assert.Equal(t, "google_drive", (&StorageResult{StoredRemotely: true}).Location())
	assert.Equal(t, "google_drive", (&StorageResult{StoredLocally: true, StoredRemotely: true}).Location())

	assert.False(t, (&StorageResult{}).Succeeded())
	assert.True(t, (&StorageResult{StoredLocally: true}).Succeeded())
}
