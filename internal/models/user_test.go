package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Eligible(t *testing.T) {
	handle := "@jane"
	empty := ""

	assert.True(t, (&User{YoutubeHandle: &handle}).Eligible())
	assert.False(t, (&User{YoutubeHandle: &empty}).Eligible())
	assert.False(t, (&User{}).Eligible())
}
