package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveUserRequest_AbsentNullAndValue(t *testing.T) {
	var req SaveUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","youtubeHandle":null}`), &req))

	assert.False(t, req.Phone.Set)
	assert.False(t, req.Phone.Null())
	assert.Nil(t, req.Phone.Value)

	assert.True(t, req.YoutubeHandle.Set)
	assert.True(t, req.YoutubeHandle.Null())

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","phone":""}`), &req))
	require.NotNil(t, req.Phone.Value)
	assert.Equal(t, "", *req.Phone.Value)
	assert.False(t, req.Phone.Null())
}

func TestSaveUserRequest_RejectsNonString(t *testing.T) {
	var req SaveUserRequest
	assert.Error(t, json.Unmarshal([]byte(`{"name":"Jane","phone":42}`), &req))
}
