package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_SetIP(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("127.0.0.1:9090"))
	assert.Equal(t, "127.0.0.1:9090", addr.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"non-numeric port", "localhost:abc"},
		{"zero port", "localhost:0"},
		{"bad host", "not-an-ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			assert.Error(t, addr.Set(tt.input))
		})
	}
}

func TestNetAddress_EmptyString(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
