package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormScopeName(t *testing.T) {
	assert.Equal(t, "Hello_World", normScopeName("Hello World", 0))
	assert.Equal(t, "hello_world", normScopeName("Hello World", 2))
	assert.Equal(t, "api_reference", normScopeName("API Reference!", 2))
}

func TestNormKey(t *testing.T) {
	assert.Equal(t, "max_connections", normKey("Max Connections"))
	assert.Equal(t, "my-key", normKey("my-key"))
	assert.Equal(t, "key", normKey("-key-"))
	assert.Equal(t, "key_special", normKey("Key (special)"))
}
