package serve_test

import (
	"testing"

	"fjacquet/expense-parse/cmd/serve"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "serve", serve.Cmd.Use)
	assert.Contains(t, serve.Cmd.Short, "HTTP API")
	assert.Contains(t, serve.Cmd.Long, "/parse_text")
	assert.NotNil(t, serve.Cmd.Run)
}

func TestServeCommand_Flags(t *testing.T) {
	addrFlag := serve.Cmd.Flags().Lookup("addr")
	assert.NotNil(t, addrFlag)
	assert.Equal(t, "a", addrFlag.Shorthand)
}
