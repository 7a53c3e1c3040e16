package parse_test

import (
	"testing"

	"fjacquet/expense-parse/cmd/parse"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand_Metadata(t *testing.T) {
	assert.Equal(t, "parse [sentence]", parse.Cmd.Use)
	assert.Contains(t, parse.Cmd.Short, "Parse one sentence")
	assert.NotNil(t, parse.Cmd.Run)
}

func TestParseCommand_Flags(t *testing.T) {
	textFlag := parse.Cmd.Flags().Lookup("text")
	assert.NotNil(t, textFlag)
	assert.Equal(t, "t", textFlag.Shorthand)
	assert.Equal(t, "", textFlag.DefValue)
}
