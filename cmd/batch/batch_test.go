package batch_test

import (
	"testing"

	"fjacquet/expense-parse/cmd/batch"

	"github.com/stretchr/testify/assert"
)

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "Batch parse")
	assert.Contains(t, batch.Cmd.Long, "one expense sentence per line")
	assert.NotNil(t, batch.Cmd.Run)
}
