package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lunaphase/internal/domain/types"
)

func TestRelativeDays(t *testing.T) {
	assert.Equal(t, "today", types.RelativeDays(0))
	assert.Equal(t, "tomorrow", types.RelativeDays(1))
	assert.Equal(t, "5 days from now", types.RelativeDays(5))
	assert.Equal(t, "1 week from now", types.RelativeDays(8))
	assert.Equal(t, "3 days ago", types.RelativeDays(-3))
}
