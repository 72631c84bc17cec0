package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunaphase/internal/domain/types"
)

func TestReport_JSON(t *testing.T) {
	r := types.Report{
		Snapshot: types.NewSnapshot(obs, 99.5, types.FullMoon, 181, obs.AddDays(7), types.LastQuarter),
		Image:    "/images/full_moon.png",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "/images/full_moon.png", raw["visualization"])
	assert.Equal(t, "Full Moon", raw["phase_name"])
	assert.Equal(t, 7.0, raw["days_until_next_phase"])

	var back types.Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}
