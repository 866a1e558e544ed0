package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyTable_Split(t *testing.T) {
	t.Parallel()

	table := FrequencyTable{1200: 7, 400: 12, 800: 30}

	keys, counts := table.Split()
	assert.Equal(t, []int64{400, 800, 1200}, keys)
	assert.Equal(t, []int64{12, 30, 7}, counts)
	assert.Equal(t, int64(49), table.Total())
}

func TestFrequencyTable_Split_Empty(t *testing.T) {
	t.Parallel()

	keys, counts := FrequencyTable{}.Split()
	assert.Empty(t, keys)
	assert.Empty(t, counts)
}

func TestHistogram_ObserveCreatesLevelsOnFirstUse(t *testing.T) {
	t.Parallel()

	h := NewHistogram()
	assert.Nil(t, h.Table(ModeMobile, "fmp"))

	h.Observe(ModeMobile, "fmp", 400)
	h.Observe(ModeMobile, "fmp", 400)
	h.Observe(ModeMobile, "fmp", 800)
	h.Observe(ModeDesktop, "tti", 1200)
	h.ObserveUnknown(ModeDesktop, "tti")

	assert.Equal(t, FrequencyTable{400: 2, 800: 1}, h.Table(ModeMobile, "fmp"))
	assert.Equal(t, FrequencyTable{1200: 1}, h.Table(ModeDesktop, "tti"))
	assert.Equal(t, int64(1), h.Get(ModeDesktop, "tti").Unknown)
	assert.Nil(t, h.Table(ModeDesktop, "fmp"))

	assert.Equal(t, []DeviceMode{ModeDesktop, ModeMobile}, h.Modes())
	assert.Equal(t, []string{"fmp"}, h.Metrics(ModeMobile))
	assert.Equal(t, int64(4), h.Total())
}

func TestHistogram_Merge(t *testing.T) {
	t.Parallel()

	a := NewHistogram()
	a.Observe(ModeMobile, "fcp", 100)
	a.ObserveUnknown(ModeMobile, "fcp")

	b := NewHistogram()
	b.Observe(ModeMobile, "fcp", 100)
	b.Observe(ModeMobile, "fcp", 200)
	b.Observe(ModeDesktop, "fcp", 100)
	b.ObserveUnknown(ModeMobile, "fcp")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, FrequencyTable{100: 2, 200: 1}, a.Table(ModeMobile, "fcp"))
	assert.Equal(t, int64(2), a.Get(ModeMobile, "fcp").Unknown)
	assert.Equal(t, FrequencyTable{100: 1}, a.Table(ModeDesktop, "fcp"))

	// source untouched
	assert.Equal(t, FrequencyTable{100: 1, 200: 1}, b.Table(ModeMobile, "fcp"))
}

func TestHistogram_JSON(t *testing.T) {
	t.Parallel()

	h := NewHistogram()
	h.Observe(ModeMobile, "fmp", 400)
	h.Observe(ModeMobile, "fmp", 800)
	h.ObserveUnknown(ModeMobile, "tti")

	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mobile": {
			"fmp": {"buckets": {"400": 1, "800": 1}},
			"tti": {"buckets": {}, "unknown": 1}
		}
	}`, string(data))

	var decoded Histogram
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, h.ByMode, decoded.ByMode)
}
