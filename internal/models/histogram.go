package models

import (
	"slices"
	"sort"
)

// FrequencyTable maps a bucket to the number of observations that fell in it.
type FrequencyTable map[int64]int64

// SortedKeys returns the buckets in ascending order.
func (t FrequencyTable) SortedKeys() []int64 {
	keys := make([]int64, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Split returns the sorted buckets and a parallel list of their counts.
func (t FrequencyTable) Split() ([]int64, []int64) {
	keys := t.SortedKeys()
	counts := make([]int64, len(keys))
	for i, k := range keys {
		counts[i] = t[k]
	}
	return keys, counts
}

func (t FrequencyTable) Total() int64 {
	var total int64
	for _, v := range t {
		total += v
	}
	return total
}

// MetricHistogram is the distribution of one metric for one device mode.
// Unknown counts lookups that had no usable value, when that policy is on.
type MetricHistogram struct {
	Buckets FrequencyTable `json:"buckets"`
	Unknown int64          `json:"unknown,omitempty"`
}

// Histogram is the accumulator for one aggregation run: device mode -> metric -> histogram.
//
// Example JSON:
//
//	{
//	  "mobile": {
//	    "fmp": {"buckets": {"400": 12, "800": 30, "1200": 7}},
//	    "tti": {"buckets": {"2000": 4}, "unknown": 2}
//	  },
//	  "desktop": {
//	    "fmp": {"buckets": {"400": 51}}
//	  }
//	}
type Histogram struct {
	ByMode map[DeviceMode]map[string]*MetricHistogram
}

func NewHistogram() *Histogram {
	return &Histogram{ByMode: make(map[DeviceMode]map[string]*MetricHistogram)}
}

// Observe counts one value in the given bucket.
func (h *Histogram) Observe(mode DeviceMode, metric string, bucket int64) {
	h.metric(mode, metric).Buckets[bucket]++
}

// ObserveUnknown counts one lookup that had no usable value.
func (h *Histogram) ObserveUnknown(mode DeviceMode, metric string) {
	h.metric(mode, metric).Unknown++
}

// Table returns the frequency table for a mode and metric, or nil if nothing was observed.
func (h *Histogram) Table(mode DeviceMode, metric string) FrequencyTable {
	if mh := h.Get(mode, metric); mh != nil {
		return mh.Buckets
	}
	return nil
}

func (h *Histogram) Get(mode DeviceMode, metric string) *MetricHistogram {
	metrics, ok := h.ByMode[mode]
	if !ok {
		return nil
	}
	return metrics[metric]
}

// Modes returns the observed device modes in sorted order.
func (h *Histogram) Modes() []DeviceMode {
	modes := make([]DeviceMode, 0, len(h.ByMode))
	for m := range h.ByMode {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Metrics returns the metrics observed for a mode in sorted order.
func (h *Histogram) Metrics(mode DeviceMode) []string {
	metrics := make([]string, 0, len(h.ByMode[mode]))
	for name := range h.ByMode[mode] {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)
	return metrics
}

// Total returns the number of bucketed observations across all modes and metrics.
func (h *Histogram) Total() int64 {
	var total int64
	for _, metrics := range h.ByMode {
		for _, mh := range metrics {
			total += mh.Buckets.Total()
		}
	}
	return total
}

// Merge adds every count of other into h.
func (h *Histogram) Merge(other *Histogram) {
	if other == nil {
		return
	}
	for mode, metrics := range other.ByMode {
		for name, src := range metrics {
			dst := h.metric(mode, name)
			for bucket, count := range src.Buckets {
				dst.Buckets[bucket] += count
			}
			dst.Unknown += src.Unknown
		}
	}
}

func (h *Histogram) metric(mode DeviceMode, name string) *MetricHistogram {
	metrics, ok := h.ByMode[mode]
	if !ok {
		metrics = make(map[string]*MetricHistogram)
		h.ByMode[mode] = metrics
	}
	mh, ok := metrics[name]
	if !ok {
		mh = &MetricHistogram{Buckets: make(FrequencyTable)}
		metrics[name] = mh
	}
	return mh
}
