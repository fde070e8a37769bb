package monitor

import (
	"sort"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
)

const (
	OverallLabel = "overall"

	ProbeHistogramWindow      = 5 // Minutes
	ProbeHistogramRefreshTime = time.Minute
	SigFigs                   = 3
)

// HistogramSet keeps one windowed histogram per label, plus one that every
// recorded value also lands in.
type HistogramSet struct {
	rw         sync.RWMutex
	histograms map[string]*hdrhistogram.WindowedHistogram
}

func NewHistogramSet() *HistogramSet {
	set := &HistogramSet{
		histograms: map[string]*hdrhistogram.WindowedHistogram{},
	}
	set.histograms[OverallLabel] = newHistogram()

	return set
}

func (h *HistogramSet) Labels() []string {
	h.rw.RLock()
	defer h.rw.RUnlock()

	labels := make([]string, 0, len(h.histograms))
	for label := range h.histograms {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

func (h *HistogramSet) Max(label string) int64 {
	h.rw.RLock()
	defer h.rw.RUnlock()

	histogram, ok := h.histograms[label]
	if !ok {
		return 0
	}

	return histogram.Merge().Max()
}

func (h *HistogramSet) ValueAtQuantile(label string, q float64) int64 {
	h.rw.RLock()
	defer h.rw.RUnlock()

	histogram, ok := h.histograms[label]
	if !ok {
		return 0
	}

	return histogram.Merge().ValueAtQuantile(q)
}

func (h *HistogramSet) RecordValue(label string, v int64) error {
	h.rw.Lock()
	defer h.rw.Unlock()

	histogram, ok := h.histograms[label]
	if !ok {
		histogram = newHistogram()
		h.histograms[label] = histogram
	}

	if err := h.histograms[OverallLabel].Current.RecordValue(v); err != nil {
		return err
	}

	if label == OverallLabel {
		return nil
	}

	return histogram.Current.RecordValue(v)
}

func (h *HistogramSet) Rotate() {
	h.rw.Lock()
	defer h.rw.Unlock()

	for _, histogram := range h.histograms {
		histogram.Rotate()
	}
}

func newHistogram() *hdrhistogram.WindowedHistogram {
	return hdrhistogram.NewWindowed(ProbeHistogramWindow, 0, int64(time.Minute*10), SigFigs)
}
