package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	SourcesFetched    uint64            `json:"sources_fetched"`
	RowsParsed        uint64            `json:"rows_parsed"`
	RowsSkipped       uint64            `json:"rows_skipped"`
	CountriesMapped   uint64            `json:"countries_mapped"`
	MappingMisses     uint64            `json:"mapping_misses"`
	ErrorsTotal       uint64            `json:"errors_total"`
	FetchSecondsAvg   float64           `json:"fetch_seconds_avg"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	sourcesFetched  uint64
	rowsParsed      uint64
	rowsSkipped     uint64
	countriesMapped uint64
	mappingMisses   uint64
	errorsTotal     uint64

	fetchCount uint64
	fetchNanos uint64

	statsMu           sync.Mutex
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func IncSourcesFetched() {
	atomic.AddUint64(&sourcesFetched, 1)
}

func AddRowsParsed(n int) {
	if n > 0 {
		atomic.AddUint64(&rowsParsed, uint64(n))
	}
}

func AddRowsSkipped(n int) {
	if n > 0 {
		atomic.AddUint64(&rowsSkipped, uint64(n))
	}
}

func IncCountriesMapped() {
	atomic.AddUint64(&countriesMapped, 1)
}

func IncMappingMiss() {
	atomic.AddUint64(&mappingMisses, 1)
}

func ObserveFetchDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	atomic.AddUint64(&fetchCount, 1)
	atomic.AddUint64(&fetchNanos, uint64(seconds*1e9))
}

func IncError(errType, component string) {
	if errType == "" {
		errType = "unknown"
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	count := atomic.LoadUint64(&fetchCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&fetchNanos)) / float64(count) / 1e9
	}

	return StatsSnapshot{
		SourcesFetched:    atomic.LoadUint64(&sourcesFetched),
		RowsParsed:        atomic.LoadUint64(&rowsParsed),
		RowsSkipped:       atomic.LoadUint64(&rowsSkipped),
		CountriesMapped:   atomic.LoadUint64(&countriesMapped),
		MappingMisses:     atomic.LoadUint64(&mappingMisses),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		FetchSecondsAvg:   avg,
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
