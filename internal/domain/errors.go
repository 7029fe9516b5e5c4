package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPriceDataUnavailable means the price store was empty when the
	// decision stage needed it.
	ErrPriceDataUnavailable = errors.New("price data unavailable")

	// ErrNoDataSources means every news tier was exhausted without a
	// single collected item. News has no synthetic fallback.
	ErrNoDataSources = errors.New("no data sources available")

	// ErrIndexOutOfRange is returned by store mutations addressed past the
	// end of the sequence. Correct call sequences never trigger it.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Pipeline stage names carried by StageError.
const (
	StageCollection = "collection"
	StageProcessing = "processing"
	StageDecision   = "decision"
)

// StageError wraps a pipeline failure with the stage it happened in, so
// the HTTP boundary can name the failing stage without inspecting causes.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrorType maps a pipeline error to the wire error_type naming the
// failing stage. Unknown stages fall back to the decision label since the
// decision stage is the last to run.
func ErrorType(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		switch se.Stage {
		case StageCollection:
			return "data_collection_error"
		case StageProcessing:
			return "data_processing_error"
		}
	}
	return "decision_making_error"
}
