package ports

import (
	"context"

	"prosignal/domain/signal"
)

// SignalInput is one raw observation handed over by a producer, before
// temporal framing and classification
type SignalInput struct {
	Insight        string
	Value          signal.Value
	Confidence     float64
	BusinessImpact float64
	Actionability  float64
	SourceModule   string
	MetricName     string
	Metadata       map[string]string
}

// SignalReaderPort supplies raw signal inputs to the pipeline. Implemented
// by the workbook adapter; live producers would implement it in-process.
type SignalReaderPort interface {
	ReadSignals(ctx context.Context) ([]SignalInput, error)
}
