package metrics

import (
	kit "github.com/go-kit/kit/metrics"

	"github.com/tracelight/conlog"
)

// StatusLabel is the label key attached to every emission metric.
const StatusLabel = "status"

// Observer adapts the console emission hook to go-kit instruments: one
// counter increment and one rendered-size observation per emission, both
// labeled by status. A nil instrument is simply skipped, so either side can
// be wired alone.
type Observer struct {
	emissions kit.Counter
	lineBytes kit.Histogram
}

func NewObserver(emissions kit.Counter, lineBytes kit.Histogram) *Observer {
	return &Observer{
		emissions: emissions,
		lineBytes: lineBytes,
	}
}

// OnEmit implements conlog.Observer.
func (o *Observer) OnEmit(e conlog.Emission) {
	status := e.Log.Status.String()
	if o.emissions != nil {
		o.emissions.With(StatusLabel, status).Add(1)
	}
	if o.lineBytes != nil {
		o.lineBytes.With(StatusLabel, status).Observe(float64(len(e.Line)))
	}
}
