package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers every metric from g and writes it to w in the
// Prometheus text exposition format.
//
// Example:
//
//	registry := prometheus.NewRegistry()
//	f := factory.New(factory.WithMetrics(metrics.NewConstructionMetrics(nil, registry)))
//	...
//	_ = metrics.WriteText(os.Stderr, registry)
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
