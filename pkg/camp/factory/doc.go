// Package factory is the producer-facing construction point for CAMP nodes.
//
// A Factory interns the two canonical boolean values, resolves operators by
// name (with spelling suggestions), and reports every construction to a
// structured logger and to Prometheus metrics:
//
//	f := factory.New(factory.WithLogger(logger), factory.WithMetrics(m))
//
//	t := f.Bool(true)                       // always the same *data.Bool
//	dot, err := f.Unary("ADot", "name", pattern.NewIt())
//	if err != nil {
//	    // invalid-argument: reject the input; invalid-state: operator table bug
//	}
//
// A Factory is safe for concurrent use.
package factory
