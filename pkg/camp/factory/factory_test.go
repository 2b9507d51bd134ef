package factory

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/data"
	camperrors "qcert/camp/pkg/camp/errors"
	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/config"
	"qcert/camp/pkg/telemetry/logging"
	"qcert/camp/pkg/telemetry/metrics"
)

func newTestFactory(t *testing.T) (*Factory, *prometheus.Registry, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New() error = %v", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewConstructionMetrics(&config.MetricsConfig{Namespace: "test", Subsystem: "ast"}, registry)
	return New(WithLogger(logger), WithMetrics(m)), registry, &buf
}

func TestFactory_BoolInterned(t *testing.T) {
	f, registry, _ := newTestFactory(t)

	t1, t2 := f.Bool(true), f.Bool(true)
	if t1 != t2 {
		t.Error("Bool(true) returned two instances")
	}
	f1 := f.Bool(false)
	if f1 == t1 || f1.IsTrue() {
		t.Error("Bool(false) returned the true instance")
	}
	if !ast.Equal(t1, t2) || ast.Equal(t1, f1) {
		t.Error("interned booleans compare incorrectly")
	}
	if plain := data.NewBool(true); plain == t1 || !ast.Equal(plain, t1) {
		t.Error("uninterned boolean shares identity with the canonical instance")
	}

	if got := gatheredValue(t, registry, "test_ast_interned_bools"); got != 2 {
		t.Errorf("interned_bools = %v, want 2", got)
	}
	if got := gatheredValue(t, registry, "test_ast_nodes_constructed_total", "kind", "dbool"); got != 2 {
		t.Errorf("constructed dbool = %v, want 2", got)
	}
}

// gatheredValue returns the value of the first series of name whose labels
// include the given name/value pairs.
func gatheredValue(t *testing.T, registry *prometheus.Registry, name string, labelPairs ...string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for i := 0; i+1 < len(labelPairs); i += 2 {
				if labels[labelPairs[i]] != labelPairs[i+1] {
					continue series
				}
			}
			if m.GetGauge() != nil {
				return m.GetGauge().GetValue()
			}
			return m.GetCounter().GetValue()
		}
	}
	t.Fatalf("no series %s%v", name, labelPairs)
	return 0
}

func TestFactory_BoolConcurrent(t *testing.T) {
	f := New()

	const workers = 32
	results := make([]any, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.Bool(i%2 == 0)
		}(i)
	}
	wg.Wait()

	for i := 2; i < workers; i++ {
		if results[i] != results[i%2] {
			t.Fatalf("worker %d observed a second instance", i)
		}
	}
}

func TestFactory_Unary(t *testing.T) {
	f, registry, logs := newTestFactory(t)

	u, err := f.Unary("ADot", "name", pattern.NewIt())
	if err != nil {
		t.Fatalf("Unary() error = %v", err)
	}
	if got := u.String(); got != `ADot "name" (pit)` {
		t.Errorf("String() = %q", got)
	}

	if _, err := f.Unary("ADot", []string{"a"}, pattern.NewIt()); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
	_, err = f.Unary("ADott", "name", pattern.NewIt())
	if !camperrors.IsInvalidArgument(err) || !strings.Contains(err.Error(), "Did you mean 'ADot'?") {
		t.Errorf("Unary(ADott) error = %v", err)
	}

	count, err := testutil.GatherAndCount(registry, "test_ast_construction_failures_total")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("failure series = %d, want 1", count)
	}
	if got := gatheredValue(t, registry, "test_ast_construction_failures_total", "kind", "punop", "error_type", "invalid_argument"); got != 2 {
		t.Errorf("punop failures = %v, want 2", got)
	}
	if got := gatheredValue(t, registry, "test_ast_nodes_constructed_total", "kind", "punop"); got != 1 {
		t.Errorf("punop constructed = %v, want 1", got)
	}
	if !strings.Contains(logs.String(), "node construction rejected") {
		t.Errorf("expected rejection to be logged, got %q", logs.String())
	}
}

func TestFactory_Patterns(t *testing.T) {
	f := New()

	one, err := f.Const(f.Bool(true))
	if err != nil {
		t.Fatal(err)
	}
	eq, err := f.Binary("AEq", pattern.NewIt(), one)
	if err != nil {
		t.Fatal(err)
	}
	orElse, err := f.OrElse(eq, pattern.NewEnv())
	if err != nil {
		t.Fatal(err)
	}
	if got := orElse.String(); got != "do pbinop(AEq, pit, pconst(true)) or else penv" {
		t.Errorf("String() = %q", got)
	}

	if _, err := f.Binary("AEquals", pattern.NewIt(), one); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
	if _, err := f.OrElse(nil, one); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}

	ts, err := f.TimeScale("Week")
	if err != nil || ts.String() != "week" {
		t.Errorf("TimeScale() = %v, %v", ts, err)
	}
	if _, err := f.TimeScale("fortnight"); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
}

func TestFactory_Rules(t *testing.T) {
	f := New()

	when, err := f.When(pattern.NewIt())
	if err != nil {
		t.Fatal(err)
	}
	ret, err := f.Return(pattern.NewEnv())
	if err != nil {
		t.Fatal(err)
	}

	applied, err := f.Apply(when, ret)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := applied.String(); got != "rule_when (pit) ;; rule_return (penv)" {
		t.Errorf("String() = %q", got)
	}
	if !when.IsFunctional() {
		t.Error("Apply() mutated the functional rule")
	}

	if _, err := f.Apply(nil, ret); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Apply(nil) error = %v", err)
	}
	if _, err := f.When(nil); !camperrors.IsInvalidArgument(err) {
		t.Errorf("When(nil) error = %v", err)
	}
}
