package main

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	camperrors "qcert/camp/pkg/camp/errors"
	"qcert/camp/pkg/camp/factory"
	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/cli"
	"qcert/camp/pkg/telemetry/metrics"
)

func TestUnaryParameter(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		list   bool
		want   any
	}{
		{"none", nil, false, nil},
		{"single", []string{"a"}, false, "a"},
		{"many", []string{"a", "b"}, false, []string{"a", "b"}},
		{"forced list", []string{"A"}, true, []string{"A"}},
		{"empty list", nil, true, []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unaryParameter(tt.params, tt.list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unaryParameter() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBuildUnary(t *testing.T) {
	tests := []struct {
		name       string
		op         string
		params     []string
		list       bool
		operand    string
		wantRender string
		wantErr    func(error) bool
	}{
		{name: "no parameter", op: "ACount", operand: "it", wantRender: "ACount(pit)"},
		{name: "string", op: "ADot", params: []string{"name"}, operand: "env", wantRender: `ADot "name" (penv)`},
		{name: "list", op: "ABrand", params: []string{"Customer"}, list: true, operand: "it", wantRender: `ABrand ["Customer"] (pit)`},
		{name: "wrong shape", op: "ADot", params: []string{"a", "b"}, operand: "it", wantErr: camperrors.IsInvalidArgument},
		{name: "unknown operator", op: "ADott", operand: "it", wantErr: camperrors.IsInvalidArgument},
		{name: "unknown operand", op: "ACount", operand: "const", wantErr: func(err error) bool {
			_, ok := err.(*cli.ConfigError)
			return ok
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := buildUnary(factory.New(), tt.op, tt.params, tt.list, tt.operand)
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr(err) {
					t.Fatalf("buildUnary() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildUnary() error = %v", err)
			}
			if desc.Render != tt.wantRender || desc.Kind != "punop" {
				t.Errorf("buildUnary() = %+v, want render %q", desc, tt.wantRender)
			}
		})
	}
}

func TestOperatorLines(t *testing.T) {
	lines := operatorLines(buildOperatorTable())

	if lines[0] != "UNARY OPERATOR   PARAMETER" {
		t.Errorf("header = %q", lines[0])
	}

	var sawDot, sawBinaryHeader, sawEq bool
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "ADot ") && strings.HasSuffix(line, " String"):
			sawDot = true
		case line == "BINARY OPERATOR":
			sawBinaryHeader = true
		case line == "AEq":
			sawEq = sawBinaryHeader
		}
	}
	if !sawDot || !sawEq {
		t.Errorf("operator lines missing entries: dot=%v eq=%v", sawDot, sawEq)
	}
}

func TestWriteMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	f := factory.New(factory.WithMetrics(metrics.NewConstructionMetrics(nil, registry)))
	if _, err := buildUnary(f, "ACount", nil, false, "it"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeMetrics(&buf, registry)

	for _, want := range []string{
		"# HELP camp_ast_nodes_constructed_total Total number of AST nodes constructed",
		`camp_ast_nodes_constructed_total{kind="punop"} 1`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("metrics output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "camp "+Version+"\n") {
		t.Errorf("version output = %q", buf.String())
	}

	tables := fmt.Sprintf("Operators: %d unary, %d binary\n",
		len(pattern.UnaryOperators()), len(pattern.BinaryOperators()))
	if !strings.Contains(buf.String(), tables) {
		t.Errorf("version output missing %q:\n%s", tables, buf.String())
	}
}

func TestCompleteUnaryOperator(t *testing.T) {
	names, directive := completeUnaryOperator(unopCmd, nil, "ARec")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}

	want := map[string]bool{
		"ARec\tString":            true,
		"ARecRemove\tString":      true,
		"ARecProject\tStringList": true,
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected completion %q", name)
		}
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing completions: %v", want)
	}
}
