package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/mj1618/selection-lens/internal/ax"
	"github.com/mj1618/selection-lens/internal/ax/axtest"
	"github.com/mj1618/selection-lens/internal/config"
	"github.com/mj1618/selection-lens/internal/platform"
	"github.com/spf13/pflag"
)

// useFake registers a fake backend with "hello" selected in a text area of
// pid 100. Character i is 7 points wide starting at x=10.
func useFake(t *testing.T) *axtest.Fake {
	t.Helper()
	f := axtest.New()

	el := f.NewElement(100)
	el.Set(ax.AttributeRole, f.NewString("AXTextArea"))
	el.Set(ax.AttributeSelectedText, f.NewString("hello"))
	el.Set(ax.AttributeSelectedTextRange, f.NewBox(ax.ValueTypeRange, ax.Range{Location: 0, Length: 5}))
	el.SetParam(ax.ParameterizedAttributeBoundsForRange, func(param *axtest.Node) (*axtest.Node, ax.Error) {
		r, ok := param.Payload().(ax.Range)
		if !ok {
			return nil, ax.ErrIllegalArgument
		}
		return f.NewBox(ax.ValueTypeRect, ax.Rect{
			Origin: ax.Point{X: 10 + 7*float64(r.Location), Y: 20},
			Size:   ax.Size{Width: 7 * float64(r.Length), Height: 16},
		}), ax.Success
	})
	app := f.NewElement(100).Set(ax.AttributeFocusedUIElement, el)
	f.Root().Set(ax.AttributeFocusedApplication, app)

	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Native: f}, nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = orig })
	t.Setenv(config.EnvFileVar, "")
	return f
}

// execute runs the root command with args and returns what it printed to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd.PersistentFlags())
		for _, c := range rootCmd.Commands() {
			resetFlags(c.Flags())
		}
	})

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestWatch_StreamsChanges(t *testing.T) {
	f := useFake(t)

	out, err := execute(t, "watch", "--duration", "1", "--interval", "20", "--format", "json")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one change for a stable selection, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{`"type":"shown"`, `"text":"hello"`, `"bounds":[10,20,35,16]`, `"role":"input"`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line missing %s: %s", want, lines[0])
		}
	}
	if n := f.Calls("CopyAttributeValue:" + ax.AttributeSelectedText); n < 2 {
		t.Errorf("selection read %d times in one second at a 20ms interval", n)
	}
	if leaks := f.Leaks(); len(leaks) != 0 {
		t.Errorf("leaked references: %v", leaks)
	}
}

func TestWatch_All(t *testing.T) {
	useFake(t)

	out, err := execute(t, "watch", "--duration", "1", "--interval", "50", "--all", "--format", "json")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected every poll with --all, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], `"type":"same"`) {
		t.Errorf("second line = %s, want a same event", lines[1])
	}
}

func TestSelection_PrintsOnce(t *testing.T) {
	useFake(t)

	out, err := execute(t, "selection", "--format", "json")
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	if !strings.Contains(out, `"outcome":"selection"`) || !strings.Contains(out, `"text":"hello"`) {
		t.Errorf("output = %s", out)
	}
}

func TestInspect_Range(t *testing.T) {
	f := useFake(t)

	out, err := execute(t, "inspect", "--range", "2,3", "--format", "json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, `"range":{"location":2,"length":3,"bounds":[24,20,21,16]}`) {
		t.Errorf("output = %s", out)
	}
	if n := f.Calls("CreateBox"); n != 1 {
		t.Errorf("CreateBox called %d times, want 1", n)
	}
	if leaks := f.Leaks(); len(leaks) != 0 {
		t.Errorf("leaked references: %v", leaks)
	}
}

func TestInspect_InvalidRange(t *testing.T) {
	useFake(t)
	if _, err := execute(t, "inspect", "--range", "12"); err == nil {
		t.Error("expected an error for a range without a length")
	}
}

func TestPermissionDenied(t *testing.T) {
	f := useFake(t)
	f.Trusted = false

	_, err := execute(t, "selection")
	if err == nil || !strings.Contains(err.Error(), "accessibility permission required") {
		t.Errorf("err = %v, want the permission instructions", err)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    ax.Range
		wantErr bool
	}{
		{"3,5", ax.Range{Location: 3, Length: 5}, false},
		{" 0 , 12 ", ax.Range{Location: 0, Length: 12}, false},
		{"3", ax.Range{}, true},
		{"a,b", ax.Range{}, true},
		{"-1,2", ax.Range{}, true},
	}
	for _, tt := range tests {
		got, err := parseRange(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRange(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
