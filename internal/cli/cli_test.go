package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/figletctl/internal/domain"
	"github.com/aalvaropc/figletctl/internal/infra/figfont"
)

// --- printFigure ---

func TestPrintFigure_TrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	fig := domain.NewFigure([]string{" _ ", "|_|"})
	if err := printFigure(&buf, fig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := " _ \n|_|\n"
	if buf.String() != want {
		t.Errorf("printFigure output = %q, want %q", buf.String(), want)
	}
}

// --- printFonts ---

func TestPrintFonts_ListsCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := printFonts(&buf, figfont.NewProvider()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "standard") {
		t.Errorf("expected standard font in listing, got:\n%s", out)
	}
	if !strings.Contains(out, "(default)") {
		t.Errorf("expected default marker in listing, got:\n%s", out)
	}
	if len(strings.Split(strings.TrimSpace(out), "\n")) < 2 {
		t.Errorf("expected one line per font, got:\n%s", out)
	}
}

// --- root execution ---

func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_RendersMessage(t *testing.T) {
	out, _, err := execRoot(t, "HI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == "" {
		t.Fatal("expected rendered output on stdout")
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) < 2 {
		t.Errorf("expected a multi-line block, got:\n%s", out)
	}
}

func TestRoot_Idempotent(t *testing.T) {
	first, _, err := execRoot(t, "same message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := execRoot(t, "same message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected byte-identical output for repeated invocations")
	}
}

func TestRoot_NoArgs(t *testing.T) {
	out, _, err := execRoot(t)
	if err == nil {
		t.Fatal("expected usage error with no arguments")
	}
	if strings.Contains(out, "_") {
		t.Errorf("expected no rendered output, got:\n%s", out)
	}
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := execRoot(t, "one", "two")
	if err == nil {
		t.Fatal("expected usage error with two arguments")
	}
}

func TestRoot_EmptyMessage(t *testing.T) {
	out, _, err := execRoot(t, "")
	if !errors.Is(err, domain.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout output, got:\n%s", out)
	}
}

func TestRoot_UnsupportedRune(t *testing.T) {
	out, _, err := execRoot(t, "héllo")
	if !errors.Is(err, domain.ErrUnsupportedRune) {
		t.Errorf("expected ErrUnsupportedRune, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout output, got:\n%s", out)
	}
}

func TestRoot_DashDashRendersSubcommandName(t *testing.T) {
	out, _, err := execRoot(t, "--", "fonts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "(default)") {
		t.Errorf("expected a rendered figure, not the font listing:\n%s", out)
	}
	if out == "" {
		t.Fatal("expected rendered output on stdout")
	}
}

// --- subcommands ---

func TestFontsCmd_Output(t *testing.T) {
	out, _, err := execRoot(t, "fonts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "standard") {
		t.Errorf("expected standard in fonts output, got:\n%s", out)
	}
}

func TestVersionCmd_Output(t *testing.T) {
	out, _, err := execRoot(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "figletctl") {
		t.Errorf("expected program name in version output, got:\n%s", out)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[strings.Fields(sub.Use)[0]] = true
	}
	for _, expected := range []string{"fonts", "preview", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_DebugFlag(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected --debug persistent flag on root command")
	}
}

func TestPreviewCmd_RequiresMessage(t *testing.T) {
	cmd := previewCmd()
	if cmd.Args == nil {
		t.Fatal("expected preview to constrain its arguments")
	}
	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("expected error for missing message")
	}
	if err := cmd.Args(cmd, []string{"hello"}); err != nil {
		t.Errorf("unexpected error for single message: %v", err)
	}
}
