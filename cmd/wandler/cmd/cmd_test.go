package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/transform"
)

// run executes the root command in an isolated config environment
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(originalWd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WANDLER_CONFIG", "")

	cfgFile, verbose = "", false
	applyPattern, applyReplacement, applyChain = "", "", nil
	listGroup = ""

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err = rootCmd.Execute()
	return out.String(), err
}

func TestApplyCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "Arguments",
			args: []string{"apply", "spaces-to-camel", "hello", "big", "world"},
			want: "helloBigWorld\n",
		},
		{
			name:  "Stdin drops one trailing line break",
			stdin: "1\n2\n3\n",
			args:  []string{"apply", "in-clause-int"},
			want:  "IN (1, 2, 3)\n",
		},
		{
			name: "Chain",
			args: []string{"apply", "camel-to-upper-snake", "--chain", "upper-snake-to-pascal", "myFieldName"},
			want: "MyFieldName\n",
		},
		{
			name: "Regex",
			args: []string{"apply", "regex-replace", "-p", "[0-9]+", "-r", "#", "abc123def45"},
			want: "abc#def#\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"Unknown transform", []string{"apply", "no-such-thing", "x"}, mdwerror.CodeUnknownTransform},
		{"Unknown chain entry", []string{"apply", "uppercase", "--chain", "nope", "x"}, mdwerror.CodeUnknownTransform},
		{"Invalid pattern", []string{"apply", "regex-replace", "-p", "(", "x"}, mdwerror.CodeInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "", "list", "--group", "sql")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "in-clause-int") {
		t.Errorf("output misses in-clause-int:\n%s", out)
	}
	if strings.Contains(out, "spaces-to-camel") {
		t.Errorf("output contains an entry from another group:\n%s", out)
	}

	if _, err := run(t, "", "list", "--group", "nope"); mdwerror.GetCode(err) != mdwerror.CodeInvalidInput {
		t.Errorf("unknown group: error = %v, want INVALID_INPUT", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "wandler ") || !strings.Contains(out, "Catalog:  1.0.0") || !strings.Contains(out, "Protocol: 1.0.0") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Args are joined", "ignored", []string{"a", "b"}, "a b"},
		{"Unix line break", "text\n", nil, "text"},
		{"Windows line break", "text\r\n", nil, "text"},
		{"Only one line break", "text\n\n", nil, "text\n"},
		{"Empty", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(strings.NewReader(tt.stdin), tt.args)
			if err != nil {
				t.Fatalf("readInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readInput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChain_KeepsHistoryOutOfIt(t *testing.T) {
	eng := engine.New()
	ids := []transform.ID{"spaces-to-camel", "camel-to-upper-snake"}

	got, err := chain(eng, ids, "hello world", transform.Args{})
	if err != nil {
		t.Fatalf("chain() error = %v", err)
	}
	if got != "HELLO_WORLD" {
		t.Errorf("chain() = %q, want %q", got, "HELLO_WORLD")
	}
	if eng.CanUndo() {
		t.Error("chain() should not record history")
	}
}
