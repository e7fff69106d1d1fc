package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := ioutil.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runMini(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunFile(t *testing.T) {
	path := writeFile(t, "sum.mini", "a = 1;\nb = 2;\nprint a + b;\n")
	code, stdout, stderr := runMini(t, "", path)
	if code != 0 || stdout != "3\n" || stderr != "" {
		t.Errorf("unexpected result %d %q %q", code, stdout, stderr)
	}
}

func TestRunStdin(t *testing.T) {
	for _, args := range [][]string{nil, {"-"}} {
		code, stdout, _ := runMini(t, `print "from stdin";`, args...)
		if code != 0 || stdout != "from stdin\n" {
			t.Errorf("%v: unexpected result %d %q", args, code, stdout)
		}
	}
}

func TestRunTree(t *testing.T) {
	code, stdout, _ := runMini(t, "x = 1 + 2 * 3;\nprint x;", "-ast")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if stdout != "(set x (+ 1 (* 2 3)))\n(print x)\n" {
		t.Errorf("unexpected tree %q", stdout)
	}
}

func TestRunEnv(t *testing.T) {
	code, stdout, _ := runMini(t, `b = "x"; a = 1; print a;`, "-env")
	if code != 0 || stdout != "1\na = 1\nb = \"x\"\n" {
		t.Errorf("unexpected result %d %q", code, stdout)
	}
}

func TestRunParseError(t *testing.T) {
	code, stdout, stderr := runMini(t, "print 1;\nprint 2", "-no-color")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("nothing should run, got %q", stdout)
	}
	want := "Error on line 2\n\tSyntax error: expected ';', found end of input\n"
	if stderr != want {
		t.Errorf("expected %q, got %q", want, stderr)
	}
}

func TestRunRuntimeError(t *testing.T) {
	code, stdout, stderr := runMini(t, "print 1;\nprint y;\nprint 3;", "-no-color")
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if stdout != "1\n" {
		t.Errorf("output before the error should be kept, got %q", stdout)
	}
	if !strings.Contains(stderr, "Runtime Error on line 2\n\tUndefined variable: y") {
		t.Errorf("unexpected error report %q", stderr)
	}
}

func TestRunUsage(t *testing.T) {
	if code, _, _ := runMini(t, "", "a.mini", "b.mini"); code != 2 {
		t.Errorf("two sources should be rejected, got %d", code)
	}
	if code, _, _ := runMini(t, "", "-unknown"); code != 2 {
		t.Errorf("unknown flags should be rejected, got %d", code)
	}
	if code, _, stderr := runMini(t, "", "-h"); code != 0 || !strings.Contains(stderr, "Usage: mini") {
		t.Errorf("help should succeed, got %d %q", code, stderr)
	}
	missing := filepath.Join(t.TempDir(), "missing.mini")
	if code, _, _ := runMini(t, "", missing); code != 2 {
		t.Errorf("missing source should fail with 2, got %d", code)
	}
}

func TestRunConfig(t *testing.T) {
	cfg := writeFile(t, "mini.yml", "log_level: debug\nlog_format: json\ncolor: false\n")
	code, stdout, stderr := runMini(t, "print 1;", "-config", cfg)
	if code != 0 || stdout != "1\n" {
		t.Fatalf("unexpected result %d %q", code, stdout)
	}
	for _, msg := range []string{`"msg":"parsed"`, `"msg":"executed"`, `"statements":1`} {
		if !strings.Contains(stderr, msg) {
			t.Errorf("log output should contain %s, got %s", msg, stderr)
		}
	}

	bad := writeFile(t, "bad.yml", "log_level: loud\n")
	if code, _, _ := runMini(t, "print 1;", "-config", bad); code != 2 {
		t.Errorf("invalid configuration should fail with 2, got %d", code)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, stderr := runMini(t, "print 1;", "-v", "-no-color")
	if code != 0 || !strings.Contains(stderr, "msg=parsed") {
		t.Errorf("verbose runs should log debug entries, got %d %q", code, stderr)
	}
}

func TestRunTime(t *testing.T) {
	_, _, stderr := runMini(t, "print 1;", "-time")
	if !strings.HasPrefix(stderr, "Time elapsed is:") {
		t.Errorf("unexpected timing report %q", stderr)
	}
}
