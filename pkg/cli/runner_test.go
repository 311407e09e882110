package cli

import (
	"bytes"
	"strings"
	"testing"
)

func clearOperatorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "ACCOUNT_ID", "OPERATOR_ID",
		"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "PRIVATE_KEY", "OPERATOR_KEY",
	} {
		t.Setenv(key, "")
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	runner := NewRunnerWithWriters(&stdout, &stderr)
	code := runner.Run(args)
	return code, stdout.String(), stderr.String()
}

func TestToolsList(t *testing.T) {
	code, stdout, stderr := runCLI(t, "tools", "list")
	if code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr)
	}
	for _, method := range []string{"transfer_hbar", "create_fungible_token", "submit_topic_message"} {
		if !strings.Contains(stdout, method) {
			t.Fatalf("list output is missing %s:\n%s", method, stdout)
		}
	}
}

func TestToolsListJSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "tools", "list", "--json")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.Contains(stdout, `"method": "transfer_hbar"`) {
		t.Fatalf("unexpected JSON output:\n%s", stdout)
	}
}

func TestToolsListHonorsAllowlist(t *testing.T) {
	code, stdout, _ := runCLI(t, "tools", "list", "--tools", "transfer_hbar")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "transfer_hbar") {
		t.Fatalf("unexpected allowlisted output:\n%s", stdout)
	}
}

func TestToolsDescribe(t *testing.T) {
	code, stdout, _ := runCLI(t, "tools", "describe", "transfer_hbar")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.Contains(stdout, "transfer_hbar") || !strings.Contains(stdout, `"transfers"`) {
		t.Fatalf("describe output is missing the schema:\n%s", stdout)
	}
}

func TestToolsDescribeUnknownMethod(t *testing.T) {
	code, _, stderr := runCLI(t, "tools", "describe", "missing_method")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "unknown tool method") {
		t.Fatalf("unexpected error output: %s", stderr)
	}
}

func TestRunUnknownMethod(t *testing.T) {
	clearOperatorEnv(t)
	code, _, stderr := runCLI(t,
		"run", "missing_method",
		"--mode", "returnBytes",
		"--account-id", "0.0.5005",
	)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "unknown tool method") {
		t.Fatalf("unexpected error output: %s", stderr)
	}
}

func TestRunRejectsConflictingParamFlags(t *testing.T) {
	clearOperatorEnv(t)
	code, _, stderr := runCLI(t,
		"run", "transfer_hbar",
		"--mode", "returnBytes",
		"--params", "{}",
		"--params-file", "params.json",
	)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "mutually exclusive") {
		t.Fatalf("unexpected error output: %s", stderr)
	}
}

func TestRejectsUnsupportedMode(t *testing.T) {
	code, _, stderr := runCLI(t, "tools", "list", "--mode", "bogus")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "unsupported mode") {
		t.Fatalf("unexpected error output: %s", stderr)
	}
}

func TestPromptDescribesContext(t *testing.T) {
	code, stdout, _ := runCLI(t,
		"prompt",
		"--account-id", "0.0.5005",
		"--mode", "returnBytes",
	)
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.Contains(stdout, "0.0.5005") || !strings.Contains(stdout, "unsigned bytes") {
		t.Fatalf("unexpected prompt output:\n%s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if strings.TrimSpace(stdout) != Version {
		t.Fatalf("unexpected version output %q", stdout)
	}
}

func TestConfigFileDrivesContext(t *testing.T) {
	path := writeConfig(t, "account_id: 0.0.7007\nmode: returnBytes\n")
	code, stdout, stderr := runCLI(t, "prompt", "--config", path)
	if code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "0.0.7007") {
		t.Fatalf("unexpected prompt output:\n%s", stdout)
	}
}

func TestReadParams(t *testing.T) {
	raw, err := readParams("", "", strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("unexpected default params %q", raw)
	}

	raw, err = readParams("", "-", strings.NewReader(`{"amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"amount":1}` {
		t.Fatalf("unexpected stdin params %q", raw)
	}
}
