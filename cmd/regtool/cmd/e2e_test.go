package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Reset flags to prevent accumulation between tests
	verbose = false
	regFile = "testdata/no-such-registers"
	tableFile = ""
	simFile = ""
	outputJSON = false
	skipMissing = false
	dryRun = false
	listAsTable = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// copyTestdata copies a dump into a fresh directory so commands may modify it.
func copyTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read testdata: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write testdata copy: %v", err)
	}
	return path
}

// TestCommandsE2E runs the read-only commands end-to-end against a simulated device
func TestCommandsE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantMessage string
		wantOutput  string
		wantContain []string
	}{
		{
			name:        "dump to stdout",
			args:        []string{"dump"},
			wantContain: []string{"0800: 0005", "081c: 0001", "0834: 0000"},
		},
		{
			name:        "info",
			args:        []string{"info"},
			wantContain: []string{"RXOA", "HS_L_EN", "A1_EAR_EN", "RXLL"},
		},
		{
			name:        "info json",
			args:        []string{"info", "--json"},
			wantContain: []string{`"RXOA": {`, `"A1_EAR_EN": 1`, `"HS_L_EN": 0`, `"RXLL": {}`},
		},
		{
			name:       "get set bit",
			args:       []string{"get", "RXOA.A1_EAR_EN"},
			wantOutput: "1\n",
		},
		{
			name:       "get clear bit",
			args:       []string{"get", "RXOA.HS_L_EN"},
			wantOutput: "0\n",
		},
		{
			name:        "get unknown register",
			args:        []string{"get", "NOPE.HS_L_EN"},
			wantErr:     true,
			wantMessage: "Unknown reg",
		},
		{
			name:        "get unknown register and bit",
			args:        []string{"get", "NOPE.NOPE"},
			wantErr:     true,
			wantMessage: "Unknown reg",
		},
		{
			name:        "get unknown bit",
			args:        []string{"get", "RXOA.NOPE"},
			wantErr:     true,
			wantMessage: "Unknown reg bit",
		},
		{
			name:        "set unknown register",
			args:        []string{"set", "NOPE.HS_L_EN", "1"},
			wantErr:     true,
			wantMessage: "Unknown reg",
		},
		{
			name:        "set unknown bit",
			args:        []string{"set", "RXOA.NOPE", "0"},
			wantErr:     true,
			wantMessage: "Unknown reg bit",
		},
		{
			name:    "set invalid value",
			args:    []string{"set", "RXOA.HS_L_EN", "2"},
			wantErr: true,
		},
		{
			name:       "set unchanged",
			args:       []string{"set", "RXOA.A1_EAR_EN", "1"},
			wantOutput: "",
		},
		{
			name:        "list",
			args:        []string{"list"},
			wantContain: []string{"081c", "RXOA", "13 bits", "0830", "RXLL", " 0 bits"},
		},
		{
			name:        "list register",
			args:        []string{"list", "RXOA"},
			wantContain: []string{"081c RXOA", " 6  HS_L_EN", " 9  ST_HS_CP_EN"},
		},
		{
			name:        "list unknown register",
			args:        []string{"list", "NOPE"},
			wantErr:     true,
			wantMessage: "Unknown reg",
		},
		{
			name:    "missing args",
			args:    []string{"get"},
			wantErr: true,
		},
		{
			name:    "unknown route",
			args:    []string{"route", "bluetooth"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := copyTestdata(t, "handset.txt")
			output, _, err := runCLI(t, append([]string{"--sim", sim}, tt.args...)...)

			// Check error expectation
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if tt.wantMessage != "" && userMessage(err) != tt.wantMessage {
					t.Errorf("message = %q, want %q", userMessage(err), tt.wantMessage)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v\nOutput: %s", err, output)
			}

			if tt.wantContain == nil && output != tt.wantOutput {
				t.Errorf("output = %q, want %q", output, tt.wantOutput)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestDumpToFileE2E(t *testing.T) {
	sim := copyTestdata(t, "handset.txt")
	outFile := filepath.Join(t.TempDir(), "saved.txt")

	output, _, err := runCLI(t, "--sim", sim, "dump", outFile)
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if output != "" {
		t.Errorf("dump to file printed %q", output)
	}

	want, _ := os.ReadFile(sim)
	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("saved dump = %q, want %q", got, want)
	}
}

func TestSetGetRoundTripE2E(t *testing.T) {
	sim := copyTestdata(t, "handset.txt")

	for _, step := range []struct {
		args []string
		want string
	}{
		{[]string{"set", "RXOA.A1_EAR_EN", "0"}, "have to change value\n"},
		{[]string{"get", "RXOA.A1_EAR_EN"}, "0\n"},
		{[]string{"set", "RXOA.A1_EAR_EN", "0"}, ""},
		{[]string{"set", "RXOA.HS_L_EN", "1"}, "have to change value\n"},
		{[]string{"get", "RXOA.HS_L_EN"}, "1\n"},
		{[]string{"set", "RXOA.HS_L_EN", "0"}, "have to change value\n"},
		{[]string{"get", "RXOA.HS_L_EN"}, "0\n"},
	} {
		output, _, err := runCLI(t, append([]string{"--sim", sim}, step.args...)...)
		if err != nil {
			t.Fatalf("%v: %v", step.args, err)
		}
		if output != step.want {
			t.Fatalf("%v: output = %q, want %q", step.args, output, step.want)
		}
	}
}

func TestSetWritesRegisterFileE2E(t *testing.T) {
	regs := copyTestdata(t, "handset.txt")

	output, _, err := runCLI(t, "--file", regs, "set", "RXOA.A1_EAR_EN", "0")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if output != "have to change value\n" {
		t.Errorf("output = %q", output)
	}

	// The debugfs file receives a single update request.
	got, _ := os.ReadFile(regs)
	if string(got) != "081c 0" {
		t.Errorf("registers file = %q, want %q", got, "081c 0")
	}
}

func TestCmpE2E(t *testing.T) {
	handset := filepath.Join("testdata", "handset.txt")
	headset := filepath.Join("testdata", "headset.txt")

	output, _, err := runCLI(t, "cmp", handset, handset)
	if err != nil {
		t.Fatalf("cmp failed: %v", err)
	}
	if output != "" {
		t.Errorf("identical files differ:\n%s", output)
	}

	output, _, err = runCLI(t, "cmp", handset, headset)
	if err != nil {
		t.Fatalf("cmp failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d difference lines, want 7:\n%s", len(lines), output)
	}
	if lines[0] != "Difference in RXOA.A1_EAR_EN: 1 != 0" {
		t.Errorf("first line = %q", lines[0])
	}

	partial := filepath.Join(t.TempDir(), "partial.txt")
	if err := os.WriteFile(partial, []byte("081c: 0260\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, "cmp", handset, partial); err == nil {
		t.Fatalf("expected error for missing registers")
	}

	output, warnings, err := runCLI(t, "cmp", "--skip-missing", handset, partial)
	if err != nil {
		t.Fatalf("cmp --skip-missing failed: %v", err)
	}
	if !strings.Contains(warnings, "warning: CC missing from second dump, skipped") {
		t.Errorf("missing skip warning, stderr:\n%s", warnings)
	}
	if !strings.Contains(output, "Difference in RXOA.HS_L_EN: 0 != 1") {
		t.Errorf("missing RXOA difference:\n%s", output)
	}
}

func TestRestoreE2E(t *testing.T) {
	sim := copyTestdata(t, "handset.txt")
	snapshot := filepath.Join("testdata", "headset.txt")

	output, _, err := runCLI(t, "--sim", sim, "restore", "--dry-run", snapshot)
	if err != nil {
		t.Fatalf("restore --dry-run failed: %v", err)
	}
	if !strings.Contains(output, "Restoring: 081c 0260") {
		t.Errorf("dry run output:\n%s", output)
	}
	if out, _, _ := runCLI(t, "--sim", sim, "get", "RXOA.HS_L_EN"); out != "0\n" {
		t.Fatalf("dry run modified the device")
	}

	output, logs, err := runCLI(t, "-v", "--sim", sim, "restore", snapshot)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	for _, want := range []string{
		"Difference in RXOA.A1_EAR_EN: 0 != 1",
		"Restoring: 081c 0260",
		"Difference in RXSDOA.PGA_DAC_EN: 1 != 0",
		"Restoring: 0828 1060",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q\nGot:\n%s", want, output)
		}
	}
	if !strings.Contains(logs, "regtool: writing 0828 1060") {
		t.Errorf("verbose log missing write, got:\n%s", logs)
	}

	output, _, err = runCLI(t, "cmp", sim, snapshot)
	if err != nil {
		t.Fatalf("cmp after restore failed: %v", err)
	}
	if output != "" {
		t.Errorf("device still differs after restore:\n%s", output)
	}
}

func TestRouteE2E(t *testing.T) {
	sim := copyTestdata(t, "handset.txt")

	output, _, err := runCLI(t, "--sim", sim, "route", "headset")
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if output != "Routing headset: 081c 0260\n" {
		t.Errorf("output = %q", output)
	}

	output, _, err = runCLI(t, "cmp", sim, filepath.Join("testdata", "headset.txt"))
	if err != nil {
		t.Fatalf("cmp failed: %v", err)
	}
	if strings.Contains(output, "RXOA") {
		t.Errorf("RXOA not routed to headset:\n%s", output)
	}
}

func TestCustomTableE2E(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "codec.regs")
	if err := os.WriteFile(table, []byte("register 0x1 CODEC_REG1 { MUTE = 0 POWER = 2 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sim := filepath.Join(dir, "regs.txt")
	if err := os.WriteFile(sim, []byte("0x1: 05\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output, _, err := runCLI(t, "--table", table, "--sim", sim, "info", "--json")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(output, `"MUTE": 1`) || !strings.Contains(output, `"POWER": 1`) {
		t.Errorf("unexpected info output:\n%s", output)
	}

	if _, _, err := runCLI(t, "--table", table, "--sim", sim, "set", "CODEC_REG1.MUTE", "0"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, _ := os.ReadFile(sim)
	if string(got) != "0x1: 04\n" {
		t.Errorf("simulated registers = %q, want %q", got, "0x1: 04\n")
	}

	if _, _, err := runCLI(t, "--table", filepath.Join(dir, "missing.regs"), "list"); err == nil {
		t.Errorf("expected error for missing table file")
	}
}
