package commands

import (
	"bytes"
	"strings"
	"testing"
)

// cli runs grogetter against home and returns stdout.
func cli(t *testing.T, home string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"--home", home}, args...)
	if err := run(full, &out); err != nil {
		t.Fatalf("grogetter %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"GROGETTER_HOME", "GROGETTER_BACKEND", "GROGETTER_PASSPHRASE", "GROGETTER_LOG"} {
		t.Setenv(k, "")
	}
}

func TestCLI_ListAndItems(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	out := cli(t, home, "list", "ls")
	if !strings.Contains(out, "* My Grocery List") {
		t.Fatalf("default list missing:\n%s", out)
	}

	cli(t, home, "list", "create", "Produce Run")
	cli(t, home, "list", "select", "produce run")
	cli(t, home, "item", "add", "Milk")
	cli(t, home, "item", "add", "Flour", "--qty", "2", "--unit", "kilogram", "--notes", "organic")
	cli(t, home, "item", "add", "Chips", "--category", "Snacks")

	out = cli(t, home, "item", "ls")
	for _, want := range []string{"1. [ ] Milk", "2. [ ] 2 kg Flour", "3. [ ] Chips  (Snacks)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("item ls missing %q:\n%s", want, out)
		}
	}

	cli(t, home, "item", "toggle", "2")
	out = cli(t, home, "share")
	want := "Produce Run\n- Milk\n✓ 2 kg Flour (organic)\n- Chips\n"
	if out != want {
		t.Fatalf("share:\n%s\nwant:\n%s", out, want)
	}

	out = cli(t, home, "item", "ls", "--where", "!completed")
	if strings.Contains(out, "Flour") || !strings.Contains(out, "Milk") {
		t.Fatalf("filtered ls:\n%s", out)
	}

	cli(t, home, "item", "move", "3", "--to", "1")
	out = cli(t, home, "item", "ls")
	if !strings.Contains(out, "1. [ ] Chips") {
		t.Fatalf("move:\n%s", out)
	}

	out = cli(t, home, "category", "ls")
	if !strings.Contains(out, "Snacks") {
		t.Fatalf("custom category missing:\n%s", out)
	}
	cli(t, home, "item", "rm", "1")
	out = cli(t, home, "category", "ls")
	if strings.Contains(out, "Snacks") {
		t.Fatalf("unused custom category kept:\n%s", out)
	}

	cli(t, home, "list", "clear-completed")
	out = cli(t, home, "item", "ls")
	if strings.Contains(out, "Flour") {
		t.Fatalf("completed item kept:\n%s", out)
	}
}

func TestCLI_Errors(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	var out bytes.Buffer

	if err := run([]string{"--home", home, "list", "select", "nope"}, &out); err == nil {
		t.Fatal("selecting a missing list succeeded")
	}
	if err := run([]string{"--home", home, "item", "toggle", "9"}, &out); err == nil {
		t.Fatal("toggling a missing item succeeded")
	}
	if err := run([]string{"--home", home, "item", "add", "x", "--unit", "furlong"}, &out); err == nil {
		t.Fatal("unknown unit accepted")
	}
	if err := run([]string{"--home", home, "--backend", "postgres", "list", "ls"}, &out); err == nil {
		t.Fatal("unknown backend accepted")
	}
}

func TestCLI_SQLiteBackend(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	cli(t, home, "--backend", "sqlite", "item", "add", "Bread")
	out := cli(t, home, "--backend", "sqlite", "share", "--markdown")
	if !strings.Contains(out, "# My Grocery List") || !strings.Contains(out, "- ◻️ Bread") {
		t.Fatalf("markdown:\n%s", out)
	}
}
