package presenter

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleShowLogin(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.ShowLogin()
	c.ClearTransferForm()

	if !strings.Contains(buf.String(), "pixdash login") {
		t.Fatalf("expected login hint, got %q", buf.String())
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", buf.String())
	}
}

func TestFlags(t *testing.T) {
	f := NewFlags()

	f.ShowLogin()
	f.ClearTransferForm()

	v := f.Take()
	if !v.LoginRequired || !v.FormCleared {
		t.Fatalf("expected both flags set, got %+v", v)
	}

	v = f.Take()
	if v.FormCleared {
		t.Fatalf("expected form flag to be one-shot")
	}
	if !v.LoginRequired {
		t.Fatalf("expected login flag to persist until sign in")
	}

	f.SignedIn()
	if f.Take().LoginRequired {
		t.Fatalf("expected login flag to reset")
	}
}
