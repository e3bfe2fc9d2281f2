package utils

import (
	"errors"
	"strings"
	"testing"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

func TestSanitizeWalletName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"LowercaseSimple", "Ledger", "ledger"},
		{"SpacesToHyphens", "Hot Wallet", "hot-wallet"},
		{"RemoveSpecialChars", "My@Wallet#1!", "mywallet1"},
		{"RemoveConsecutiveHyphens", "hot--wallet", "hot-wallet"},
		{"TrimHyphensAndDots", "-.hot-wallet.-", "hot-wallet"},
		{"EmptyToDefault", "", "wallet"},
		{"OnlySpecialChars", "@#$%", "wallet"},
		{"PreserveUnderscoresAndDots", "cold_v2.backup", "cold_v2.backup"},
		{"ComplexName", "  My Cold Storage! #1  ", "my-cold-storage-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := SanitizeWalletName(tc.input); result != tc.expected {
				t.Errorf("SanitizeWalletName(%q) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	tests := map[string]string{
		"secret\n":        "secret",
		"secret\r\n":      "secret",
		"secret":          "secret",
		"first\nsecond\n": "first",
		"":                "",
	}
	for input, want := range tests {
		got, err := ReadLine(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadLine(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ReadLine(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestReadAll_Empty(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("")); err == nil {
		t.Fatal("Expected error for empty input")
	}
	data, err := ReadAll(strings.NewReader("seed words"))
	if err != nil || string(data) != "seed words" {
		t.Fatalf("Unexpected result %q, %v", data, err)
	}
}

func TestReadNewPassphrase(t *testing.T) {
	scripted := func(answers ...string) func(string) ([]byte, error) {
		return func(string) ([]byte, error) {
			a := answers[0]
			answers = answers[1:]
			return []byte(a), nil
		}
	}

	pw, err := ReadNewPassphrase(scripted("hunter2", "hunter2"))
	if err != nil || string(pw) != "hunter2" {
		t.Fatalf("Unexpected result %q, %v", pw, err)
	}

	if _, err := ReadNewPassphrase(scripted("hunter2", "hunter3")); !errors.Is(err, verrors.ErrPasswordMismatch) {
		t.Errorf("Expected ErrPasswordMismatch, got %v", err)
	}

	if _, err := ReadNewPassphrase(scripted("")); !errors.Is(err, verrors.ErrPasswordRequired) {
		t.Errorf("Expected ErrPasswordRequired, got %v", err)
	}
}
