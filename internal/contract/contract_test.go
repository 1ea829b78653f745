package contract

import (
	"context"
	"strings"
	"testing"

	"github.com/flarebyte/hello-world-cli/internal/diag"
)

func TestValidateAcceptsLiveReport(t *testing.T) {
	rep, err := diag.RunAll(context.Background(), diag.Deps{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := diag.EncodeJSON(rep, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := Validate(b); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateAcceptsMinimalReport(t *testing.T) {
	minimal := `{"contractVersion":"1","ok":true,"checks":[]}`
	if err := Validate([]byte(minimal)); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsWrongGreeting(t *testing.T) {
	bad := `{"contractVersion":"1","ok":true,"checks":[],` +
		`"greeting":{"text":"Hello world","bytes":12,"newline":true}}`
	err := Validate([]byte(bad))
	if err == nil {
		t.Fatalf("expected violation for wrong greeting text")
	}
	if !strings.Contains(err.Error(), "report contract violation") {
		t.Fatalf("message: %v", err)
	}
}

func TestValidateRejectsWrongContractVersion(t *testing.T) {
	bad := `{"contractVersion":"2","ok":true,"checks":[]}`
	if err := Validate([]byte(bad)); err == nil {
		t.Fatalf("expected violation for wrong contractVersion")
	}
}

func TestValidateRejectsMissingOK(t *testing.T) {
	bad := `{"contractVersion":"1","checks":[]}`
	if err := Validate([]byte(bad)); err == nil {
		t.Fatalf("expected violation for missing ok")
	}
}

func TestValidateRejectsUnnamedCheck(t *testing.T) {
	bad := `{"contractVersion":"1","ok":true,"checks":[{"name":"","ok":true}]}`
	if err := Validate([]byte(bad)); err == nil {
		t.Fatalf("expected violation for empty check name")
	}
}

func TestValidateRejectsInvalidJSON(t *testing.T) {
	if err := Validate([]byte("{nope")); err == nil {
		t.Fatalf("expected error for malformed input")
	}
}
