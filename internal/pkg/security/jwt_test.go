package security_test

import (
	"strings"
	"testing"

	"Hirebase/internal/pkg/security"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := security.GenerateToken("64f1a0000000000000000001", "AGENT")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.MemberID != "64f1a0000000000000000001" {
		t.Errorf("MemberID = %q, want 64f1a0000000000000000001", claims.MemberID)
	}
	if claims.MemberType != "AGENT" {
		t.Errorf("MemberType = %q, want AGENT", claims.MemberType)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := security.GenerateToken("64f1a0000000000000000001", "USER")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err = security.ValidateToken(tampered); err == nil {
		t.Error("tampered token must fail validation")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := security.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token must fail validation")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := security.GenerateToken("64f1a0000000000000000001", "USER")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	sig, err := security.ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature returned error: %v", err)
	}
	if !strings.HasSuffix(token, "."+sig) {
		t.Error("signature must be the third token segment")
	}

	if _, err = security.ExtractSignature("only.two"); err == nil {
		t.Error("two-segment string must be rejected")
	}
}
