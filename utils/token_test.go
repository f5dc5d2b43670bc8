package authUtils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("admin-uid-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != "admin-uid-1" {
		t.Errorf("ParseToken returned %q, want %q", userID, "admin-uid-1")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("admin-uid-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("expected an error for a token signed with a different secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("admin-uid-1"); err == nil {
		t.Error("expected an error when JWT_SECRET is unset")
	}
}
