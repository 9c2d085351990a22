package models

import "testing"

func TestSignupRequestValidate(t *testing.T) {
	req := SignupRequest{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		TrustedEmail:    "friend@example.com",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	req.ConfirmPassword = "different"
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for mismatched passwords")
	}

	req.ConfirmPassword = "secret123"
	req.TrustedEmail = "not-an-email"
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for invalid trusted email")
	}

	// 紧急联系人是可选的
	req.TrustedEmail = ""
	if err := req.Validate(); err != nil {
		t.Fatalf("empty trusted email should be allowed, got %v", err)
	}
}

func TestMoodIsValid(t *testing.T) {
	for _, m := range AllMoods {
		if !m.IsValid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Mood("angry").IsValid() {
		t.Error("unknown mood should be invalid")
	}
}
