package utils

import (
	"testing"

	"github.com/kamikazebr/engage-server/pkg/models"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"no-at-sign.com", false},
		{"user@host", false},
		{"user@@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(models.SendNotificationRequest{UserID: "u1", Title: "t", Body: "b"}); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	err := ValidateStruct(models.SendNotificationRequest{UserID: "u1"})
	if err == nil {
		t.Fatal("expected error for missing title and body")
	}
	want := "field 'Title' failed 'required'; field 'Body' failed 'required'"
	if err.Error() != want {
		t.Errorf("unexpected message: got %q, want %q", err.Error(), want)
	}

	if err := ValidateStruct(models.VerifyCodeRequest{Email: "a@x.com", Code: "12ab56"}); err == nil {
		t.Error("expected error for non-numeric code")
	}
}
