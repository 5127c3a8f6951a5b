package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/brushhq/paintdesk/internal/config"
	"github.com/brushhq/paintdesk/internal/models"
	"github.com/brushhq/paintdesk/internal/utils"
)

func TestValidateWSToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "ws-test-secret"}
	user := &models.User{ID: 42, Username: "painter"}

	access, _, err := utils.GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens failed: %v", err)
	}

	ownerID, err := validateWSToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("validateWSToken rejected a valid token: %v", err)
	}
	if ownerID != 42 {
		t.Errorf("ownerID = %d, want 42", ownerID)
	}

	if _, err := validateWSToken(access, "wrong-secret"); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
	if _, err := validateWSToken("not-a-token", cfg.JWTSecret); err == nil {
		t.Error("expected error for garbage token, got nil")
	}
	if _, err := validateWSToken("", cfg.JWTSecret); err == nil {
		t.Error("expected error for empty token, got nil")
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, 404, "Job not found")

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "Job not found" {
		t.Errorf("error = %q, want %q", body["error"], "Job not found")
	}
}
