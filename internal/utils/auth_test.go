package utils

import (
	"testing"

	"github.com/brushhq/paintdesk/internal/config"
	"github.com/brushhq/paintdesk/internal/models"
)

func TestPasswordHashing(t *testing.T) {
	password := "secret123"

	// Test Hashing
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if hash == password {
		t.Error("Hash should not match plaintext password")
	}
	if len(hash) == 0 {
		t.Error("Hash should not be empty")
	}

	// Test Comparison (Success)
	if !CheckPasswordHash(password, hash) {
		t.Error("Password should match hash")
	}

	// Test Comparison (Failure)
	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("Wrong password should not match hash")
	}
}

func TestJWT(t *testing.T) {
	// Setup Mock Config
	cfg := &config.Config{
		JWTSecret: "test-secret-key-12345",
	}

	user := &models.User{
		ID:       42,
		Username: "painter",
	}

	// Test Generation
	accessToken, refreshToken, err := GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("Failed to generate tokens: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Error("Tokens should not be empty")
	}

	// Test Validation (Success)
	claims, err := ValidateToken(accessToken, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	ownerID, err := OwnerIDFromClaims(claims)
	if err != nil {
		t.Fatalf("Failed to extract owner id: %v", err)
	}
	if ownerID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, ownerID)
	}
	if claims["username"] != user.Username {
		t.Errorf("Expected username %s, got %v", user.Username, claims["username"])
	}

	// Test Validation (Failure - Wrong Key)
	_, err = ValidateToken(accessToken, "wrong-key")
	if err == nil {
		t.Error("Validation should fail with wrong key")
	}
}

func TestOwnerIDFromClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret-key-12345"}

	token, _, err := GenerateTokens(&models.User{ID: 7, Username: "x"}, cfg)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	id, err := OwnerIDFromClaims(claims)
	if err != nil {
		t.Fatalf("Failed to extract id: %v", err)
	}
	if id != 7 {
		t.Errorf("Expected 7, got %d", id)
	}

	// Missing claim
	if _, err := OwnerIDFromClaims(map[string]interface{}{}); err == nil {
		t.Error("Expected error for missing id claim")
	}
}
