// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Credential rejection happens before any session work, so these run
// without a backing Valkey.
func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	auth := NewAuth(nil, "admin@example.com", string(hash))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", `{"email": "admin@example.com", "password": "nope"}`, http.StatusUnauthorized},
		{"wrong email", `{"email": "other@example.com", "password": "correct horse"}`, http.StatusUnauthorized},
		{"empty body", `{}`, http.StatusUnauthorized},
		{"malformed body", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			auth.Login(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	auth := NewAuth(nil, "admin@example.com", "")

	body := `{"email": "admin@example.com", "password": "anything"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	auth.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), "ADMIN_PASSWORD_HASH") {
		t.Errorf("body = %q, want a hint that the hash is unset", rec.Body.String())
	}
}
