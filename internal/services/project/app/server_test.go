package server

import (
	"path/filepath"
	"testing"
)

func TestLoadServerEnv(t *testing.T) {
	t.Setenv("AGORA_DB_PATH", "")
	t.Setenv("AGORA_EVENT_EXCHANGE", "uploads")
	t.Setenv("AGORA_UID_HEADER", "x-user")

	env, err := loadServerEnv()
	if err != nil {
		t.Fatalf("load server env: %v", err)
	}
	if env.DBPath != filepath.Join("data", "project.db") {
		t.Fatalf("db path = %q, want default", env.DBPath)
	}
	if env.EventExchange != "uploads" {
		t.Fatalf("exchange = %q, want uploads", env.EventExchange)
	}
	if env.UIDHeader != "x-user" {
		t.Fatalf("uid header = %q, want x-user", env.UIDHeader)
	}
}

func TestLoadServerEnvDefaults(t *testing.T) {
	env, err := loadServerEnv()
	if err != nil {
		t.Fatalf("load server env: %v", err)
	}
	if env.EventExchange != "file" || env.AppID != "project" || env.UIDHeader != "x-uid" {
		t.Fatalf("unexpected defaults %+v", env)
	}
	if env.EventIssuer != "project-service" {
		t.Fatalf("issuer = %q, want project-service", env.EventIssuer)
	}
}
