package coredb

import (
	"context"
	"database/sql"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/genome-engine/pkg/types"
)

func testDBCfg() types.DatabaseConfig {
	return types.DatabaseConfig{
		Host:           "mysql-eg-publicsql.ebi.ac.uk",
		Port:           3306,
		FallbackPort:   4157,
		User:           "anonymous",
		ConnectTimeout: 2 * time.Second,
	}
}

func TestDSN(t *testing.T) {
	got := dsn(testDBCfg(), 3306, "homo_sapiens_core_106_38")

	for _, want := range []string{
		"anonymous@",
		"tcp(mysql-eg-publicsql.ebi.ac.uk:3306)",
		"/homo_sapiens_core_106_38",
		"timeout=2s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dsn = %q, should contain %q", got, want)
		}
	}
}

func TestDSNFallbackPort(t *testing.T) {
	cfg := testDBCfg()
	got := dsn(cfg, cfg.FallbackPort, "homo_sapiens_core_106_38")
	if !strings.Contains(got, ":4157)") {
		t.Errorf("dsn = %q, should dial the fallback port", got)
	}
}

func TestDSNWithPassword(t *testing.T) {
	cfg := testDBCfg()
	cfg.User = "reader"
	cfg.Password = "hunter2"
	got := dsn(cfg, 3306, "homo_sapiens_core_106_38")
	if !strings.Contains(got, "reader:hunter2@") {
		t.Errorf("dsn = %q, should carry the credentials", got)
	}
}

func TestNullable(t *testing.T) {
	if got := nullable(sql.NullString{}); got != nil {
		t.Errorf("nullable(NULL) = %v, want nil", got)
	}
	if got := nullable(sql.NullString{Valid: true, String: ""}); got == nil || *got != "" {
		t.Errorf("nullable(empty) = %v, want pointer to empty string", got)
	}
	if got := nullable(sql.NullString{Valid: true, String: "BRCA2"}); got == nil || *got != "BRCA2" {
		t.Errorf("nullable(BRCA2) = %v, want pointer to value", got)
	}
}

func TestConnectBothPortsFail(t *testing.T) {
	// Grab a free local port, then close the listener so nothing answers.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	cfg := types.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           port,
		FallbackPort:   port,
		User:           "anonymous",
		ConnectTimeout: 2 * time.Second,
	}

	_, err = Connect(context.Background(), cfg, "homo_sapiens_core_106_38")
	if err == nil {
		t.Fatal("Connect should fail when both ports are unreachable")
	}
	if !strings.Contains(err.Error(), "fallback port") {
		t.Errorf("error should name the fallback attempt: %v", err)
	}
	if !strings.Contains(err.Error(), "homo_sapiens_core_106_38") {
		t.Errorf("error should name the database: %v", err)
	}
}
