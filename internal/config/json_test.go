package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"hash_key": "pepper"},
		"storage": {"db": {"dsn": "/tmp/lock.db"}},
		"lock": {"poll_interval": "1s", "biometric_reason": "Unlock wallet"},
		"biometric": {"agent_address": "http://localhost:7465", "request_timeout": "20s", "sign_key": "k"},
		"agent": {"address": "localhost:7465", "kind": "iris", "result": "platform_lockout"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "pepper", cfg.App.HashKey)
	assert.Equal(t, "/tmp/lock.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Lock.PollInterval)
	assert.Equal(t, "Unlock wallet", cfg.Lock.BiometricReason)
	assert.Equal(t, "http://localhost:7465", cfg.Biometric.AgentAddress)
	assert.Equal(t, 20*time.Second, cfg.Biometric.RequestTimeout)
	assert.Equal(t, "k", cfg.Biometric.SignKey)
	assert.Equal(t, "iris", cfg.Agent.Kind)
	assert.Equal(t, "platform_lockout", cfg.Agent.Result)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, `{"lock": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
