package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Lock struct {
		PollInterval    Duration `json:"poll_interval"`
		BiometricReason string   `json:"biometric_reason"`
	} `json:"lock,omitempty"`

	Biometric struct {
		AgentAddress   string   `json:"agent_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SignKey        string   `json:"sign_key"`
	} `json:"biometric,omitempty"`

	Agent struct {
		Address string `json:"address"`
		Kind    string `json:"kind"`
		Result  string `json:"result"`
	} `json:"agent,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Lock: Lock{
			PollInterval:    time.Duration(jsonCfg.Lock.PollInterval),
			BiometricReason: jsonCfg.Lock.BiometricReason,
		},
		Biometric: Biometric{
			AgentAddress:   jsonCfg.Biometric.AgentAddress,
			RequestTimeout: time.Duration(jsonCfg.Biometric.RequestTimeout),
			SignKey:        jsonCfg.Biometric.SignKey,
		},
		Agent: Agent{
			Address: jsonCfg.Agent.Address,
			Kind:    jsonCfg.Agent.Kind,
			Result:  jsonCfg.Agent.Result,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1s", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
