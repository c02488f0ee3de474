package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Validation struct {
		Timeout      Duration `json:"timeout"`
		AutoValidate bool     `json:"auto_validate"`
	} `json:"validation,omitempty"`

	Remote struct {
		CheckURL       string   `json:"check_url"`
		CheckPath      string   `json:"check_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`
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
			LogFile: jsonCfg.App.LogFile,
		},
		Validation: Validation{
			Timeout:      time.Duration(jsonCfg.Validation.Timeout),
			AutoValidate: jsonCfg.Validation.AutoValidate,
		},
		Remote: Remote{
			CheckURL:       jsonCfg.Remote.CheckURL,
			CheckPath:      jsonCfg.Remote.CheckPath,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
