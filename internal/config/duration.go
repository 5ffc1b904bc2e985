package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration written in config.json either as a Go duration
// string ("5s", "1m30s") or as a whole number of seconds.
type Duration struct {
	time.Duration
}

func Seconds(n int) Duration {
	return Duration{Duration: time.Duration(n) * time.Second}
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}

	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", v, err)
		}
		d.Duration = parsed
	case float64:
		if v < 0 || v != float64(int64(v)) {
			return fmt.Errorf("duration %v: want a non-negative whole number of seconds", v)
		}
		d.Duration = time.Duration(v) * time.Second
	default:
		return fmt.Errorf("duration %s: want a string or a number", b)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Duration) orDefault(fallback Duration) Duration {
	if d.Duration == 0 {
		return fallback
	}
	return d
}
