package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CameraConfig holds camera facts a mission record may rely on.
type CameraConfig struct {
	// SensorAspectRatio is width/height of the sensor (e.g. 1.333 for 4:3).
	// Used only to derive a missing vertical FOV from the horizontal one;
	// 0 means "not configured", and missions omitting the vertical FOV are
	// then rejected rather than guessed at.
	SensorAspectRatio float64 `yaml:"sensor_aspect_ratio"`
}

// FlightConfig holds flight-parameter defaults applied when a mission
// record omits them.
type FlightConfig struct {
	CruiseSpeedMPS    float64 `yaml:"cruise_speed_mps"`
	TurnPenaltyS      float64 `yaml:"turn_penalty_s"`
	BatteryMaxFlightS float64 `yaml:"battery_max_flight_s"`
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	DebugLevel int `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// Config aggregates all planner configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Flight   FlightConfig   `yaml:"flight"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Default returns the built-in configuration used when no config file is
// given: 8 m/s cruise, 20 min battery, no turn penalty, no aspect ratio.
func Default() *Config {
	return &Config{
		Flight: FlightConfig{
			CruiseSpeedMPS:    8.0,
			BatteryMaxFlightS: 1200,
		},
	}
}

// Load reads a YAML file and returns the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if cfg.Camera.SensorAspectRatio < 0 {
		return nil, fmt.Errorf("camera.sensor_aspect_ratio must be >= 0, got %.3f", cfg.Camera.SensorAspectRatio)
	}
	if cfg.Flight.CruiseSpeedMPS < 0 {
		return nil, fmt.Errorf("flight.cruise_speed_mps must be >= 0, got %.2f", cfg.Flight.CruiseSpeedMPS)
	}
	if cfg.Flight.CruiseSpeedMPS == 0 {
		cfg.Flight.CruiseSpeedMPS = 8.0 // reasonable default
	}
	if cfg.Flight.TurnPenaltyS < 0 {
		return nil, fmt.Errorf("flight.turn_penalty_s must be >= 0, got %.2f", cfg.Flight.TurnPenaltyS)
	}
	if cfg.Flight.BatteryMaxFlightS < 0 {
		return nil, fmt.Errorf("flight.battery_max_flight_s must be >= 0, got %.2f", cfg.Flight.BatteryMaxFlightS)
	}
	if cfg.Flight.BatteryMaxFlightS == 0 {
		cfg.Flight.BatteryMaxFlightS = 1200 // 20 minutes
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}

	return &cfg, nil
}
