package config

// SettingsConfig contains persisted-settings bounds and defaults
type SettingsConfig struct {
	DefaultSensitivity float64
	SensitivityMin     float64
	SensitivityMax     float64
	SensitivityStep    float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		DefaultSensitivity: 1.0,
		SensitivityMin:     0.1,
		SensitivityMax:     4.0,
		SensitivityStep:    0.1,
	}
}
