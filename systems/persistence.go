package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/strafe/components"
	cfg "github.com/automoto/strafe/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Sensitivity float64 `json:"sensitivity"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strafe",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result means no saved
// settings exist and defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SettingsStore holds the live settings values and implements
// SettingsSource for the look system.
type SettingsStore struct {
	sensitivity float64
}

// NewSettingsStore builds the store from saved settings, falling back to
// defaults when nothing is stored or the value is out of range.
func NewSettingsStore() *SettingsStore {
	s := &SettingsStore{sensitivity: cfg.Settings.DefaultSensitivity}
	saved, err := LoadSettings()
	if err != nil || saved == nil {
		return s
	}
	if saved.Sensitivity >= cfg.Settings.SensitivityMin && saved.Sensitivity <= cfg.Settings.SensitivityMax {
		s.sensitivity = saved.Sensitivity
	}
	return s
}

// LookSensitivity implements SettingsSource.
func (s *SettingsStore) LookSensitivity() float64 {
	return s.sensitivity
}

// Update polls the sensitivity adjust keys and persists changes as they
// happen.
func (s *SettingsStore) Update(e *ecs.ECS) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		delta := 0.0
		if input.Action(cfg.ActionSensitivityUp).JustPressed {
			delta += cfg.Settings.SensitivityStep
		}
		if input.Action(cfg.ActionSensitivityDown).JustPressed {
			delta -= cfg.Settings.SensitivityStep
		}
		if delta == 0 {
			return
		}

		s.sensitivity += delta
		if s.sensitivity < cfg.Settings.SensitivityMin {
			s.sensitivity = cfg.Settings.SensitivityMin
		}
		if s.sensitivity > cfg.Settings.SensitivityMax {
			s.sensitivity = cfg.Settings.SensitivityMax
		}
		_ = SaveSettings(&SavedSettings{Sensitivity: s.sensitivity})
	})
}
