package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the directory layout the legacy calibrator used, so an
// existing DisplaySettings/CCT_Settings tree keeps working unchanged.
const (
	defaultCalibrationDir  = "DisplaySettings"
	defaultCalibrationFile = "UserDisplayCalibration.txt"
	defaultProfilesDir     = "CCT_Settings"

	defaultNeutralKelvin = 6500
	defaultSliderMin     = -50
	defaultSliderMax     = 50
)

type Config struct {
	WorkDir         string
	CalibrationPath string
	ProfilesDir     string
	DBPath          string

	NeutralKelvin float64
	SliderMin     float64
	SliderMax     float64
}

// fileConfig is the optional on-disk override, read from
// <workdir>/.cctune/config.yaml when present.
type fileConfig struct {
	CalibrationPath string  `yaml:"calibration_path"`
	ProfilesDir     string  `yaml:"profiles_dir"`
	NeutralKelvin   float64 `yaml:"neutral_kelvin"`
	SliderMin       float64 `yaml:"slider_min"`
	SliderMax       float64 `yaml:"slider_max"`
}

func New(workDir string) (Config, error) {
	if workDir == "" {
		return Config{}, fmt.Errorf("work dir is required")
	}
	cfg := Config{
		WorkDir:         workDir,
		CalibrationPath: filepath.Join(workDir, defaultCalibrationDir, defaultCalibrationFile),
		ProfilesDir:     filepath.Join(workDir, defaultProfilesDir),
		DBPath:          filepath.Join(workDir, ".cctune", "cctune.db"),
		NeutralKelvin:   defaultNeutralKelvin,
		SliderMin:       defaultSliderMin,
		SliderMax:       defaultSliderMax,
	}

	overridePath := filepath.Join(workDir, ".cctune", "config.yaml")
	raw, err := os.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	override := fileConfig{}
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", overridePath, err)
	}

	if override.CalibrationPath != "" {
		cfg.CalibrationPath = resolve(workDir, override.CalibrationPath)
	}
	if override.ProfilesDir != "" {
		cfg.ProfilesDir = resolve(workDir, override.ProfilesDir)
	}
	if override.NeutralKelvin > 0 {
		cfg.NeutralKelvin = override.NeutralKelvin
	}
	if override.SliderMin != 0 || override.SliderMax != 0 {
		if override.SliderMin >= override.SliderMax {
			return Config{}, fmt.Errorf("config %s: slider_min must be below slider_max", overridePath)
		}
		cfg.SliderMin = override.SliderMin
		cfg.SliderMax = override.SliderMax
	}
	return cfg, nil
}

func resolve(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}
