package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Language string `json:"language"`
	// GitBinary permite apuntar a un git distinto al del PATH.
	GitBinary string `json:"git_binary,omitempty"`
	PathFile  string `json:"path_file"`
}

const (
	defaultLang      = "en"
	defaultGitBinary = "git"
)

// LoadConfig carga la configuración desde ~/.mate-pick/config.json, creándola
// con valores por defecto si todavía no existe. Si path termina en .json se
// usa directamente ese archivo (útil para tests).
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-pick")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:  defaultLang,
		GitBinary: defaultGitBinary,
		PathFile:  path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.GitBinary == "" {
		config.GitBinary = defaultGitBinary
	}
}

// SaveConfig persiste la configuración en su PathFile
func SaveConfig(config *Config) error {
	if config.PathFile == "" {
		return fmt.Errorf("la configuración no tiene ruta de archivo asignada")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}
