package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"
)

const DefaultPersonaConfigFile = "config/personas.yml"

// PersonaBootstrapEntry describes voice overrides applied to a persona engine on startup.
type PersonaBootstrapEntry struct {
	Name             string
	SignaturePhrases []string
	Openings         []string
	Closings         []string
}

// PersonaBootstrapConfig maintains all configured persona sets.
type PersonaBootstrapConfig struct {
	sets map[string][]PersonaBootstrapEntry
}

// PersonasForSet returns a copy of the persona overrides defined for the requested set.
func (c *PersonaBootstrapConfig) PersonasForSet(name string) []PersonaBootstrapEntry {
	if c == nil {
		return nil
	}
	set := strings.TrimSpace(name)
	if set == "" {
		set = "default"
	}
	list := c.sets[set]
	if len(list) == 0 {
		return nil
	}
	result := make([]PersonaBootstrapEntry, len(list))
	copy(result, list)
	return result
}

// LoadPersonaBootstrapConfig parses the yaml file at the provided path.
func LoadPersonaBootstrapConfig(path string) (*PersonaBootstrapConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("persona config path is empty")
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read persona config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading persona config file")

	var doc personaConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse persona config %q: %w", cleanPath, err)
	}

	if len(doc.Personas) == 0 {
		return nil, fmt.Errorf("persona config %q has no personas defined", cleanPath)
	}

	result := &PersonaBootstrapConfig{
		sets: make(map[string][]PersonaBootstrapEntry),
	}

	for rawSet, entries := range doc.Personas {
		setName := strings.TrimSpace(rawSet)
		if setName == "" || len(entries) == 0 {
			continue
		}
		for idx, entry := range entries {
			entryLogger := log.With().Str("set", setName).Int("index", idx).Str("name", entry.Name).Logger()
			enabled, err := parseEnabled(entry.EnableRaw)
			if err != nil {
				return nil, fmt.Errorf("personas.%s[%d]: %w", setName, idx, err)
			}
			if !enabled {
				entryLogger.Info().Msg("skipping persona override (enable=false)")
				continue
			}
			normalized, err := normalizePersonaEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("personas.%s[%d]: %w", setName, idx, err)
			}
			entryLogger.Info().
				Int("signature_phrases", len(normalized.SignaturePhrases)).
				Int("openings", len(normalized.Openings)).
				Int("closings", len(normalized.Closings)).
				Msg("including persona override for bootstrap")
			result.sets[setName] = append(result.sets[setName], normalized)
		}
	}

	if len(result.sets) == 0 {
		return nil, fmt.Errorf("persona config %q has no valid persona entries", cleanPath)
	}

	return result, nil
}

type personaConfigDocument struct {
	Personas map[string][]personaConfigEntry `yaml:"personas"`
}

type personaConfigEntry struct {
	EnableRaw        string   `yaml:"enable"`
	Name             string   `yaml:"name"`
	SignaturePhrases []string `yaml:"signature_phrases"`
	Openings         []string `yaml:"openings"`
	Closings         []string `yaml:"closings"`
}

func normalizePersonaEntry(entry personaConfigEntry) (PersonaBootstrapEntry, error) {
	name := strings.ToLower(strings.TrimSpace(entry.Name))
	if name == "" {
		return PersonaBootstrapEntry{}, errors.New("persona name is required")
	}

	normalized := PersonaBootstrapEntry{
		Name:             name,
		SignaturePhrases: cleanStringList(entry.SignaturePhrases),
		Openings:         cleanStringList(entry.Openings),
		Closings:         cleanStringList(entry.Closings),
	}

	if len(normalized.SignaturePhrases) == 0 && len(normalized.Openings) == 0 && len(normalized.Closings) == 0 {
		return PersonaBootstrapEntry{}, errors.New("persona override has no phrases")
	}

	return normalized, nil
}

func cleanStringList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		val := strings.TrimSpace(os.ExpandEnv(v))
		if val == "" {
			continue
		}
		out = append(out, val)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseEnabled(raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return true, nil
	}

	resolved := expandWithDefault(value)
	resolved = strings.TrimSpace(resolved)
	if resolved == "" {
		return true, nil
	}

	parsed, err := strconv.ParseBool(resolved)
	if err != nil {
		return false, fmt.Errorf("enable: %w", err)
	}
	return parsed, nil
}

// expandWithDefault expands ${VAR} and ${VAR:-default} syntax using os envs.
func expandWithDefault(raw string) string {
	if !strings.Contains(raw, "${") {
		return os.ExpandEnv(raw)
	}
	start := strings.Index(raw, "${")
	end := strings.Index(raw[start:], "}")
	if start == -1 || end == -1 {
		return os.ExpandEnv(raw)
	}
	end = start + end
	expr := raw[start+2 : end]
	defaultVal := ""
	varName := expr
	if strings.Contains(expr, ":-") {
		parts := strings.SplitN(expr, ":-", 2)
		varName = parts[0]
		defaultVal = parts[1]
	}
	val := os.Getenv(varName)
	if val == "" {
		val = defaultVal
	}
	resolved := raw[:start] + val + raw[end+1:]
	return os.ExpandEnv(resolved)
}
