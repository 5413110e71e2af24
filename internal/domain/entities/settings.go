package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultConcurrency      = 4
	defaultRemediationTool  = "lazygit"
	pathPlaceholder         = "{path}"
	defaultPreferencesFile  = "preferences.yaml"
	defaultConfigFolderName = "repodrop"
)

// Settings is the top-level configuration for repodrop.
type Settings struct {
	Concurrency     int               `yaml:"concurrency"`
	PreviewLimit    int               `yaml:"preview_limit"`
	PreferencesFile string            `yaml:"preferences_file"`
	Offline         bool              `yaml:"offline"`
	Exclude         []string          `yaml:"exclude"`
	Remediation     RemediationConfig `yaml:"remediation"`
	Providers       []ProviderConfig  `yaml:"providers"`
}

// RemediationConfig configures the external interactive merge/commit tool.
type RemediationConfig struct {
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args"`
	Required *bool    `yaml:"required"`
}

// Hosting provider types accepted in providers[].type.
const (
	ProviderGitHub      = "github"
	ProviderGitLab      = "gitlab"
	ProviderAzureDevOps = "azuredevops"
)

// ProviderTypes lists the hosting provider types the git layer can authenticate against.
func ProviderTypes() []string {
	return []string{ProviderGitHub, ProviderGitLab, ProviderAzureDevOps}
}

// ProviderConfig holds the credentials used to fetch from one Git hosting provider.
type ProviderConfig struct {
	Type  string `yaml:"type"`  // one of ProviderTypes
	Token string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment variables
// and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range settings.Providers {
		settings.Providers[i].Token = ResolveToken(settings.Providers[i].Token)
	}
	settings.PreferencesFile = expandHome(settings.PreferencesFile)
	settings.applyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

func (s *Settings) applyDefaults() {
	if s.Concurrency <= 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.PreviewLimit <= 0 {
		s.PreviewLimit = DefaultPreviewLimit
	}
	if s.PreferencesFile == "" {
		s.PreferencesFile = DefaultPreferencesFile()
	}
	if s.Remediation.Command == "" && s.Remediation.Args == nil {
		s.Remediation.Command = defaultRemediationTool
		s.Remediation.Args = []string{"-p", pathPlaceholder}
	}
}

// Validate checks for invalid configuration values.
func (s *Settings) Validate() error {
	for i, pattern := range s.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("exclude[%d]: invalid glob pattern %q", i, pattern)
		}
	}

	for i, p := range s.Providers {
		if p.Type == "" {
			return fmt.Errorf("providers[%d].type is required", i)
		}
		if !slices.Contains(ProviderTypes(), p.Type) {
			return fmt.Errorf(
				"providers[%d].type %q is unknown (expected one of: %s)",
				i, p.Type, strings.Join(ProviderTypes(), ", "),
			)
		}
		if p.Token == "" {
			return fmt.Errorf(
				"providers[%d].token is required (set inline, via ${ENV_VAR}, or as file path)",
				i,
			)
		}
	}

	return nil
}

// RemediationTool returns the configured remediation tool. The tool is required
// unless the config explicitly says otherwise.
func (s *Settings) RemediationTool() RemediationTool {
	required := true
	if s.Remediation.Required != nil {
		required = *s.Remediation.Required
	}
	return RemediationTool{
		Command:  s.Remediation.Command,
		Args:     s.Remediation.Args,
		Required: required,
	}
}

// DisableRemediation removes the remediation tool for this run.
func (s *Settings) DisableRemediation() {
	notRequired := false
	s.Remediation = RemediationConfig{Args: []string{}, Required: &notRequired}
}

// IsExcluded reports whether a path matches one of the exclude globs.
func (s *Settings) IsExcluded(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range s.Exclude {
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
	}
	return false
}

// ExpandArgs substitutes the repository path into the tool arguments.
func (t RemediationTool) ExpandArgs(repoPath string) []string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = strings.ReplaceAll(arg, pathPlaceholder, repoPath)
	}
	return args
}

// DefaultPreferencesFile returns ~/.config/repodrop/preferences.yaml, or a
// relative file when the home directory is unknown.
func DefaultPreferencesFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+defaultConfigFolderName, defaultPreferencesFile)
	}
	return filepath.Join(configDir, defaultConfigFolderName, defaultPreferencesFile)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".repodrop.yaml",
		".repodrop.yml",
		"repodrop.yaml",
		"repodrop.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// RemoteAccess tells the git layer how to reach remotes.
type RemoteAccess struct {
	Offline bool
	// Tokens maps a provider type to an auth token.
	Tokens map[string]string
}

// RemoteAccess derives the remote access options from the settings.
func (s *Settings) RemoteAccess() RemoteAccess {
	tokens := make(map[string]string, len(s.Providers))
	for _, p := range s.Providers {
		tokens[p.Type] = p.Token
	}
	return RemoteAccess{Offline: s.Offline, Tokens: tokens}
}
