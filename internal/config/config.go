package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// FontFamily names the font whose repertoire seeds the character
	// index. Empty means the assigned-codepoint repertoire is used
	// instead of probing an installed font.
	FontFamily string `json:"font_family,omitempty"`

	// RecentMax bounds the recently-used character list.
	// 0 means the built-in default of 64.
	RecentMax int `json:"recent_max,omitempty"`

	// DefaultSelection is the category selection restored when a search
	// is cleared. Valid values: "none", "recent". Empty means "none".
	DefaultSelection string `json:"default_selection,omitempty"`

	// CaseSensitive makes name and character matching case sensitive by
	// default. Individual searches can still override it.
	CaseSensitive bool `json:"case_sensitive,omitempty"`

	// SearchNames enables name matching by default, so a free-text query
	// is compared against character names as well as the characters
	// themselves.
	SearchNames bool `json:"search_names,omitempty"`

	// WebBind is the address the web UI listens on. Empty means
	// 127.0.0.1. The server refuses non-loopback addresses unless
	// AllowRemoteWeb is set.
	WebBind string `json:"web_bind,omitempty"`

	// WebPort is the web UI port. 0 means 9587.
	WebPort int `json:"web_port,omitempty"`

	// AllowRemoteWeb permits binding the web UI to a non-loopback
	// address. The UI has no authentication; anyone who can reach the
	// port can edit the collection.
	AllowRemoteWeb bool `json:"allow_remote_web,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is locked" errors).
	// 0 means use sql.DB default (unlimited). Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// All tools are enabled by default. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of tool groups to disable entirely.
	// All tools belonging to a disabled group are excluded from registration.
	// Known groups: "collection". Unknown names are logged as warnings.
	DisabledTypes []string `json:"disabled_types,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RecentMax:        64,
		DefaultSelection: "none",
		WebBind:          "127.0.0.1",
		WebPort:          9587,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.glyphana.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithLocal loads configuration from both the global (~/.glyphana) and a
// directory-local (.glyphana) config. The local config is found by walking
// upward from startDir to the nearest .glyphana/config.json, and takes
// precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithLocal(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	localPath := FindLocalConfig(startDir)
	local, err := loadFileRaw(localPath)
	if err != nil {
		return nil, err
	}

	// Apply defaults, then global, then local
	return Merge(Merge(DefaultConfig(), global), local), nil
}

// FindLocalConfig walks upward from startDir to find the nearest
// .glyphana/config.json. Returns the path if found, or empty string if not.
func FindLocalConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".glyphana", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, not found
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist, return zero config
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.FontFamily = overlay.FontFamily
	if result.FontFamily == "" {
		result.FontFamily = base.FontFamily
	}

	result.RecentMax = overlay.RecentMax
	if result.RecentMax == 0 {
		result.RecentMax = base.RecentMax
	}

	result.DefaultSelection = overlay.DefaultSelection
	if result.DefaultSelection == "" {
		result.DefaultSelection = base.DefaultSelection
	}

	result.WebBind = overlay.WebBind
	if result.WebBind == "" {
		result.WebBind = base.WebBind
	}

	result.WebPort = overlay.WebPort
	if result.WebPort == 0 {
		result.WebPort = base.WebPort
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	// Booleans: overlay wins if true, else base
	result.CaseSensitive = base.CaseSensitive || overlay.CaseSensitive
	result.SearchNames = base.SearchNames || overlay.SearchNames
	result.AllowRemoteWeb = base.AllowRemoteWeb || overlay.AllowRemoteWeb

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
