package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/fontcss/internal/fontcss"
)

const defaultConfigFile = ".fontcss.yaml"

var k = koanf.New(".")

// flagKeys maps CLI flags onto config file keys so that both share one
// namespace. Flags not listed here use their own name as key.
var flagKeys = map[string]string{
	"fonts-dir":     "fonts.dir",
	"ignore-file":   "fonts.ignore-file",
	"pattern":       "fonts.patterns",
	"stylesheet":    "styles.fonts",
	"mixins":        "styles.mixins",
	"strict":        "check.strict",
	"output-format": "check.output-format",
	"max-issues":    "check.max-issues",
	"debounce":      "watch.debounce",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags. Explicitly set flags win; defaults only fill keys that
	// no other provider set.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, flagToKey(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (FONTCSS_* prefix)
	if err := k.Load(env.Provider("FONTCSS_", ".", envToKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envHyphenKeys restores the hyphens of keys whose env names only have underscores
var envHyphenKeys = map[string]string{
	"fonts.ignore.file":   "fonts.ignore-file",
	"check.output.format": "check.output-format",
	"check.max.issues":    "check.max-issues",
	"dry.run":             "dry-run",
}

// envToKey maps an environment variable onto a config key:
//
//	FONTCSS_FONTS_DIR         -> fonts.dir
//	FONTCSS_FONTS_IGNORE_FILE -> fonts.ignore-file
//	FONTCSS_VERBOSE           -> verbose
func envToKey(s string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FONTCSS_")), "_", ".")
	if mapped, ok := envHyphenKeys[key]; ok {
		return mapped
	}
	return key
}

func flagToKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key := f.Name
		if mapped, ok := flagKeys[f.Name]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(fs, f)
	}
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() fontcss.Config {
	return fontcss.Config{
		FontsDir:       getString("fonts.dir", "src/fonts"),
		StylesheetFile: getPath("styles.fonts", "src/scss/fonts.scss"),
		MixinsFile:     getPath("styles.mixins", "src/scss/_mixins.scss"),
		IgnoreFile:     getString("fonts.ignore-file", fontcss.DefaultIgnoreFile),
		Patterns:       getStrings("fonts.patterns", fontcss.DefaultPatterns),
		Verbose:        getBool("verbose", false),
		Quiet:          getBool("quiet", false),
		UseColors:      getBool("color", false),
		Strict:         getBool("check.strict", false),
		MaxIssues:      getInt("check.max-issues", 0),
	}
}

// getString returns the key's value, or the default when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getPath returns the key's value, or the default when unset. An explicitly
// empty path is kept so that it is reported as not defined.
func getPath(key, defaultVal string) string {
	if k.Exists(key) {
		return k.String(key)
	}
	return defaultVal
}

// getStrings returns the key's list, or the default when unset or empty.
func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBool returns the key's value, or the default when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the key's value, or the default when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
