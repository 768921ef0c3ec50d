// Package flags wires the generator's configuration surface: every input is
// a flag with an environment variable fallback, so the tool works both as a
// local CLI and inside CI where inputs arrive via the environment.
package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarExtensionsDir = "GALLERY_EXTENSIONS_DIR"
	EnvVarConfigFile    = "GALLERY_CONFIG_FILE"
	EnvVarOutputFile    = "GALLERY_OUTPUT_FILE"
	EnvVarRepository    = "GALLERY_REPOSITORY"
	EnvVarReleasesFile  = "GALLERY_RELEASES_FILE"
	EnvVarLogPath       = "GALLERY_LOG_PATH"
	EnvVarLogLevel      = "GALLERY_LOG_LEVEL"

	// Defaults
	DefaultLogPath  = ""
	DefaultLogLevel = "info"

	// Flag names
	FlagNameExtensionsDir = "extensions-dir"
	FlagNameConfigFile    = "config-file"
	FlagNameOutputFile    = "output-file"
	FlagNameRepository    = "repository"
	FlagNameReleasesFile  = "releases-file"
	FlagNameLogPath       = "log-path"
	FlagNameLogLevel      = "log-level"
)

var (
	ExtensionsDir string
	ConfigFile    string
	OutputFile    string
	Repository    string
	ReleasesFile  string
	LogPath       string
	LogLevel      string
)

// InitFlags registers the generator flags on the given flag set, seeding each
// value from its environment variable when the flag was not set explicitly.
func InitFlags(fs *pflag.FlagSet) {
	initStringVar(fs, &ExtensionsDir, FlagNameExtensionsDir, EnvVarExtensionsDir, "",
		"directory containing one subdirectory per extension manifest")
	initStringVar(fs, &ConfigFile, FlagNameConfigFile, EnvVarConfigFile, "",
		"path to the gallery category config file")
	initStringVar(fs, &OutputFile, FlagNameOutputFile, EnvVarOutputFile, "",
		"path the gallery JSON document is written to")
	initStringVar(fs, &Repository, FlagNameRepository, EnvVarRepository, "",
		"hosting repository to query for releases, e.g. 'posit-dev/connect-extensions'")
	initStringVar(fs, &ReleasesFile, FlagNameReleasesFile, EnvVarReleasesFile, "",
		"optional path to a canonical releases JSON file, used instead of querying the repository")

	initLogger(fs)
}

func initStringVar(fs *pflag.FlagSet, target *string, flagName, envVar, defaultValue, usage string) {
	if *target == "" {
		if env := strings.TrimSpace(os.Getenv(envVar)); env != "" {
			*target = env
		} else {
			*target = defaultValue
		}
	}
	fs.StringVar(target, flagName, *target, usage)
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogPath)); env != "" {
			LogPath = env
		} else {
			LogPath = DefaultLogPath
		}
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
			LogLevel = strings.ToLower(env)
		} else {
			LogLevel = DefaultLogLevel
		}
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for generator logs")
}
