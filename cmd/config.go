package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/raestrada95/repotopdf/internal/adapter"
	"github.com/raestrada95/repotopdf/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "repotopdf"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "REPOTOPDF"

	outputFlagName      = "output"
	urlFlagName         = "url"
	cleanFlagName       = "clean"
	parallelFlagName    = "parallel"
	recursiveFlagName   = "recursive"
	docsPathFlagName    = "docs-path"
	sortFlagName        = "sort"
	metricsFileFlagName = "metrics-file"
	mergeFileFlagName   = "file"
	verboseFlagName     = "verbose"

	outputConfigKey      = "output"
	cleanConfigKey       = "convert.clean"
	parallelConfigKey    = "convert.parallel"
	recursiveConfigKey   = "convert.recursive"
	docsPathConfigKey    = "convert.docs_path"
	sortConfigKey        = "convert.sort"
	folderNameConfigKey  = "convert.folder_name"
	inputExtConfigKey    = "convert.input_ext"
	outputExtConfigKey   = "convert.output_ext"
	converterCommandKey  = "converter.command"
	converterArgsKey     = "converter.args"
	mergerCommandKey     = "merger.command"
	mergerArgsKey        = "merger.args"
	cloneDepthKey        = "clone.depth"
	knownRootsKey        = "known_roots"
	metricsFileConfigKey = "metrics.file"

	defaultOutputDir  = "./output"
	defaultClean      = true
	defaultRecursive  = false
	defaultSort       = false
	defaultCloneDepth = 1

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".repotopdf.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	loadDotEnv()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutputDir)
	viper.SetDefault(cleanConfigKey, defaultClean)
	viper.SetDefault(parallelConfigKey, domain.DefaultParallel)
	viper.SetDefault(recursiveConfigKey, defaultRecursive)
	viper.SetDefault(docsPathConfigKey, "")
	viper.SetDefault(sortConfigKey, defaultSort)
	viper.SetDefault(folderNameConfigKey, domain.DefaultFolderName)
	viper.SetDefault(inputExtConfigKey, domain.DefaultInputExt)
	viper.SetDefault(outputExtConfigKey, domain.DefaultOutputExt)
	viper.SetDefault(converterCommandKey, adapter.DefaultConverterCommand)
	viper.SetDefault(converterArgsKey, []string{})
	viper.SetDefault(mergerCommandKey, adapter.DefaultMergerCommand)
	viper.SetDefault(mergerArgsKey, []string{})
	viper.SetDefault(cloneDepthKey, defaultCloneDepth)
	viper.SetDefault(knownRootsKey, map[string]string{})
	viper.SetDefault(metricsFileConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

// loadDotEnv exports the variables of a .env file in the working directory,
// leaving variables already set in the environment untouched.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// workflowConfig builds the domain settings from the current configuration.
func workflowConfig() domain.WorkflowConfig {
	return domain.WorkflowConfig{
		Matcher: domain.MatcherConfig{
			FolderName: viper.GetString(folderNameConfigKey),
			InputExt:   viper.GetString(inputExtConfigKey),
			OutputExt:  viper.GetString(outputExtConfigKey),
		},
		KnownRoots: domain.DefaultKnownRoots().With(viper.GetStringMapString(knownRootsKey)),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
