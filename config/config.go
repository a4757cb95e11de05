package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mindriot101/hookman/errors"
	"github.com/mindriot101/hookman/pkg/paths"
	"github.com/mindriot101/hookman/schema"
	"github.com/mindriot101/hookman/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// DefaultConfigPath is the configuration file read when no path is given.
const DefaultConfigPath = ".hookman.toml"

// Load reads and parses a hookman configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigUnreadable(path, err)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		if herr, ok := errors.As(err); ok {
			herr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadLocation loads a configuration file and remembers where it came from.
func LoadLocation(path string) (*ConfigLocation, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &ConfigLocation{Config: *cfg, Path: path}, nil
}

// LoadFromBytes parses configuration data.
//
// The document is decoded into a generic map first so that it can be checked
// against the JSON Schema before being bound to the typed Config. Unknown
// keys, a missing command or an unknown stage are all reported as malformed.
func LoadFromBytes(data []byte) (*Config, error) {
	raw := map[string]interface{}{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, errors.ConfigMalformed(
				fmt.Sprintf("invalid TOML at line %d, column %d", row, col), err).
				WithDetail("line", row).
				WithDetail("column", col)
		}
		return nil, errors.ConfigMalformed("invalid TOML", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load configuration schema")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.ConfigMalformed("configuration does not match schema", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "toml",
		ErrorUnused: true,
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		Result:      &cfg,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.ConfigMalformed("invalid hook definition", err)
	}

	if cfg.Hooks == nil {
		cfg.Hooks = []Hook{}
	}
	return &cfg, nil
}

// GlobalConfigPath returns the location of the optional user-global file.
func GlobalConfigPath() string {
	return paths.GlobalConfigFile()
}

// LoadLayered loads the local configuration and, if present, the global one,
// keeping each layer alongside the merged result.
//
// A global file that does not exist is skipped. A global file that exists
// but cannot be parsed is an error.
func LoadLayered(localPath, globalPath string, logger logrus.FieldLogger) (*LayeredConfig, error) {
	if logger == nil {
		logger = logrus.New()
	}

	logger.WithField("path", localPath).Debug("Loading project configuration")
	local, err := LoadLocation(localPath)
	if err != nil {
		return nil, err
	}

	layered := &LayeredConfig{Local: local, Final: local}
	if globalPath == "" {
		return layered, nil
	}
	if same, err := pathutil.SamePath(localPath, globalPath); err == nil && same {
		logger.WithField("path", globalPath).Debug("Project configuration is the global configuration")
		return layered, nil
	}

	global, err := LoadLocation(globalPath)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			logger.WithField("path", globalPath).Debug("No global configuration found")
			return layered, nil
		}
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"path":  globalPath,
		"hooks": len(global.Config.Hooks),
	}).Debug("Merging global configuration")
	layered.Global = global
	layered.Final = Merge(local, global)
	return layered, nil
}

// LoadMerged returns the configuration hooks are installed from: the local
// file followed by the user-global file, when one exists.
func LoadMerged(localPath string, logger logrus.FieldLogger) (*ConfigLocation, error) {
	layered, err := LoadLayered(localPath, GlobalConfigPath(), logger)
	if err != nil {
		return nil, err
	}
	return layered.Final, nil
}
