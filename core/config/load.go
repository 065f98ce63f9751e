package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephlewis42/fesh/core/logger"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ResolvePath returns the configuration file to use. An explicit path wins,
// then $FESH_CONFIG_FILE, then the XDG config directory.
func ResolvePath(explicit string, env shell.Env) string {
	if explicit != "" {
		return explicit
	}

	if path := shell.Getenv(env, EnvConfigFile); path != "" {
		return path
	}

	configHome := shell.Getenv(env, EnvConfigHome)
	if configHome == "" {
		configHome = filepath.Join(shell.Getenv(env, shell.EnvHome), ".config")
	}
	return filepath.Join(configHome, AppName, ConfigurationName)
}

// Load loads the configuration from path. Files ending in .toml are read as
// TOML, everything else as YAML. Settings missing from the file keep their
// default values.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	configContents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	out := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(configContents, out)
	} else {
		err = yaml.UnmarshalStrict(configContents, out)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	return out, nil
}

func decodeTOML(data []byte, out *Configuration) error {
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadOrDefault is Load, except that a missing file yields the default
// configuration.
func LoadOrDefault(fsys afero.Fs, path string, log *logger.Logger) (*Configuration, error) {
	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("no config file found at %s, using default configuration", path)
		return Default(), nil
	}
	return cfg, err
}

// Initialize writes the default configuration to path. An existing file is
// never overwritten.
func Initialize(fsys afero.Fs, path string) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, defaultConfigData, 0644)
}
