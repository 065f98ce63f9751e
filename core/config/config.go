package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/fesh/core/shell"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	AppName           = "fesh"
	ConfigurationName = "config.yaml"
	HistoryName       = "history"

	// EnvConfigFile overrides the configuration path.
	EnvConfigFile = "FESH_CONFIG_FILE"
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvDataHome   = "XDG_DATA_HOME"
)

const (
	EditModeEmacs = "emacs"
	EditModeVi    = "vi"
)

type Configuration struct {
	Prompt   Prompt            `json:"prompt" toml:"prompt"`
	Aliases  map[string]string `json:"aliases" toml:"aliases"`
	Readline Readline          `json:"readline" toml:"readline"`
	History  History           `json:"history" toml:"history"`
	Env      map[string]string `json:"env" toml:"env"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

type Prompt struct {
	Text         string `json:"text" toml:"text"`
	Color        string `json:"color" toml:"color" validate:"omitempty,oneof=black red green yellow blue magenta cyan white"`
	ShowCwd      bool   `json:"show_cwd" toml:"show_cwd"`
	ShowUsername bool   `json:"show_username" toml:"show_username"`
	ShowBranch   bool   `json:"show_branch" toml:"show_branch"`
}

type Readline struct {
	EditMode string `json:"edit_mode" toml:"edit_mode" validate:"required,oneof=emacs vi"`
}

// VimMode is true if the line editor should use vi bindings.
func (r Readline) VimMode() bool {
	return r.EditMode == EditModeVi
}

type History struct {
	Path string `json:"path" toml:"path"`
}

// HistoryPath returns where input history is kept. A leading "~" in the
// configured path is expanded.
func (c *Configuration) HistoryPath(env shell.Env) string {
	if c.History.Path != "" {
		return shell.ExpandTilde(c.History.Path, env)
	}

	if dataHome := shell.Getenv(env, EnvDataHome); dataHome != "" {
		return filepath.Join(dataHome, AppName, HistoryName)
	}
	return filepath.Join(shell.Getenv(env, shell.EnvHome), ".local", "share", AppName, HistoryName)
}

// YAML encodes the configuration in the format of the default file.
func (c *Configuration) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
