package cmd

import (
	"fmt"

	"github.com/josephlewis42/fesh/core"
	"github.com/josephlewis42/fesh/core/config"
	"github.com/josephlewis42/fesh/core/engine"
	"github.com/josephlewis42/fesh/core/input"
	"github.com/josephlewis42/fesh/core/logger"
	"github.com/josephlewis42/fesh/core/prompt"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	debug       bool
	commandLine string
)

func configPath() string {
	return config.ResolvePath(cfgPath, shell.OSEnv{})
}

func loadConfig(log *logger.Logger) (*config.Configuration, error) {
	return config.LoadOrDefault(afero.NewOsFs(), configPath(), log)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fesh",
	Short: "A small interactive shell",
	Long: `fesh reads lines, splits them on whitespace into commands joined by
"|", ">" and ">>" and runs them as a chain of processes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		log := logger.New(cmd.ErrOrStderr(), logger.NewDiagnostics(debug))
		cfg, err := loadConfig(log)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("command") {
			return runCommandLine(cmd, cfg, log)
		}
		return runInteractive(cfg, log)
	},
}

// runCommandLine executes the -c line and returns.
func runCommandLine(cmd *cobra.Command, cfg *config.Configuration, log *logger.Logger) error {
	eng := engine.New(cfg.Aliases, log, engine.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	sh := core.NewShell(cfg, nil, core.StaticPrompt(""), eng, log)
	if err := sh.Init(); err != nil {
		return err
	}

	sh.RunLine(commandLine)
	return nil
}

func runInteractive(cfg *config.Configuration, log *logger.Logger) error {
	fs := afero.NewOsFs()
	env := shell.OSEnv{}

	reader, err := input.New(cfg, fs, env, log)
	if err != nil {
		return err
	}
	defer reader.Close()

	eng := engine.New(cfg.Aliases, log, engine.WithHistory(reader))
	sh := core.NewShell(cfg, reader, prompt.New(cfg.Prompt, fs, env), eng, log)
	if err := sh.Init(); err != nil {
		return err
	}

	if status := sh.Run(); status != 0 {
		return fmt.Errorf("shell exited with status %d", status)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $FESH_CONFIG_FILE or $XDG_CONFIG_HOME/fesh/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "start with diagnostic output enabled")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run the line and exit")
}
