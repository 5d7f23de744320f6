package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"moodpet/internal/config"
	"moodpet/internal/pet"
	"moodpet/internal/scene"
	"moodpet/internal/ui"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moodpet",
		Short:         "A virtual pet that lives in your terminal",
		Long:          "moodpet keeps a small creature whose mood follows how you treat it. Pet it, make it jump or dance, and change its color.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to config file (overrides MOODPET_CONFIG env var)")
	root.Flags().String("color", "", "Initial pet color (overrides config and MOODPET_COLOR)")

	root.AddCommand(newSceneCmd())
	root.AddCommand(versionCmd)
	return root
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

// resolveConfigPath returns the config path using --config flag (highest
// priority), then MOODPET_CONFIG env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if c, _ := cmd.Flags().GetString("color"); c != "" {
		cfg.Pet.Color = c
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	engineCfg := cfg.PetEngine()
	engineCfg.Logger = logger
	e := pet.New(cfg.Pet.Color, engineCfg)
	defer e.Dispose()

	m := ui.NewModel(e, ui.Options{
		FrameInterval: cfg.UI.FrameInterval,
		Palette:       cfg.UI.Palette,
		Stars:         scene.NewStarField(cfg.UI.StarCount, pet.NewRand()),
		Logger:        logger,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running pet: %w", err)
	}
	return nil
}
