package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"moodpet/internal/pet"
	"moodpet/internal/scene"
	"moodpet/internal/stage"
)

func newSceneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scene",
		Short: "Print the scene graph for a pet state",
		Long: `Build the scene for a single frame and print it as JSON, or draw it
with the terminal stage when --render is set. No engine is started.`,
		RunE: runScene,
	}

	c.Flags().String("color", pet.DefaultColor, "Body color")
	c.Flags().String("mood", "", "Mood (happy, excited, tired, sad, normal); derived from the stats when empty")
	c.Flags().Int("happiness", pet.InitialHappiness, "Happiness 0-100")
	c.Flags().Int("energy", pet.InitialEnergy, "Energy 0-100")
	c.Flags().Int("health", pet.InitialHealth, "Health 0-100")
	c.Flags().Float64("time", 0, "Seconds since mount")
	c.Flags().Int("stars", 0, "Number of background stars")
	c.Flags().Int64("seed", 1, "Star field seed")
	c.Flags().Bool("render", false, "Draw the frame instead of printing JSON")
	c.Flags().Int("width", 48, "Stage width in cells (with --render)")
	c.Flags().Int("height", 18, "Stage height in cells (with --render)")
	return c
}

func runScene(cmd *cobra.Command, args []string) error {
	color, _ := cmd.Flags().GetString("color")
	moodVal, _ := cmd.Flags().GetString("mood")
	happiness, _ := cmd.Flags().GetInt("happiness")
	energy, _ := cmd.Flags().GetInt("energy")
	health, _ := cmd.Flags().GetInt("health")
	t, _ := cmd.Flags().GetFloat64("time")
	starCount, _ := cmd.Flags().GetInt("stars")
	seed, _ := cmd.Flags().GetInt64("seed")
	render, _ := cmd.Flags().GetBool("render")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	stats := pet.Stats{Happiness: happiness, Energy: energy, Health: health}
	for _, stat := range []struct {
		name  string
		value int
	}{{"happiness", happiness}, {"energy", energy}, {"health", health}} {
		if stat.value < pet.MinStat || stat.value > pet.MaxStat {
			return fmt.Errorf("invalid %s %d: must be between %d and %d", stat.name, stat.value, pet.MinStat, pet.MaxStat)
		}
	}

	mood := pet.Classify(stats)
	if moodVal != "" {
		m, ok := pet.ParseMood(moodVal)
		if !ok {
			return fmt.Errorf("invalid mood %q", moodVal)
		}
		mood = m
	}
	if starCount < 0 {
		return fmt.Errorf("invalid star count %d", starCount)
	}

	sc := scene.Build(scene.Input{
		Color: color,
		Mood:  mood,
		Stats: stats,
		Time:  t,
		Stars: scene.NewStarField(starCount, rand.New(rand.NewSource(seed))),
	})

	out := cmd.OutOrStdout()
	if render {
		_, err := fmt.Fprintln(out, stage.Project(sc, width, height).String())
		return err
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
