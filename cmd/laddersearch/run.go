package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eyal-weiss/laddersearch/anytimebeauty"
	"github.com/eyal-weiss/laddersearch/beauty"
	"github.com/eyal-weiss/laddersearch/gridtask"
	"github.com/eyal-weiss/laddersearch/iteratedsync"
	"github.com/eyal-weiss/laddersearch/planio"
	"github.com/eyal-weiss/laddersearch/searchconfig"
	"github.com/eyal-weiss/laddersearch/searchengine"
	"github.com/eyal-weiss/laddersearch/synchronic"
)

var (
	runEngine  string
	gridWidth  int
	gridHeight int
	cellWeight int
	plansDir   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search engine against a generated grid task",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runEngine, "engine", "beauty", "engine to run: beauty|synchronic|iterated-sync|anytime-beauty")
	runCmd.Flags().IntVar(&gridWidth, "width", 5, "grid width")
	runCmd.Flags().IntVar(&gridHeight, "height", 5, "grid height")
	runCmd.Flags().IntVar(&cellWeight, "weight", 10, "uniform per-cell traversal cost")
	runCmd.Flags().StringVar(&plansDir, "plans-dir", "plans", "directory Run saves the found plan into")
}

func buildGrid() (*gridtask.Grid, error) {
	weights := make([][]int, gridHeight)
	for y := range weights {
		row := make([]int, gridWidth)
		for x := range row {
			row[x] = cellWeight
		}
		weights[y] = row
	}
	return gridtask.New(weights, gridtask.Cell{X: 0, Y: 0}, gridtask.Cell{X: gridWidth - 1, Y: gridHeight - 1})
}

func loadConfig() (searchconfig.Config, error) {
	if cfgFile == "" {
		return searchconfig.Config{}, nil
	}
	return searchconfig.Load(cfgFile)
}

func runRun(cmd *cobra.Command, args []string) error {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	grid, err := buildGrid()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	manager := planio.NewManager(plansDir)

	switch runEngine {
	case "beauty":
		res, err := beauty.Run(grid, cfg.BeautyOptions()...)
		if err != nil {
			return err
		}
		return reportAndSave(manager, res.Status, res.Plan, res.RefinedCost)
	case "synchronic":
		res, err := synchronic.Run(grid, cfg.SynchronicOptions()...)
		if err != nil {
			return err
		}
		return reportAndSave(manager, res.Status, res.Plan, res.Cost)
	case "iterated-sync":
		res, err := iteratedsync.Run(grid, cfg.IteratedSyncOptions()...)
		if err != nil {
			return err
		}
		return reportAndSave(manager, res.Status, res.Plan, 0)
	case "anytime-beauty":
		res, err := anytimebeauty.Run(grid, cfg.AnytimeBeautyOptions()...)
		if err != nil {
			return err
		}
		return reportAndSave(manager, res.Status, res.Plan, res.Cost)
	default:
		return fmt.Errorf("unknown engine %q", runEngine)
	}
}

func reportAndSave(manager *planio.Manager, status searchengine.Status, plan searchengine.Plan, cost int) error {
	fmt.Printf("status: %s\n", status)
	fmt.Printf("plan: %v\n", plan)
	fmt.Printf("cost: %d\n", cost)

	if status != searchengine.Solved {
		return nil
	}
	rec, err := manager.Save(plan, cost, status)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	fmt.Printf("saved: run %s (sequence %d)\n", rec.RunID, rec.Sequence)
	return nil
}
