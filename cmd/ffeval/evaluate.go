package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarat-asymmetrica/ffcore/internal/config"
	"github.com/sarat-asymmetrica/ffcore/internal/evaluator"
	"github.com/sarat-asymmetrica/ffcore/internal/ffcore"
	"github.com/sarat-asymmetrica/ffcore/internal/logging"
	"github.com/sarat-asymmetrica/ffcore/internal/topology"
	"github.com/sarat-asymmetrica/ffcore/internal/units"
)

func newEvaluateCommand() *cobra.Command {
	var configPath, topologyPath, coordsPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a force field energy decomposition over one or more frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(configPath, topologyPath, coordsPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file (optional)")
	cmd.Flags().StringVar(&topologyPath, "topology", "", "path to the topology/parameters JSON fixture")
	cmd.Flags().StringVar(&coordsPath, "coords", "", "path to the frames JSON fixture")
	_ = cmd.MarkFlagRequired("topology")
	_ = cmd.MarkFlagRequired("coords")

	return cmd
}

func runEvaluate(configPath, topologyPath, coordsPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	topo, params, err := readSystemFixture(topologyPath)
	if err != nil {
		return fmt.Errorf("ffeval: reading topology fixture: %w", err)
	}
	frames, err := readFramesFixture(coordsPath)
	if err != nil {
		return fmt.Errorf("ffeval: reading frames fixture: %w", err)
	}

	ix, err := topology.NewIndex(topo, params, logger)
	if err != nil {
		return fmt.Errorf("ffeval: indexing topology: %w", err)
	}

	opts := ffcore.Options{
		Cutoff:            cfg.Evaluation.Cutoff,
		RFA:               cfg.Evaluation.RFA,
		SolventDielectric: cfg.Evaluation.SolventDielectric,
	}
	ev, err := evaluator.New(ix, topo.Charges, opts, units.Coulomb, cfg.Evaluation.Workers)
	if err != nil {
		return fmt.Errorf("ffeval: constructing evaluator: %w", err)
	}

	ctx := context.Background()
	type frameOutput struct {
		Frame    int                         `json:"frame"`
		Energies evaluator.FormattedEnergies `json:"energies"`
	}
	var output []frameOutput
	for i := range frames {
		res, err := ev.Evaluate(ctx, &frames[i])
		if err != nil {
			return fmt.Errorf("ffeval: evaluating frame %d: %w", i, err)
		}
		output = append(output, frameOutput{Frame: i, Energies: evaluator.FormatEnergies(res.Energy)})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.LoadDefault()
	}
	return config.Load(configPath)
}
