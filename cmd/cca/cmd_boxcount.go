package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newBoxCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxcount",
		Short: "Aggregate, then print the box counts and dimension estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			res, err := runOnce(cmd.Context(), cfg.Engine(), cfg.Options(), log, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput(cmd) {
				payload := map[string]any{"box_counts": res.BoxCounts}
				if res.HasDimension {
					payload["dimension"] = res.Dimension
				}
				return json.NewEncoder(out).Encode(payload)
			}
			for _, s := range res.BoxCounts.Sizes() {
				fmt.Fprintf(out, "%d %d\n", s, res.BoxCounts[s])
			}
			if res.HasDimension {
				fmt.Fprintf(out, "dimension %.4f\n", res.Dimension)
			}
			return nil
		},
	}
	addLatticeFlags(cmd)
	return cmd
}
