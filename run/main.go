package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"

	treevol "github.com/bikuz/carbonapi-sub001"
	"github.com/bikuz/carbonapi-sub001/server"
)

func main() {
	root := &cobra.Command{
		Use:          "treevol",
		Short:        "Standing-tree volume estimation from forest-inventory measurements",
		SilenceUsage: true,
	}
	root.AddCommand(processCmd(), plotCmd(), serveCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadModel(cfgfp string) (*treevol.Parameter, treevol.BreakPolicy, error) {
	if cfgfp == "" {
		return treevol.DefaultParameter(), treevol.DefaultBreakPolicy(), nil
	}
	return treevol.LoadConfig(cfgfp)
}

func processCmd() *cobra.Command {
	var infp, outfp, cfgfp, curve string
	var concurrent bool
	var curveA, curveB float64
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Compute broken-top volume ratios for an inventory table",
		RunE: func(cmd *cobra.Command, args []string) error {
			tt := mmio.NewTimer()
			par, pol, err := loadModel(cfgfp)
			if err != nil {
				return err
			}
			ds, err := treevol.ReadDataset(infp)
			if err != nil {
				return err
			}
			if curve != "" {
				n, err := ds.FillPredictedHeights(treevol.HeightModel{Kind: curve, A: curveA, B: curveB})
				if err != nil {
					return err
				}
				fmt.Printf(" %d predicted heights filled (%s curve)\n", n, curve)
			}

			var s *treevol.Summary
			if concurrent {
				s, err = ds.Evaluate(par, pol)
			} else {
				s, err = ds.EvaluateSerial(par, pol, true)
			}
			if err != nil {
				return err
			}
			if err := ds.WriteCSV(outfp); err != nil {
				return err
			}
			s.Print()
			tt.Lap(fmt.Sprintf("processing complete, results saved to %s. n processes: %v", outfp, runtime.GOMAXPROCS(0)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&infp, "in", "i", "", "input inventory CSV")
	cmd.Flags().StringVarP(&outfp, "out", "o", "", "output CSV")
	cmd.Flags().StringVar(&cfgfp, "config", "", "optional YAML model configuration")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "fan records out across processors")
	cmd.Flags().StringVar(&curve, "fill-heights", "", "height-diameter curve for rows missing height_p (curtis, naslund, michailoff)")
	cmd.Flags().Float64Var(&curveA, "curve-a", 0, "height curve coefficient a")
	cmd.Flags().Float64Var(&curveB, "curve-b", 0, "height curve coefficient b")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func plotCmd() *cobra.Command {
	var outfp, cfgfp string
	var d13, ht float64
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the taper curve of a single tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ht <= 1.3 {
				return fmt.Errorf("height must exceed breast height (1.3m)")
			}
			par, _, err := loadModel(cfgfp)
			if err != nil {
				return err
			}
			par.PlotTaper(outfp, d13, ht)
			fmt.Printf(" taper profile written to %s\n", outfp)
			return nil
		},
	}
	cmd.Flags().Float64Var(&d13, "d13", 25.4, "diameter at breast height (cm)")
	cmd.Flags().Float64Var(&ht, "height", 20., "total tree height (m)")
	cmd.Flags().StringVarP(&outfp, "out", "o", "taper.png", "output PNG")
	cmd.Flags().StringVar(&cfgfp, "config", "", "optional YAML model configuration")
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, cfgfp string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the taper-model computations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			par, pol, err := loadModel(cfgfp)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			log.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, server.New(par, pol, log))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&cfgfp, "config", "", "optional YAML model configuration")
	return cmd
}
