package main

import (
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Run the calibration wizard",
	Long: `Runs the first-run calibration wizard: records your dominant hand and
samples the camera to assess lighting. Results are stored and reused on
later runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		return ensureCalibrated(st, true)
	},
}
