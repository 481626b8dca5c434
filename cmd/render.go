package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/triplinehq/tripline/plan"
	"github.com/triplinehq/tripline/view"
)

var (
	tripFile  string
	serveHTML bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a trip file to a standalone HTML timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := plan.LoadFile(tripFile)
		if err != nil {
			return err
		}

		logger.Debug().
			Str("trip_file", tripFile).
			Int("entry_count", f.Entries.Len()).
			Msg("render flags")

		outputDir := viper.GetString("output_dir")
		outputFile, err := view.Trip(logger, &f.Trip, f.Entries, view.WithOutputDir(outputDir))
		if err != nil {
			return fmt.Errorf("failed to render trip: %w", err)
		}

		if serveHTML {
			return view.Serve(viper.GetString("listen_addr"), outputDir, "/"+f.Trip.ID+".html")
		}

		logger.Info().Str("output_file", outputFile).Msg("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&tripFile, "file", "trip.yaml", "Trip YAML file to render")
	renderCmd.Flags().BoolVar(&serveHTML, "serve", false, "Serve the rendered output and open a browser")
}
