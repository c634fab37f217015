package commands

import (
	"cube-netter/internal/pipeline"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// Options holds the stitch command's flag values.
type Options struct {
	InputPrefix string
	Extension   string
	OutputPath  string
}

var stitchOpts Options

// pipelineStages mirrors the coordinator's stage sequence, for progress
// display only.
const pipelineStages = 6

var stitchCmd = &cobra.Command{
	Use:   "stitch",
	Short: "Stitch five cube photographs into an unfolded net image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStitch(stitchOpts)
	},
}

func init() {
	stitchCmd.Flags().StringVarP(&stitchOpts.InputPrefix, "input", "i", "", "Photograph path prefix; photographs are <prefix>1.<ext> through <prefix>5.<ext>")
	stitchCmd.Flags().StringVarP(&stitchOpts.Extension, "ext", "e", "PNG", "Photograph file extension")
	stitchCmd.Flags().StringVarP(&stitchOpts.OutputPath, "output", "o", "result.png", "Path for the composed net image")

	stitchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(stitchCmd)
}

func runStitch(opts Options) error {
	coordinator := pipeline.NewCoordinator(cfg, log)

	bar := progressbar.NewOptions(pipelineStages,
		progressbar.OptionSetDescription("stitching"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	err := coordinator.Run(pipeline.RunOptions{
		Prefix: opts.InputPrefix,
		Ext:    opts.Extension,
		Output: opts.OutputPath,
		OnStage: func(stage string) {
			bar.Describe(stage)
			bar.Add(1)
		},
	})
	bar.Finish()

	return err
}
