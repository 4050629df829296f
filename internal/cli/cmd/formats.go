package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ytgrab/internal/engine/ytdlp"
	"ytgrab/internal/model"
	"ytgrab/internal/util"
	"ytgrab/internal/util/deps"
)

func newFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formats [urls...]",
		Short:         "List available streams and caption tracks without downloading",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var urls []string
			for _, raw := range args {
				if _, err := util.ValidateVideoURL(raw); err != nil {
					return &ExitError{Code: ExitInvalidInput, Err: err}
				}
				urls = append(urls, raw)
			}

			caps, err := deps.Probe(extractorPath(cmd))
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: err}
			}

			format, _ := cmd.Flags().GetString("format")
			req := model.DownloadRequest{
				URLs:     urls,
				Format:   format,
				Mode:     model.ModeCombined,
				Simulate: true,
			}
			return listFormats(cmd.Context(), os.Stdout, ytdlp.New(caps.ExtractorPath), req)
		},
	}
	cmd.Flags().StringP("format", "f", "", "Explicit format selector passed to the extractor")
	return cmd
}
