package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytgrab/internal/util/deps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (yt-dlp/youtube-dl, ffmpeg)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extractor, err := deps.FindExtractor(extractorPath(cmd))
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extractor: %s\n", extractor)
			if ff, ferr := deps.FindFFmpeg(); ferr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:    %s\n", ff)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FFmpeg:    not found (merge, audio extraction and subtitle embedding disabled)\n")
			}
			return nil
		},
	}
}
