package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/youruser/catimage/internal/app"
)

const (
	appName        = "catimage"
	appDescription = "Application to download and save cat images"
)

// Handler receives the parsed invocation.
type Handler interface {
	Run(ctx context.Context, req app.Request)
}

// NewRootCmd builds the command line. Missing or malformed flags are
// rejected by cobra before h is called.
func NewRootCmd(h Handler) *cobra.Command {
	var req app.Request

	cmd := &cobra.Command{
		Use:   appName,
		Short: appDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h.Run(cmd.Context(), req)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.OutputFilepath, "outputFilepath", "o", "", "Path to the output file where the image will be saved")
	cmd.Flags().StringVarP(&req.TextToOverlay, "textToOverlay", "t", "", "Text to overlay on the image (optional)")
	_ = cmd.MarkFlagRequired("outputFilepath")

	return cmd
}
