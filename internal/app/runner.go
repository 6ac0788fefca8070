package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Request carries the parsed command-line values.
type Request struct {
	OutputFilepath string
	TextToOverlay  string
}

type ImageFetcher interface {
	Fetch(ctx context.Context, text string) ([]byte, error)
}

type ImageComposer interface {
	ComposeAndSave(data []byte, text, outputPath string) error
}

// Runner sequences the download and compose stages and reports the outcome
// on the console.
type Runner struct {
	fetcher  ImageFetcher
	composer ImageComposer
	out      io.Writer
	log      *zap.Logger
}

func NewRunner(fetcher ImageFetcher, composer ImageComposer, out io.Writer, log *zap.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{fetcher: fetcher, composer: composer, out: out, log: log}
}

// Execute runs both stages and returns the first error unchanged.
func (r *Runner) Execute(ctx context.Context, req Request) error {
	data, err := r.fetcher.Fetch(ctx, req.TextToOverlay)
	if err != nil {
		return err
	}
	return r.composer.ComposeAndSave(data, req.TextToOverlay, req.OutputFilepath)
}

// Run is Execute with every error reported as a single console line and
// swallowed. A partially written output file is left in place.
func (r *Runner) Run(ctx context.Context, req Request) {
	if err := r.Execute(ctx, req); err != nil {
		r.log.Error("download failed",
			zap.String("output", req.OutputFilepath),
			zap.Error(err))
		fmt.Fprintf(r.out, "An error occurred: %s\n", err)
		return
	}
	r.log.Info("image saved", zap.String("output", req.OutputFilepath))
	fmt.Fprintf(r.out, "Image saved to: %s\n", req.OutputFilepath)
}
