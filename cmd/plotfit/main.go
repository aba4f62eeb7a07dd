package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spektr-org/plotfit/engine"
	"github.com/spektr-org/plotfit/internal/logging"
	"github.com/spektr-org/plotfit/render"
	"github.com/spektr-org/plotfit/server"
)

// ============================================================================
// PLOTFIT CLI — Fit a line (and a spline) through comma-separated data
// ============================================================================

const version = "0.1.0"

type globalFlags struct {
	logLevel string
	dev      bool
}

type plotFlags struct {
	title string
	x     string
	y     string
	kind  string
	out   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, engine.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "plotfit",
		Short: "Linear regression and spline smoothing for paired numeric data",
		Long: `plotfit parses comma-separated X and Y values, fits an ordinary
least-squares line with R², adds a cubic smoothing curve when there are
more than three points, and renders the result as JSON, CSV or an image.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.dev, "dev", false, "Human-readable console logs")

	root.AddCommand(newFitCmd(g), newRenderCmd(g), newServeCmd(g), newVersionCmd())
	return root
}

func (g *globalFlags) logger() *zap.Logger {
	return logging.NewLogger(
		logging.LoggerWithLevel(g.logLevel),
		logging.LoggerWithDevelopment(g.dev),
		logging.LoggerWithOutput("stderr"),
	)
}

func addPlotFlags(cmd *cobra.Command, p *plotFlags) {
	cmd.Flags().StringVar(&p.title, "title", "", "Graph title")
	cmd.Flags().StringVar(&p.x, "x", "", `X values, comma-separated (e.g. "1, 2, 3, 4")`)
	cmd.Flags().StringVar(&p.y, "y", "", `Y values, comma-separated (e.g. "2, 4, 6, 8")`)
	cmd.Flags().StringVar(&p.kind, "kind", string(engine.KindScatter), "Chart type: Scatter, Line, Bar")
	cmd.Flags().StringVarP(&p.out, "out", "o", "", "Write output to file instead of stdout")
}

func (p *plotFlags) request() engine.PlotRequest {
	return engine.PlotRequest{Title: p.title, X: p.x, Y: p.y, Kind: p.kind}
}

// openOutput returns stdout or the named file; the caller must call close.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func newFitCmd(g *globalFlags) *cobra.Command {
	p := &plotFlags{}
	var format string
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a line and print the result",
		Example: `  plotfit fit --x "1,2,3,4" --y "2,4,6,8" --format text
  plotfit fit --x "1,2,3,4,5" --y "1,8,27,64,125" --format csv --out points.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			log := g.logger()
			defer func() { _ = log.Sync() }()

			result, err := engine.Execute(p.request(), engine.WithLogger(log))
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, p.out)
			if err != nil {
				return err
			}
			if err := writeResult(w, result, format); err != nil {
				_ = closeOut()
				return err
			}
			if p.out != "" {
				log.Info("📄 output written", zap.String("path", p.out), zap.String("format", format))
			}
			return closeOut()
		},
	}
	addPlotFlags(cmd, p)
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, pretty, text, csv")
	return cmd
}

func newRenderCmd(g *globalFlags) *cobra.Command {
	p := &plotFlags{}
	var image string
	var width, height int
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render the chart as PNG or SVG",
		Example: `  plotfit render --title "Sample" --x "1,2,3,4,5" --y "2,3,5,4,6" --kind Line --out chart.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(image)
			if err != nil {
				return err
			}
			log := g.logger()
			defer func() { _ = log.Sync() }()

			result, err := engine.Execute(p.request(), engine.WithLogger(log))
			if err != nil {
				return err
			}
			img, err := render.Bytes(result.ChartConfig, format, render.WithSize(width, height))
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, p.out)
			if err != nil {
				return err
			}
			if _, err := w.Write(img); err != nil {
				_ = closeOut()
				return fmt.Errorf("failed to write image: %w", err)
			}
			if p.out != "" {
				log.Info("🖼️ chart written", zap.String("path", p.out), zap.Int("bytes", len(img)))
			}
			return closeOut()
		},
	}
	addPlotFlags(cmd, p)
	cmd.Flags().StringVar(&image, "image", "png", "Image format: png, svg")
	cmd.Flags().IntVar(&width, "width", render.DefaultWidth, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultHeight, "Image height in pixels")
	return cmd
}

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plot form and JSON API over HTTP",
		Long: `Environment:
  PLOTFIT_ADDR, PLOTFIT_READ_TIMEOUT, PLOTFIT_WRITE_TIMEOUT,
  PLOTFIT_SHUTDOWN_TIMEOUT, PLOTFIT_MAX_BODY_BYTES,
  PLOTFIT_CHART_WIDTH, PLOTFIT_CHART_HEIGHT`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := server.LoadConfig()
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			log := g.logger()
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, log).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultConfig().Addr, "Listen address (overrides PLOTFIT_ADDR)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plotfit %s\n", version)
		},
	}
}
