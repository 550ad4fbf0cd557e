package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"avsketch/internal/audio"
	"avsketch/internal/desktop"
	"avsketch/internal/sketch"
	"avsketch/internal/visual"
)

// DirEnv supplies the default stem directory.
const DirEnv = "AVSKETCH_DIR"

const audioInitTimeout = 5 * time.Second

type options struct {
	dir        string
	tracks     map[string]string
	width      int
	height     int
	fullscreen bool
	bins       int
	persistent bool
	frames     int
	verbose    bool
}

var (
	opts    = options{tracks: make(map[string]string)}
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "avsketch",
	Short: "Audio-reactive sine-wave and waveform sketch",
	Long: `avsketch plays the music, vocals, bass and drums stems of a song together and
draws a rotating sine-wave mesh driven by the vocals and three circular traces of the
bass waveform, over a background that strobes red with the drums.

Click to play or pause. Left/Right change the mesh resolution, Up/Down rotate it,
Space hides the circles, Escape quits.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDir := os.Getenv(DirEnv)
	if defaultDir == "" {
		defaultDir = "."
	}

	f := rootCmd.Flags()
	f.StringVarP(&opts.dir, "dir", "d", defaultDir, "directory holding the \"allmyfriends [<stem>].mp3\" files (env "+DirEnv+")")
	for _, name := range audio.Names {
		f.String(name, "", "override the "+name+" track path")
	}
	f.IntVar(&opts.width, "width", sketch.WindowWidth, "window width")
	f.IntVar(&opts.height, "height", sketch.WindowHeight, "window height")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "fill the primary monitor")
	f.IntVar(&opts.bins, "bins", audio.DefaultBins, "analyzer frequency bins")
	f.BoolVar(&opts.persistent, "persistent-circles", false, "keep the space toggle across frames")
	f.IntVar(&opts.frames, "frames", 0, "render N frames headless with silent channels and print a summary")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.SetVersionTemplate("avsketch version {{.Version}}\n")
	rootCmd.Version = version
}

func run(cmd *cobra.Command, args []string) error {
	for _, name := range audio.Names {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			opts.tracks[name] = v
		}
	}
	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.frames > 0 {
		app := sketch.NewFromChannels(cfg, log, audio.SilentSet())
		printStats(cmd.OutOrStdout(), app.DryRun(opts.frames, visual.Input{}))
		return nil
	}

	if err := checkTracks(cfg.Tracks); err != nil {
		return err
	}

	set, err := openChannels(ctx, cfg, cmd.ErrOrStderr(), log)
	if err != nil {
		return err
	}
	defer set.Close()

	app := sketch.NewFromChannels(cfg, log, set)
	log.Info("ready, click to play", "dir", opts.dir)
	return desktop.Run(ctx, cfg, app, log)
}

func buildConfig(o options) (sketch.Config, error) {
	if o.width <= 0 || o.height <= 0 {
		return sketch.Config{}, fmt.Errorf("invalid window size %dx%d", o.width, o.height)
	}
	if o.bins <= 0 || o.bins*2 > audio.TapSize {
		return sketch.Config{}, fmt.Errorf("bins must be in [1, %d], got %d", audio.TapSize/2, o.bins)
	}
	cfg := sketch.DefaultConfig(o.dir)
	for name, path := range o.tracks {
		cfg.Tracks[name] = path
	}
	cfg.Width = o.width
	cfg.Height = o.height
	cfg.Fullscreen = o.fullscreen
	cfg.Bins = o.bins
	cfg.PersistentCircles = o.persistent
	return cfg, nil
}

func checkTracks(tracks map[string]string) error {
	for _, name := range audio.Names {
		path := tracks[name]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s track: %w", name, err)
		}
	}
	return nil
}

// openChannels loads the stems. A missing audio device degrades to silent
// channels so the visuals still run.
func openChannels(ctx context.Context, cfg sketch.Config, progress io.Writer, log *slog.Logger) (*audio.ChannelSet, error) {
	initCtx, cancel := context.WithTimeout(ctx, audioInitTimeout)
	defer cancel()

	sys, err := audio.NewSystem(initCtx, log, progress)
	if err != nil {
		log.Warn("audio init failed (continuing without sound)", "err", err)
		return audio.SilentSet(), nil
	}
	set, err := sys.Open(cfg.Tracks)
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	return set, nil
}

func printStats(w io.Writer, stats []sketch.FrameStats) {
	for _, st := range stats {
		fmt.Fprintf(w, "frame %d: background=#%02x%02x%02x stroke=#%02x%02x%02x closed=%d open=%d vertices=%d\n",
			st.Index,
			st.Background.R, st.Background.G, st.Background.B,
			st.Stroke.R, st.Stroke.G, st.Stroke.B,
			st.Closed, st.Open, st.Vertices)
	}
}
