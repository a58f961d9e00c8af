// SPDX-License-Identifier: EPL-2.0

// Package commands implements the audloop command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audloop"
	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/internal/config"
	"github.com/ik5/audloop/internal/prompt"
	"github.com/ik5/audloop/internal/timing"
)

// flags holds the raw command-line values before they are merged with the
// config file.
type flags struct {
	cfgFile   string
	automatic bool
	verbose   bool
	cfg       config.Config
}

// Execute runs the root command against the process arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	f := &flags{cfg: *config.Defaults()}

	cmd := &cobra.Command{
		Use:   "audloop [flags] INPUT [OUTPUT]",
		Short: "Extend looping game music into a finite track",
		Long: `audloop plays the loop of a track a number of times and fades it out.

Loop points are read from the input: LoopStart/LoopEnd comments in Ogg
Vorbis, the sampler chunk in WAV. Files without loop points are re-encoded
unchanged. Multi-channel Ogg files hold several stereo layers; pick one with
--layer.

Defaults can be kept in $XDG_CONFIG_HOME/audloop/config.yaml; flags given on
the command line win.

Examples:
  # Two loops and a ten second fade, written next to the input
  audloop -a battle.ogg

  # Second layer, three loops, five second fade, 44.1 kHz WAV
  audloop -l 2 -L 3 -f 5 --rate 44100 battle.ogg battle-layer2.wav
`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/audloop/config.yaml)")
	fl.BoolVarP(&f.automatic, "automatic-name", "a", false, "derive OUTPUT from INPUT")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log phase timings")
	fl.BoolVarP(&f.cfg.NoProcess, "no-process", "n", f.cfg.NoProcess, "re-encode without looping")
	fl.BoolVarP(&f.cfg.Yes, "yes", "y", f.cfg.Yes, "overwrite OUTPUT without asking")
	fl.IntVarP(&f.cfg.Layer, "layer", "l", f.cfg.Layer, "stereo layer to extract, starting at 1")
	fl.Float64VarP(&f.cfg.Fade, "fade", "f", f.cfg.Fade, "fade-out length in seconds")
	fl.IntVarP(&f.cfg.Loops, "loops", "L", f.cfg.Loops, "times to play the loop")
	fl.IntVar(&f.cfg.Rate, "rate", f.cfg.Rate, "output sample rate in Hz (0 keeps the input rate)")
	fl.StringVar(&f.cfg.Format, "format", f.cfg.Format, "output format, mp3 or wav (default from OUTPUT, else mp3)")
	fl.IntVar(&f.cfg.Preset, "preset", f.cfg.Preset, "LAME VBR preset, 0 (best) to 9")

	return cmd
}

func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

// loadConfig reads the config file and lays the flags the user set on top.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	path, required := f.cfgFile, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Debug("no config directory", slog.Any("err", err))
			p = ""
		}
		path, required = p, false
	}

	cfg := config.Defaults()
	if path != "" {
		var err error
		if cfg, err = config.Load(path, required); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("layer") {
		cfg.Layer = f.cfg.Layer
	}
	if fl.Changed("fade") {
		cfg.Fade = f.cfg.Fade
	}
	if fl.Changed("loops") {
		cfg.Loops = f.cfg.Loops
	}
	if fl.Changed("rate") {
		cfg.Rate = f.cfg.Rate
	}
	if fl.Changed("format") {
		cfg.Format = f.cfg.Format
	}
	if fl.Changed("preset") {
		cfg.Preset = f.cfg.Preset
	}
	if fl.Changed("yes") {
		cfg.Yes = f.cfg.Yes
	}
	if fl.Changed("no-process") {
		cfg.NoProcess = f.cfg.NoProcess
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	out := cmd.OutOrStdout()
	log := setupLogging(cmd.ErrOrStderr(), f.verbose)
	total := timing.Start(log, "program")

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	input := args[0]
	output, format, err := outputPath(args, f.automatic, cfg.Format)
	if err != nil {
		return err
	}

	reg := newRegistry(cfg.Preset, log)
	enc, err := reg.Encoder(format)
	if err != nil {
		return fmt.Errorf("%w (can write %v)", err, reg.EncoderFormats())
	}
	inFormat, err := audio.FormatFromPath(input)
	if err != nil {
		return err
	}
	dec, err := reg.Decoder(inFormat)
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("could not open input file: %w", err)
	}
	defer in.Close()

	found, err := exists(output)
	if err != nil {
		return err
	}
	if found && !cfg.Yes {
		ok, err := prompt.Confirm(cmd.InOrStdin(), out, "Output file exists. Overwrite?", true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Okay. Bye!")
			return nil
		}
	}

	fmt.Fprintln(out, infoStyle.Render(fmt.Sprintf("Encoding %s...", filepath.Base(input))))

	opts := audloop.Options{
		Process:     !cfg.NoProcess,
		FadeSeconds: cfg.Fade,
		Loops:       cfg.Loops,
		SampleRate:  cfg.Rate,
		Logger:      log,
	}

	var res *audloop.Result
	err = writeAtomic(output, func(w io.Writer) error {
		var err error
		res, err = audloop.Convert(cmd.Context(), in, w, dec, enc, cfg.Layer-1, opts)
		return err
	})
	if err != nil {
		return err
	}

	if !res.Processed {
		log.Info("no loop applied", slog.String("input", input))
	}

	elapsed := total.Stop()
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Encoded %s in %s", filepath.Base(output), timing.Seconds(elapsed))))
	return nil
}
