package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adammck/forceplate"
	"github.com/adammck/forceplate/components/arrows"
	"github.com/adammck/forceplate/components/graph"
	"github.com/adammck/forceplate/config"
	"github.com/adammck/forceplate/motion"
	"github.com/adammck/forceplate/plates"
	"github.com/adammck/forceplate/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func playCmd() *cobra.Command {
	var path string
	c := config.Default()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay force plate data against an animation clip, without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				c = mergeFlags(cmd, c, loaded)
			}

			if err := c.Validate(); err != nil {
				return err
			}

			setLogLevel(debug || c.Debug)
			return play(cmd.Context(), c)
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "YAML config file")
	cmd.Flags().StringVar(&c.CSV, "csv", c.CSV, "force plate CSV export")
	cmd.Flags().StringVar(&c.Clip, "clip", c.Clip, "animation clip JSON")
	cmd.Flags().StringVar(&c.Track, "track", c.Track, "track to graph")
	cmd.Flags().IntVar(&c.FPS, "fps", c.FPS, "ticks per second")
	cmd.Flags().Float64Var(&c.Duration, "duration", c.Duration, "clip duration in seconds, if the clip has none")
	cmd.Flags().Float64Var(&c.TimeScale, "time-scale", c.TimeScale, "playback speed")
	cmd.Flags().Float64Var(&c.Start, "start", c.Start, "progress through the clip to start at, 0..1")
	return cmd
}

// mergeFlags returns the loaded config, with any flag which was set explicitly
// taking precedence.
func mergeFlags(cmd *cobra.Command, flags, loaded config.Config) config.Config {
	f := cmd.Flags()
	if f.Changed("csv") {
		loaded.CSV = flags.CSV
	}
	if f.Changed("clip") {
		loaded.Clip = flags.Clip
	}
	if f.Changed("track") {
		loaded.Track = flags.Track
	}
	if f.Changed("fps") {
		loaded.FPS = flags.FPS
	}
	if f.Changed("duration") {
		loaded.Duration = flags.Duration
	}
	if f.Changed("time-scale") {
		loaded.TimeScale = flags.TimeScale
	}
	if f.Changed("start") {
		loaded.Start = flags.Start
	}

	return loaded
}

func play(ctx context.Context, c config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load failures leave the replay empty rather than stopping it, so the
	// other half can still be checked.
	var series plates.Series
	if c.CSV != "" {
		s, err := plates.LoadFile(c.CSV)
		if err != nil {
			logrus.Errorf("error loading force plate data: %s", err)
		} else {
			series = s
		}
	}

	duration := c.Duration
	var clip *motion.Clip
	if c.Clip != "" {
		cl, err := motion.LoadClip(c.Clip)
		if err != nil {
			logrus.Errorf("error loading clip: %s", err)
		} else {
			clip = cl
			if cl.Duration > 0 {
				duration = cl.Duration
			}
		}
	}

	clock := forceplate.NewClock(duration, false).Seek(c.Start)
	clock.TimeScale = c.TimeScale
	p := forceplate.NewPlayer(clock)

	a := arrows.New(c.Layout, series)
	p.Add(a)

	if clip != nil && c.Track != "" {
		track, ok := clip.Track(c.Track)
		if ok {
			p.Add(graph.New(track, duration, c.Velocity))
		} else {
			logrus.Warnf("no track %q in clip", c.Track)
		}
	}

	err := p.Boot()
	if err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to stop the replay
	// cleanly.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := time.NewTicker(time.Second / time.Duration(c.FPS))
	defer t.Stop()

	steps := 1000
	bar := utils.NewProgressBar(steps)
	defer bar.Finish()

	final := p.Run(ctx, t.C, func(s forceplate.State) bool {
		bar.SetCurrent(int64(s.Progress * float64(steps)))
		return p.Clock.Done()
	})

	logrus.Infof("finished at %s, last frame=%d of %d", final, a.Index(), series.Len())
	return nil
}
