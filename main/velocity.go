package main

import (
	"fmt"

	"github.com/adammck/forceplate/motion"
	"github.com/spf13/cobra"
)

func velocityCmd() *cobra.Command {
	var path, name string
	var duration float64
	var useTimes bool

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Print the angular velocity at each keyframe of a rotation track",
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := motion.LoadClip(path)
			if err != nil {
				return err
			}

			track, ok := clip.Track(name)
			if !ok {
				return fmt.Errorf("no track %q in clip; have: %v", name, clip.TrackNames())
			}

			qs, err := track.Orientations()
			if err != nil {
				return err
			}

			if duration <= 0 {
				duration = clip.Duration
			}

			var vs []float64
			if useTimes && len(track.Times) == len(qs) {
				vs = motion.AngularVelocitiesAt(qs, track.Times)
			} else {
				vs = motion.AngularVelocities(qs, duration)
			}

			out := cmd.OutOrStdout()
			for i, v := range vs {
				fmt.Fprintf(out, "%d\t%s\t%.6f\n", i, qs[i], v)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "clip", "", "animation clip JSON")
	cmd.Flags().StringVar(&name, "track", "", "name of a quaternion track")
	cmd.Flags().Float64Var(&duration, "duration", 0, "clip duration in seconds (default: from the clip)")
	cmd.Flags().BoolVar(&useTimes, "times", false, "use keyframe times instead of even spacing")
	cmd.MarkFlagRequired("clip")
	cmd.MarkFlagRequired("track")
	return cmd
}
