package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"propellus-site/internal/carousel"

	"github.com/spf13/cobra"
)

func newCarouselCmd() *cobra.Command {
	var (
		slides     int
		slideWidth float64
		viewport   float64
		speed      float64
		interval   time.Duration
		duration   time.Duration
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Simulate the carousel loop and print wraparounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loop := carousel.NewLoop(slides, slideWidth, viewport, speed)
			if !loop.Active() {
				fmt.Fprintln(cmd.OutOrStdout(), "carousel inactive: no slides or no viewport")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "half width %.0f, speed %.0f\n", loop.HalfWidth(), loop.Speed())

			frames, wraps := 0, 0
			loop.OnFrame(func(f carousel.Frame) {
				frames++
				if f.Wrapped {
					wraps++
					fmt.Fprintf(out, "%8s  wrap #%d\n", f.At.Round(time.Millisecond), wraps)
				} else if verbose {
					fmt.Fprintf(out, "%8s  offset %.2f\n", f.At.Round(time.Millisecond), f.Offset)
				}
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()
			err := loop.Run(ctx, carousel.NewTicker(interval))
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			fmt.Fprintf(out, "%d frames, %d wraps, final offset %.2f\n", frames, wraps, loop.State().Offset)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&slides, "slides", 4, "number of distinct slides")
	f.Float64Var(&slideWidth, "slide-width", 300, "width of one slide")
	f.Float64Var(&viewport, "viewport", 1280, "viewport width (0 = detached)")
	f.Float64Var(&speed, "speed", carousel.DefaultSpeed, "distance per 60 frame intervals")
	f.DurationVar(&interval, "interval", 20*time.Millisecond, "frame interval")
	f.DurationVar(&duration, "duration", 5*time.Second, "simulation length")
	f.BoolVar(&verbose, "verbose", false, "print every frame")
	return cmd
}
