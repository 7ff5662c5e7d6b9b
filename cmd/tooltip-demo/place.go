package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvx-apps/ToolTip/placement"
)

func placeCmd() *cobra.Command {
	var (
		anchor   string
		tip      string
		side     string
		viewport string
		offset   float64
		pad      float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a tooltip would be drawn",
		Example: `  tooltip-demo place --anchor 0,0,100,20 --tooltip 60x30 --side top
  {"side":"bottom","x":20,"y":28}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := parseRect(anchor)
			if err != nil {
				return fmt.Errorf("--anchor: %w", err)
			}
			tipSize, err := parseSize(tip)
			if err != nil {
				return fmt.Errorf("--tooltip: %w", err)
			}
			vp, err := parseSize(viewport)
			if err != nil {
				return fmt.Errorf("--viewport: %w", err)
			}
			s, ok := placement.ParseSide(side)
			if !ok {
				return fmt.Errorf("--side: %q is not one of top, bottom, left, right", side)
			}

			res := placement.Place(rect, tipSize, s, vp, offset, pad)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "Anchor rectangle as left,top,width,height")
	cmd.Flags().StringVar(&tip, "tooltip", "", "Tooltip size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&side, "side", string(placement.Top), "Preferred side (top, bottom, left, right)")
	cmd.Flags().StringVar(&viewport, "viewport", "1280x720", "Viewport size as WIDTHxHEIGHT")
	cmd.Flags().Float64Var(&offset, "offset", 8, "Gap between anchor and tooltip in pixels")
	cmd.Flags().Float64Var(&pad, "pad", 4, "Minimum distance from the viewport edges in pixels")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("tooltip")

	return cmd
}

func parseRect(s string) (placement.Rect, error) {
	vals, err := parseFloats(s, ",", 4)
	if err != nil {
		return placement.Rect{}, err
	}
	return placement.Rect{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func parseSize(s string) (placement.Size, error) {
	vals, err := parseFloats(strings.ToLower(s), "x", 2)
	if err != nil {
		return placement.Size{}, err
	}
	if vals[0] < 0 || vals[1] < 0 {
		return placement.Size{}, fmt.Errorf("size %q must not be negative", s)
	}
	return placement.Size{Width: vals[0], Height: vals[1]}, nil
}

func parseFloats(s, sep string, n int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values separated by %q, got %q", n, sep, s)
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		vals[i] = v
	}
	return vals, nil
}
