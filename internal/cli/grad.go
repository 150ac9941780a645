// Copyright 2026 go-ezdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-ezdiff/internal/config"
	"github.com/ajroetker/go-ezdiff/internal/functions"
)

type gradOptions struct {
	*options
	points []string
}

func newGradCommand(opts *options) *cobra.Command {
	o := &gradOptions{options: opts}
	cmd := &cobra.Command{
		Use:   "grad [NAME...]",
		Short: "Evaluate two-variable functions and their gradients",
		Long: `Evaluate registered two-variable functions f(x, y) and both partial
derivatives at every --at point. Each point is "x,y"; repeat --at for more.`,
		Example: `  ezdiff grad --at 1,2
  ezdiff grad hypot --at 3,4 --at 6,8 -o toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrad(cmd, o, args)
		},
	}
	cmd.Flags().StringArrayVar(&o.points, "at", nil, `point "x,y" to evaluate at (repeatable)`)
	return cmd
}

func runGrad(cmd *cobra.Command, o *gradOptions, args []string) error {
	var results []functions.GradientResult
	output := o.output
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		for _, g := range cfg.Gradients {
			for _, name := range g.Functions {
				fn, _ := functions.LookupGradient(name)
				for _, p := range g.Points {
					results = append(results, fn.Eval(p[0], p[1]))
				}
			}
		}
		if cfg.Output != "" {
			output = cfg.Output
		}
	} else {
		if len(o.points) == 0 {
			return fmt.Errorf("grad: --at is required without --config")
		}
		points, err := parsePoints(o.points)
		if err != nil {
			return fmt.Errorf("grad: %w", err)
		}
		fns := functions.AllGradients()
		if len(args) > 0 {
			fns = fns[:0]
			for _, name := range lo.Uniq(args) {
				fn, err := functions.LookupGradient(name)
				if err != nil {
					return fmt.Errorf("grad: %w", err)
				}
				fns = append(fns, fn)
			}
		}
		for _, fn := range fns {
			for _, p := range points {
				results = append(results, fn.Eval(p[0], p[1]))
			}
		}
	}
	for _, r := range results {
		klog.V(2).InfoS("Evaluated gradient", "function", r.Function, "x", r.X, "y", r.Y,
			"value", r.Value, "df_dx", r.DX, "df_dy", r.DY)
	}
	return writeGradients(cmd.OutOrStdout(), output, o.lang, results)
}

// parsePoints parses "x,y" pairs.
func parsePoints(raw []string) ([][2]float64, error) {
	points := make([][2]float64, 0, len(raw))
	for _, s := range raw {
		parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
			return strings.TrimSpace(p)
		})
		if len(parts) != 2 {
			return nil, fmt.Errorf("point %q: want x,y", s)
		}
		var p [2]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", s, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	return points, nil
}
