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
	"context"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-ezdiff/internal/config"
	"github.com/ajroetker/go-ezdiff/internal/functions"
)

type evalOptions struct {
	*options
	points    []float64
	precision string
	jobs      int
}

// evalTask is one function at one point.
type evalTask struct {
	fn        functions.Function
	x         float64
	precision functions.Precision
}

func newEvalCommand(opts *options) *cobra.Command {
	o := &evalOptions{options: opts}
	cmd := &cobra.Command{
		Use:   "eval [NAME...]",
		Short: "Evaluate functions and their derivatives",
		Long: `Evaluate registered single-variable functions and their derivatives at
the points given by --at. With no names every function is evaluated.
With --config the evaluations are read from the batch file instead.`,
		Example: `  ezdiff eval cos_x2 --at 0.5,1,2
  ezdiff eval --at 1 --precision f32 -o yaml
  ezdiff eval --config batch.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, o, args)
		},
	}
	cmd.Flags().Float64SliceVar(&o.points, "at", nil, "points to evaluate at")
	cmd.Flags().StringVarP(&o.precision, "precision", "p", "f64", "element type: f32 or f64")
	cmd.Flags().IntVarP(&o.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum concurrent evaluations")
	return cmd
}

func runEval(cmd *cobra.Command, o *evalOptions, args []string) error {
	tasks, output, err := o.tasks(args)
	if err != nil {
		return err
	}
	results, err := evaluate(cmd.Context(), tasks, o.jobs)
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), output, o.lang, results)
}

// tasks expands the arguments or the config file into evaluations and
// returns the output format to use.
func (o *evalOptions) tasks(args []string) ([]evalTask, string, error) {
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, "", err
		}
		klog.V(1).InfoS("Loaded config", "path", o.configPath, "evals", len(cfg.Evals))
		var tasks []evalTask
		for _, e := range cfg.Evals {
			p := cfg.PrecisionFor(e)
			for _, name := range e.Functions {
				fn, _ := functions.Lookup(name)
				for _, x := range e.Points {
					tasks = append(tasks, evalTask{fn: fn, x: x, precision: p})
				}
			}
		}
		return tasks, lo.Ternary(cfg.Output != "", cfg.Output, o.output), nil
	}

	if len(o.points) == 0 {
		return nil, "", fmt.Errorf("eval: --at is required without --config")
	}
	p, err := functions.ParsePrecision(o.precision)
	if err != nil {
		return nil, "", fmt.Errorf("eval: %w", err)
	}
	fns := functions.All()
	if len(args) > 0 {
		fns = make([]functions.Function, 0, len(args))
		for _, name := range lo.Uniq(args) {
			fn, err := functions.Lookup(name)
			if err != nil {
				return nil, "", fmt.Errorf("eval: %w", err)
			}
			fns = append(fns, fn)
		}
	}
	var tasks []evalTask
	for _, fn := range fns {
		for _, x := range o.points {
			tasks = append(tasks, evalTask{fn: fn, x: x, precision: p})
		}
	}
	return tasks, o.output, nil
}

// evaluate runs tasks on at most jobs goroutines. Results keep task order.
func evaluate(ctx context.Context, tasks []evalTask, jobs int) ([]functions.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]functions.Result, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = task.fn.Eval(task.x, task.precision)
			klog.V(2).InfoS("Evaluated", "function", task.fn.Name, "x", task.x,
				"precision", task.precision, "value", results[i].Value, "derivative", results[i].Derivative)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	return results, nil
}
