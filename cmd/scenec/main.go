// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenec compiles layered scene specifications into renderer
// scene descriptions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/base/logx"
	"cogentcore.org/scenec/colors/colormap"
	"cogentcore.org/scenec/compiler"
	"cogentcore.org/scenec/config"
	"cogentcore.org/scenec/export"
	"cogentcore.org/scenec/layer"
	"cogentcore.org/scenec/scene"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the command line options, which override the config file.
type flags struct {
	config string
	watch  bool
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	fl := &flags{cfg: config.New()}
	root := &cobra.Command{
		Use:          "scenec",
		Short:        "scenec compiles layered scene specifications into renderer scene descriptions",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "the TOML config file (default "+config.DefaultFile+" if it exists)")
	pf.BoolVar(&fl.cfg.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&fl.cfg.Verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&fl.cfg.Quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newCompileCmd(fl), newColormapsCmd(), newConfigCmd(fl))
	return root
}

// load returns the config file values overridden by the flags that
// were set on the command line.
func (fl *flags) load(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Open(fl.config)
	if err != nil {
		return nil, err
	}
	set := func(name string, f func()) {
		if cmd.Flags().Changed(name) {
			f()
		}
	}
	set("vv", func() { c.VeryVerbose = fl.cfg.VeryVerbose })
	set("verbose", func() { c.Verbose = fl.cfg.Verbose })
	set("quiet", func() { c.Quiet = fl.cfg.Quiet })
	set("output", func() { c.Output = fl.cfg.Output })
	set("format", func() { c.Format = fl.cfg.Format })
	set("compress", func() { c.Compress = fl.cfg.Compress })
	set("point-radius", func() { c.PointRadius = fl.cfg.PointRadius })
	set("size-scale", func() { c.SizeScale = fl.cfg.SizeScale })
	set("workers", func() { c.Workers = fl.cfg.Workers })
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()
	return c, nil
}

func newCompileCmd(fl *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <spec.yaml>",
		Short: "compile a scene specification and write the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load(cmd)
			if err != nil {
				return err
			}
			if !fl.watch {
				fn, err := compile(args[0], c)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn)
				return nil
			}
			w, err := watchSpec(args[0])
			if err != nil {
				return err
			}
			report := func(fn string, err error) {
				if errors.Log(err) == nil {
					fmt.Fprintln(cmd.OutOrStdout(), fn)
				}
			}
			report(compile(args[0], c))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			slog.Info("watching for changes", "spec", args[0])
			return runWatch(ctx, w, args[0], c, report)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&fl.watch, "watch", "w", false, "recompile whenever the specification changes")
	f.StringVarP(&fl.cfg.Output, "output", "o", fl.cfg.Output, "the output directory")
	f.StringVar(&fl.cfg.Format, "format", fl.cfg.Format, "the scene description format (yaml or json)")
	f.StringVar(&fl.cfg.Compress, "compress", fl.cfg.Compress, "the scene description compression (zstd or zlib)")
	f.Float32Var(&fl.cfg.PointRadius, "point-radius", fl.cfg.PointRadius, "the radius of points without a size channel")
	f.Float32Var(&fl.cfg.SizeScale, "size-scale", fl.cfg.SizeScale, "the factor all sizes are multiplied by")
	f.IntVarP(&fl.cfg.Workers, "workers", "j", fl.cfg.Workers, "the number of views compiled concurrently")
	return cmd
}

// compile runs the whole pipeline on the given specification file and
// returns the path of the written scene description.
func compile(spec string, c *config.Config) (string, error) {
	root, err := layer.OpenSpec(spec)
	if err != nil {
		return "", err
	}
	views, err := layer.Merge(root)
	if err != nil {
		return "", err
	}
	if err := compiler.CompileAll(views, c.Workers); err != nil {
		return "", err
	}
	sc, err := scene.Assemble(views, c.SceneOptions())
	if err != nil {
		return "", err
	}
	dir, err := c.OutputDir()
	if err != nil {
		return "", err
	}
	return export.Write(sc, export.Options{Dir: dir, Format: c.Format, Compress: c.Compress})
}

func newColormapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colormaps",
		Short: "list the available color maps",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range colormap.AvailableMapsList() {
				cm := colormap.AvailableMaps[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %2d colors  %s .. %s\n", name, cm.Len(), cm.Color(0).Hex(), cm.Color(cm.Len()-1).Hex())
			}
		},
	}
}

func newConfigCmd(fl *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "write the current configuration to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load(cmd)
			if err != nil {
				return err
			}
			fn := config.DefaultFile
			if len(args) > 0 {
				fn = args[0]
			}
			return c.Save(fn)
		},
	}
}
