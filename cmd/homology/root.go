package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/homology/internal/config"
	logpkg "github.com/katalvlaran/homology/internal/logger"
	"github.com/katalvlaran/homology/internal/render"
	"github.com/katalvlaran/homology/pipeline"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"env":           "logging.env",
	"log-level":     "logging.level",
	"format":        "analysis.format",
	"radius":        "analysis.radius",
	"workers":       "analysis.workers",
	"split":         "analysis.split",
	"block":         "analysis.block",
	"cutoff":        "analysis.dark_cutoff",
	"connectivity":  "analysis.connectivity",
	"max-vertices":  "analysis.max_vertices",
	"max-simplices": "analysis.max_simplices",
	"max-cells":     "analysis.max_cells",
	"timeout":       "analysis.timeout_sec",
	"host":          "server.host",
	"port":          "server.port",
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "homology",
		Short: "Betti numbers of point clouds over GF(2)",
		Long: `homology builds a simplicial complex from a point cloud (two points are
joined when their distance is at most twice the radius), reduces its boundary
matrices over GF(2) and reports the Betti numbers: β_0 counts connected
components, β_1 counts holes.

Configuration is read from .homology.yaml (current directory or $HOME),
HOMOLOGY_* environment variables (e.g. HOMOLOGY_ANALYSIS_RADIUS) and flags,
in increasing order of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	defaults := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.homology.yaml or $HOME/.homology.yaml)")
	pf.String("env", defaults.Logging.Env, "logging environment: prod, dev, local")
	pf.String("log-level", "", "log level override: debug, info, warn, error")
	pf.StringP("format", "f", defaults.Analysis.Format, "output format: text or json")

	root.AddCommand(
		a.bettiCmd(),
		a.splitCmd(),
		a.imageCmd(),
		a.serveCmd(),
		versionCmd(),
		configCmd(&a.cfgFile),
	)

	return root
}

// setup reads the config file, environment and flags into a.cfg and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".homology")
	}

	setDefaults(v, config.DefaultConfig())
	v.SetEnvPrefix("HOMOLOGY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Logging.Level
	if level == "" && cmd.Name() != "serve" {
		// Keep stderr quiet for one-shot commands unless asked otherwise.
		level = "warn"
	}
	log, err := logpkg.NewLogger(cfg.Logging.Env, level)
	if err != nil {
		return err
	}
	a.log = log
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

// analysisContext derives the context of one analysis: cancelled by an
// interrupt and bounded by analysis.timeout_sec.
func (a *app) analysisContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Analysis.TimeoutSec)*time.Second)

	return ctx, func() {
		cancel()
		stop()
	}
}

// limits returns the size-cap options shared by every analysis command.
func (a *app) limits() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithMaxVertices(a.cfg.Analysis.MaxVertices),
		pipeline.WithMaxSimplices(a.cfg.Analysis.MaxSimplices),
	}
}

// format resolves the configured output format.
func (a *app) format() (render.Format, error) {
	return render.ParseFormat(a.cfg.Analysis.Format)
}

// setDefaults registers every config key so that environment variables and
// Unmarshal see them.
func setDefaults(v *viper.Viper, d *config.Config) {
	v.SetDefault("logging.env", d.Logging.Env)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout_sec", d.Server.ReadTimeoutSec)
	v.SetDefault("server.write_timeout_sec", d.Server.WriteTimeoutSec)
	v.SetDefault("server.shutdown_timeout_sec", d.Server.ShutdownSec)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("analysis.radius", d.Analysis.Radius)
	v.SetDefault("analysis.block", d.Analysis.Block)
	v.SetDefault("analysis.workers", d.Analysis.Workers)
	v.SetDefault("analysis.dark_cutoff", d.Analysis.DarkCutoff)
	v.SetDefault("analysis.connectivity", d.Analysis.Connectivity)
	v.SetDefault("analysis.split", d.Analysis.Split)
	v.SetDefault("analysis.format", d.Analysis.Format)
	v.SetDefault("analysis.max_vertices", d.Analysis.MaxVertices)
	v.SetDefault("analysis.max_simplices", d.Analysis.MaxSimplices)
	v.SetDefault("analysis.max_cells", d.Analysis.MaxCells)
	v.SetDefault("analysis.timeout_sec", d.Analysis.TimeoutSec)
}
