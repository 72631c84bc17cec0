package commands

import (
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"lunaphase/internal/app"
	"lunaphase/internal/client"
	"lunaphase/internal/domain"
	"lunaphase/internal/logging"
)

var (
	cfgFile string
	jsonOut bool

	cfg    app.Config
	logger *zap.Logger
	wire   *app.Wire // nil in remote mode
	source domain.PhaseClient
)

// requestTimeout bounds calls to a remote lunaserver.
const requestTimeout = 30 * time.Second

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lunaphase",
		Short:        "Moon phase calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			if err := app.ReadConfigFile(v, cfgFile); err != nil {
				return err
			}
			var err error
			if cfg, err = app.Load(v); err != nil {
				return err
			}
			if logger, err = logging.New(cfg.LogLevel); err != nil {
				return err
			}

			if cfg.ServerURL != "" {
				wire = nil
				source = client.NewHTTP(cfg.ServerURL, &http.Client{Timeout: requestTimeout})
				logger.Debug("using remote server", zap.String("url", cfg.ServerURL))
				return nil
			}
			if wire, err = app.NewWire(cfg, logger); err != nil {
				return err
			}
			source = wire.App
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./lunaphase.yaml or ~/lunaphase.yaml)")
	pf.String("log-level", "warn", "debug, info, warn or error")
	pf.String("server", "", "query a lunaserver at this URL instead of computing locally")
	pf.String("image-dir", "./static/images", "directory of static and generated images")
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("server_url", pf.Lookup("server"))
	_ = viper.BindPFlag("image_dir", pf.Lookup("image-dir"))

	root.AddCommand(phaseCmd(), calendarCmd(), imageCmd(), seedCmd())
	return root
}

// today returns the current date in the configured time zone.
func today() civil.Date {
	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}
	return civil.DateOf(time.Now().In(loc))
}

// dateArg parses an optional YYYY-MM-DD argument.
func dateArg(args []string) (civil.Date, error) {
	if len(args) == 0 {
		return today(), nil
	}
	d, err := civil.ParseDate(args[0])
	if err != nil {
		return civil.Date{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", args[0])
	}
	return d, nil
}

// requireLocal fails commands that need the local image store.
func requireLocal(name string) error {
	if wire == nil {
		return fmt.Errorf("%s works on the local image store; drop --server", name)
	}
	return nil
}
