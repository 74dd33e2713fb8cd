// Command toystore is the terminal storefront and admin console for the
// toy shop API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/minhtranvn/toystore/internal/api"
	"github.com/minhtranvn/toystore/internal/config"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/prefs"
	"github.com/minhtranvn/toystore/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app carries the dependencies shared by every command, constructed once
// after flags are parsed and injected into command closures.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	client *api.Client
	tokens *session.TokenStore

	wishlist *prefs.Wishlist
	shipping *prefs.Value[model.ShippingAddress]
	promo    *prefs.Value[model.AppliedPromo]
	cart     *prefs.Value[[]model.CartItem]

	timeout time.Duration
}

// ctx returns the per-command request context.
func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		server  string
		cfgPath string
		timeout time.Duration
		verbose bool
	)

	root := &cobra.Command{
		Use:           "toystore",
		Short:         "Storefront and admin console for the toy shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if server != "" {
				cfg.BaseURL = server
			}
			if verbose {
				cfg.Verbose = true
			}
			a.cfg = cfg

			zc := zap.NewProductionConfig()
			if cfg.Verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			a.log, err = zc.Build()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			a.timeout = cfg.RequestTimeout()
			if timeout > 0 {
				a.timeout = timeout
			}

			dir := config.Dir()
			a.tokens = session.NewTokenStore(dir)
			storage := prefs.NewDirStorage(dir)
			a.wishlist = prefs.NewWishlist(storage, a.log)
			a.shipping = prefs.NewValue[model.ShippingAddress](storage, prefs.KeyShipping, a.log)
			a.promo = prefs.NewValue[model.AppliedPromo](storage, prefs.KeyPromo, a.log)
			a.cart = prefs.NewValue[[]model.CartItem](storage, prefs.KeyCart, a.log)

			a.client = api.New(cfg.BaseURL,
				api.WithLogger(a.log),
				api.WithTokenSource(a.tokens),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&server, "server", "", "API base URL (overrides config)")
	root.PersistentFlags().StringVar(&cfgPath, "config", config.Path(), "config file")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides config)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newVersionCmd(),
		newProductsCmd(a),
		newPostsCmd(a),
		newWishlistCmd(a),
		newCartCmd(a),
		newShippingCmd(a),
		newPromoCmd(a),
		newOrderCmd(a),
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newAdminCmd(a),
		newGiftCmd(a),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("toystore %s (%s)\n", version, buildDate)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
