package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/config"
	"github.com/zenithlab/storefront-client/internal/events"
	"github.com/zenithlab/storefront-client/internal/logging"
	"github.com/zenithlab/storefront-client/internal/pages"
	"github.com/zenithlab/storefront-client/internal/session"
	"github.com/zenithlab/storefront-client/internal/store"
)

// app holds the wired storefront: config, local store, session, API client
// and the best-effort event producer.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	store *store.Store
	deps  pages.Deps
}

func (a *app) init() error {
	a.cfg = config.Load()
	a.log = logging.New(a.cfg.LogLevel)
	slog.SetDefault(a.log)

	st, err := store.Open(a.cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	a.store = st

	sess := &session.Session{Store: st}
	api := apiclient.New(
		a.cfg.APIBaseURL,
		time.Duration(a.cfg.HTTPTimeoutSeconds)*time.Second,
		sess.Token,
	)
	a.deps = pages.Deps{
		API:     api,
		Session: sess,
		Events:  events.NewProducer(a.cfg.KafkaBrokers),
	}
	return nil
}

func (a *app) close() {
	if a.deps.Events != nil {
		_ = a.deps.Events.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *app) ctx() context.Context {
	return logging.IntoContext(context.Background(), a.log)
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Zenith storefront client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newRegisterCmd(a),
		newProductsCmd(a),
		newProductCmd(a),
		newCategoriesCmd(a),
		newCompareCmd(a),
		newCartCmd(a),
		newCheckoutCmd(a),
		newOrdersCmd(a),
		newProfileCmd(a),
		newJobsCmd(a),
		newApplyCmd(a),
		newContactCmd(a),
		newAdminCmd(a),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
