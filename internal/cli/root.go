// Package cli implements the go-shop command-line client. Every command
// talks to a running go-shop-api server through [adapter.ShopAdapter] and
// prints the decoded response as indented JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/adapter"
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/spf13/cobra"
)

type client struct {
	cfg     config.ClientAdapter
	adapter adapter.ShopAdapter
	logger  *logger.Logger
	out     io.Writer
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	cfg, err := config.GetClientAdapterConfig()
	if err != nil {
		return fmt.Errorf("error getting client configs: %w", err)
	}

	return newRootCmd(cfg, logger.NewConsoleLogger(os.Stderr, "go-shop-client"), os.Stdout).Execute()
}

func newRootCmd(cfg config.ClientAdapter, log *logger.Logger, out io.Writer) *cobra.Command {
	c := &client{cfg: cfg, logger: log, out: out}

	root := &cobra.Command{
		Use:           "go-shop",
		Short:         "Command-line client for the go-shop-api server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := adapter.NewHTTPShopAdapter(c.cfg, c.logger)
			if err != nil {
				return err
			}
			c.adapter = a
			return nil
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfg.HTTPAddress, "server", "s", cfg.HTTPAddress, "server address (env SHOP_SERVER_ADDRESS)")
	flags.DurationVar(&c.cfg.RequestTimeout, "timeout", defaultTimeout(cfg.RequestTimeout), "request timeout (env SHOP_REQUEST_TIMEOUT)")
	flags.StringVarP(&c.cfg.Token, "token", "t", cfg.Token, "bearer token (env SHOP_TOKEN)")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.profileCmd(),
		c.homeCmd(),
		c.productsCmd(),
	)

	return root
}

func defaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 15 * time.Second
	}
	return d
}

func (c *client) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
