/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/esimdash/esimdash-cli/cmd/logger"
	"github.com/esimdash/esimdash-cli/internal/config"
	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/esimdash/esimdash-cli/internal/web"
	"github.com/mdp/qrterminal"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var (
	openBrowser bool
	qr          bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ESIM dashboard in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals()...)
		defer stop()

		ln, err := net.Listen("tcp", cfg.Listen)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.Listen, err)
		}

		srv := web.NewServer(newAPI(),
			web.WithCookieSecure(cfg.CookieSecure),
			web.WithLogger(logger.Logger),
		)
		httpServer := &http.Server{
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		url := fmt.Sprintf("http://%s%s", browseAddr(ln.Addr()), view.PathDashboard)
		logger.Logger.Info("serving esim dashboard", zap.String("listen", ln.Addr().String()), zap.String("api_url", cfg.APIURL))
		fmt.Printf("ESIM dashboard is available at %s\n", url)

		if qr {
			qrterminal.GenerateWithConfig(url, qrterminal.Config{
				Level:     qrterminal.L,
				Writer:    os.Stdout,
				QuietZone: 1,
				BlackChar: qrterminal.BLACK,
				WhiteChar: qrterminal.WHITE,
			})
		}
		if openBrowser {
			// the url is printed above, a failure here is not fatal
			if err := open.Run(url); err != nil {
				logger.Logger.Warn("failed to open browser", zap.Error(err))
			}
		}

		g, groupCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-groupCtx.Done()
			logger.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// browseAddr turns a wildcard listen address into one a browser can open.
func browseAddr(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

func init() {
	serveCmd.Flags().String("listen", config.DefaultListen, "address the dashboard listens on")
	serveCmd.Flags().Bool("cookie-secure", false, "mark the session cookie Secure (use behind https)")
	serveCmd.Flags().BoolVar(&openBrowser, "open", false, "open the dashboard in the default browser")
	serveCmd.Flags().BoolVar(&qr, "qr", false, "print a QR code of the dashboard url")

	_ = cfgViper.BindPFlag(config.KeyListen, serveCmd.Flags().Lookup("listen"))
	_ = cfgViper.BindPFlag(config.KeyCookieSecure, serveCmd.Flags().Lookup("cookie-secure"))

	rootCmd.AddCommand(serveCmd)
}
