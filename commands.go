package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ops_prompt_library/generator"
	"ops_prompt_library/render"
	"ops_prompt_library/server"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			srv, err := server.New(a.agent, a.log)
			if err != nil {
				return err
			}
			listen := a.cfg.Server.Addr
			if addr != "" {
				listen = addr
			}

			httpSrv := &http.Server{
				Addr:              listen,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("starting web server", "addr", listen, "provider", a.cfg.LLM.Provider)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				a.log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides server.addr)")
	return cmd
}

func newGenerateCmd(configPath *string) *cobra.Command {
	var solution, sector, format string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one library and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "markdown" {
				return fmt.Errorf("--format must be json or markdown, got %q", format)
			}
			sel, err := generator.NewSelection(solution, sector)
			if err != nil {
				return err
			}
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			lib, err := a.agent.Generate(cmd.Context(), sel)
			if err != nil {
				return err
			}
			return writeLibrary(cmd.OutOrStdout(), format, sel, lib)
		},
	}
	cmd.Flags().StringVar(&solution, "solution", string(generator.Solutions[0]), "implementation focus")
	cmd.Flags().StringVar(&sector, "sector", string(generator.Sectors[0]), "industry sector")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or markdown")
	return cmd
}

func writeLibrary(w io.Writer, format string, sel generator.Selection, lib generator.Library) error {
	if format == "markdown" {
		_, err := io.WriteString(w, render.LibraryMarkdown(sel, lib))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(lib)
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the available solutions and sectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Soluciones:")
			for _, s := range generator.Solutions {
				fmt.Fprintf(out, "  - %s\n", s)
			}
			fmt.Fprintln(out, "Sectores:")
			for _, s := range generator.Sectors {
				fmt.Fprintf(out, "  - %s\n", s)
			}
			return nil
		},
	}
}
