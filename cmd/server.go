package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/digitgenius/shopassist/internal/catalog"
	"github.com/digitgenius/shopassist/internal/chat"
	"github.com/digitgenius/shopassist/internal/config"
	"github.com/digitgenius/shopassist/internal/db"
	"github.com/digitgenius/shopassist/internal/llm"
	"github.com/digitgenius/shopassist/internal/server"
	"github.com/digitgenius/shopassist/internal/transcript"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the shopassist chat server",
	Long:  `Starts the HTTP chat server with the catalog resolver, generative fallback, and static FAQ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validating config: %w", err)
		}
		if serverPort != 0 {
			cfg.Port = serverPort
		}

		// Load the catalog snapshot once; it is immutable for the process
		// lifetime and shared by all requests.
		idx, err := catalog.Load(cfg.CatalogDir, cfg.CatalogGlobs)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		// The generative tier is optional. No API key means the chain runs
		// catalog → FAQ, which is a supported mode, not an error.
		var provider llm.Provider
		if llm.HasCredentials(string(cfg.Provider)) {
			provider, err = llm.NewProvider(string(cfg.Provider), cfg.Model)
			if err != nil {
				return fmt.Errorf("creating backend provider: %w", err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Note: %s not set; generative tier disabled, answering from catalog and FAQ only.\n",
				config.APIKeyEnvVar(cfg.Provider))
		}

		dbPath := filepath.Join(cfg.DataDir, "shopassist.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAll,
		}, database, idx, provider, cfg.Model)

		registerAllRoutes(srv)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "shopassist v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Catalog: %s (%d products)\n", cfg.CatalogDir, idx.Count())
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server) {
	r := srv.Router()

	transcriptStore := transcript.NewStore(srv.Database())
	transcript.RegisterRoutes(r, transcriptStore)

	chain := chat.NewChain(srv.Catalog(), srv.LLMProvider(), srv.LLMModel())
	chat.RegisterRoutes(r, chain, transcriptStore)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
