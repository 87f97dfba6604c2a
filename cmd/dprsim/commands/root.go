package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dprsim/internal/config"
	"dprsim/internal/logging"
	"dprsim/internal/mcp"
	"dprsim/internal/session"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	sessions *session.Store
)

var rootCmd = &cobra.Command{
	Use:   "dprsim",
	Short: "DPRSIM is a completion-feasibility and risk simulation MCP server for DPR documents",
	Long: `A specialized MCP Server that turns a DPR project feature vector into a quantified
completion probability, a five-dimension risk breakdown, simulation-backed mitigation
recommendations and an interactive what-if scenario explorer.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Restore persisted interactive sessions
		sessions = session.NewStore(cfg.SessionDir)
		if err := sessions.Load(); err != nil {
			log.Warn().Err(err).Msg("Failed to load persisted sessions")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("DPRSIM starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg, sessions)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
