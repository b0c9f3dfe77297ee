package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentscout/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveDBPath     string
	serveDataDir    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes session-based REST endpoints for the screening conversation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database path")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for exported candidate files")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, "", serveDataDir, false)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDBPath != "" {
		cfg.DBPath = serveDBPath
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DBPath:          cfg.DBPath,
		DataDir:         cfg.DataDir,
		APIKey:          cfg.APIKey,
		QuestionTimeout: cfg.ParsedQuestionTimeout(),
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
