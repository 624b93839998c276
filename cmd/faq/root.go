package main

import (
	"backend-faq/internal/client"
	"backend-faq/internal/config"
	"backend-faq/internal/tui"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "faq",
	Short: "Browse the FAQ in the terminal",
	Long:  "faq fetches the FAQ dataset from the API once and shows it grouped by category.",
	Args:  cobra.NoArgs,
	RunE:  runFAQ,
}

var (
	apiURL     string
	apiTimeout time.Duration
	logFile    string
)

func init() {
	config.LoadEnv()

	rootCmd.Flags().StringVar(&apiURL, "url", config.GetEnv("FAQ_API_URL", "http://localhost:8080"), "Base URL of the FAQ API")
	rootCmd.Flags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "HTTP timeout for the dataset fetch")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write operator logs to this file (discarded if empty)")
}

func runFAQ(cmd *cobra.Command, args []string) error {
	// log output would corrupt the alt screen; hold it until the TUI exits
	var held bytes.Buffer
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "faq")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(&held)
		defer flushHeldLogs(&held, os.Stderr)
	}

	c, err := client.New(apiURL, apiTimeout)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func flushHeldLogs(held *bytes.Buffer, w io.Writer) {
	log.SetOutput(w)
	if held.Len() > 0 {
		_, _ = held.WriteTo(w)
	}
}
