package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logWallet    string
	logOperation string
	logSince     string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logWallet, "wallet", "", "filter by wallet name")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")

	RootCmd.AddCommand(logCmd)
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logWallet = ""
	logOperation = ""
	logSince = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of vault operations. Entries never contain
passwords or wallet secrets.

Examples:
  walletvault log                              # View full log
  walletvault log -n 10                        # Last 10 entries
  walletvault log --reverse                    # Most recent first
  walletvault log --wallet hot                 # Filter by wallet
  walletvault log --operation encrypt,migrate  # Filter by operation
  walletvault log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Wallet:     logWallet,
		Operations: logOperation,
		Since:      logSince,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	out := cmd.OutOrStdout()

	if logJSON {
		entries := result.Entries
		if entries == nil {
			entries = []audit.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(out, "No audit log entries found.")
		} else {
			fmt.Fprintln(out, "No audit log entries found matching the filters.")
		}
		return nil
	}

	outputLogDefault(out, result.Entries)
	return nil
}

func outputLogDefault(out io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(out, "%-19s  %-8s  %s\n", formatDateTime(e.Timestamp), e.Operation, formatDetails(e))
	}
}

// formatDateTime renders an entry timestamp in local time, or as stored if unparsable.
func formatDateTime(ts string) string {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func formatDetails(e audit.Entry) string {
	var parts []string
	if len(e.Wallets) > 0 {
		parts = append(parts, strings.Join(e.Wallets, ", "))
	}
	switch {
	case e.FromVersion != 0:
		parts = append(parts, fmt.Sprintf("v%d → v%d", e.FromVersion, e.Version))
	case e.Version != 0:
		parts = append(parts, fmt.Sprintf("v%d", e.Version))
	}
	if e.KDF != "" {
		parts = append(parts, e.KDF)
	}
	if e.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", e.Failed))
	}
	if e.BackupPath != "" {
		parts = append(parts, "backup "+e.BackupPath)
	}
	return strings.Join(parts, "  ")
}
