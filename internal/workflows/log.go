package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/walletvault/internal/audit"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Wallet filters entries touching the named record.
	Wallet string

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the vault's audit log. A missing log gives no entries.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrInvalidDateFormat if Since is not YYYY-MM-DD.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	_, v, err := openVault(false)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(v.Path)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &LogResult{TotalEntriesBeforeFilter: len(entries)}
	filtered := entries

	if opts.Wallet != "" {
		filtered = filterByWallet(filtered, opts.Wallet)
	}

	if opts.Operations != "" {
		filtered = filterByOperations(filtered, strings.Split(opts.Operations, ","))
	}

	if opts.Since != "" {
		since, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", verrors.ErrInvalidDateFormat)
		}
		filtered = filterSince(filtered, since)
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// Limit keeps the most recent entries in either order.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterByWallet(entries []audit.Entry, wallet string) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		for _, w := range e.Wallets {
			if w == wallet {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

func filterByOperations(entries []audit.Entry, ops []string) []audit.Entry {
	opSet := make(map[string]bool)
	for _, op := range ops {
		opSet[strings.ToLower(strings.TrimSpace(op))] = true
	}

	var result []audit.Entry
	for _, e := range entries {
		if opSet[strings.ToLower(e.Operation)] {
			result = append(result, e)
		}
	}
	return result
}

func filterSince(entries []audit.Entry, since time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		t, err := time.Parse(audit.TimestampFormat, e.Timestamp)
		if err != nil {
			continue
		}
		if !t.Before(since) {
			result = append(result, e)
		}
	}
	return result
}
