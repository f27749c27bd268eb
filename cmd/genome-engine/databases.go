// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/ensembl"
)

var databasesCmd = &cobra.Command{
	Use:   "databases [filter]",
	Short: "List Ensembl core databases for a release",
	Long: `Databases lists the core databases available from the vertebrate and
plant registries. An optional positional filter keeps only identifiers
containing it as a substring, which helps pick an exact identifier when
species resolution reports an ambiguity.`,
	RunE: runDatabases,
}

func init() {
	databasesCmd.Flags().Int("release", 0, "Ensembl release number (0 = latest)")
	databasesCmd.Flags().Bool("json", false, "output the list as JSON")
	databasesCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(databasesCmd)
}

func runDatabases(cmd *cobra.Command, args []string) error {
	release, _ := cmd.Flags().GetInt("release")
	if release < 0 {
		return fmt.Errorf("release %d is negative: expected a release number, or 0 for latest", release)
	}

	httpCfg := httpConfig(cmd)
	client := &http.Client{Timeout: httpCfg.Timeout}

	resolver := ensembl.NewResolver(client, httpCfg)
	databases, resolved, err := resolver.AvailableDatabases(context.Background(), release)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		filter := strings.ToLower(args[0])
		kept := databases[:0]
		for _, db := range databases {
			if strings.Contains(db, filter) {
				kept = append(kept, db)
			}
		}
		databases = kept
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(databases)
	}

	fmt.Fprintf(os.Stderr, "Release %d: %d core databases\n", resolved, len(databases))
	for _, db := range databases {
		fmt.Println(db)
	}
	return nil
}
