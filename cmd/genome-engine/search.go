// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/genome-engine/internal/coredb"
	"github.com/pdiddy/genome-engine/internal/ensembl"
	"github.com/pdiddy/genome-engine/internal/search"
	"github.com/pdiddy/genome-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search an Ensembl core database for genes or transcripts",
	Long: `Search resolves a species to its Ensembl core database, queries the gene
or transcript annotation tables for each keyword, and combines the
per-keyword results under and/or semantics.

The species may be any unambiguous fragment of a database identifier
(homo_sapiens), a full identifier (homo_sapiens_core_106_38), or one of
the shortcuts "human" and "mouse".`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("species", "s", "", "species name, shortcut, or core database identifier (required)")
	searchCmd.Flags().String("kind", "gene", "annotation table to search: gene or transcript")
	searchCmd.Flags().String("mode", "or", "combine per-keyword results: or (union) or and (intersection)")
	searchCmd.Flags().Int("limit", 0, "maximum number of records to return (0 = unlimited)")
	searchCmd.Flags().Int("release", 0, "Ensembl release number (0 = latest)")
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("csv", false, "output records as CSV")
	searchCmd.Flags().Bool("wrap", false, "wrap long table columns instead of truncating")
	searchCmd.Flags().String("save", "", "write records to a file (.csv, .json, .yaml)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP and database timeout (default 30s)")

	// Retired flag, kept hidden so old invocations fail with a pointer to
	// the replacement instead of an unknown-flag error.
	searchCmd.Flags().String("seqtype", "", "")
	searchCmd.Flags().MarkHidden("seqtype")
	searchCmd.MarkFlagRequired("species")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if seqtype, _ := cmd.Flags().GetString("seqtype"); seqtype != "" {
		return fmt.Errorf("seqtype has been removed: use --kind gene or --kind transcript")
	}
	if len(args) == 0 {
		return fmt.Errorf("provide one or more search keywords")
	}

	species, _ := cmd.Flags().GetString("species")
	kind, _ := cmd.Flags().GetString("kind")
	mode, _ := cmd.Flags().GetString("mode")
	release, _ := cmd.Flags().GetInt("release")

	limit, _ := cmd.Flags().GetInt("limit")
	if !cmd.Flags().Changed("limit") {
		limit = viper.GetInt("search.limit")
	}

	cfg := types.SearchConfig{
		HTTPConfig: httpConfig(cmd),
		Limit:      limit,
	}

	crit := search.Criteria{
		Kind:     types.EntityKind(kind),
		Keywords: args,
		Mode:     types.CombineMode(mode),
		Limit:    cfg.Limit,
	}
	crit.Normalize()

	// Arguments are checked before any network traffic.
	if err := crit.Validate(); err != nil {
		return err
	}
	if release < 0 {
		return fmt.Errorf("release %d is negative: expected a release number, or 0 for latest", release)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	ctx := context.Background()

	resolver := ensembl.NewResolver(client, cfg.HTTPConfig)
	db, err := resolver.Resolve(ctx, species, release)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Fetching results from database: %s\n", db.Name)

	conn, err := coredb.Connect(ctx, databaseConfig(cfg.Timeout), db.Name)
	if err != nil {
		return err
	}
	defer conn.Close()

	start := time.Now()
	res, err := search.Search(ctx, conn, crit, db.Name, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Query time: %.2f seconds.\n", time.Since(start).Seconds())

	jsonOut, _ := cmd.Flags().GetBool("json")
	csvOut, _ := cmd.Flags().GetBool("csv")
	wrap, _ := cmd.Flags().GetBool("wrap")

	switch {
	case jsonOut:
		if err := search.FormatJSON(res, os.Stdout); err != nil {
			return err
		}
	case csvOut:
		if err := search.FormatCSV(res, os.Stdout); err != nil {
			return err
		}
	default:
		search.FormatTable(res, os.Stdout, wrap)
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.Save(save, crit, db.Name, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", save)
	}
	return nil
}
