/*
Copyright © 2025 Akash Pandit

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/akash-pandit/CACourses/internal/iodb"
	"github.com/akash-pandit/CACourses/internal/iopopulate"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var (
		kinds         []string
		noSchemaCache bool
		jobs          int
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Populate database from downloaded agreements",
		Long: `Run the ETL over downloaded agreements and load PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Unifies the document schema of each agreement kind
  3. Extracts articulation requirements and flattens them into
     disjunctive normal form
  4. Builds the course glossary, resolving diverging metadata to
     the most recently offered record
  5. Bulk-loads the articulations and glossary tables

Each run is a full rebuild of both tables. Documents that fail to
process are reported at the end; one bad document never aborts a
run.

Agreement files are read from the data directory, see
'cacourses fetch'.

Examples:
  # Process both prefix- and major-scoped agreements
  cacourses populate

  # Process one kind only
  cacourses populate --kinds prefixes
  cacourses populate -k majors

  # Re-infer schemas even when a cached one exists
  cacourses populate --no-schema-cache

  # Limit worker count
  cacourses populate --jobs 4`,
		Aliases: []string{"load"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, kinds, noSchemaCache, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringSliceVarP(
		&kinds, "kinds", "k", []string{},
		"document kinds to process (empty = all)",
	)
	populateCmd.Flags().BoolVar(
		&noSchemaCache, "no-schema-cache", false,
		"ignore cached schemas from previous runs",
	)
	populateCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent extraction workers",
	)

	return populateCmd
}

func runPopulate(
	cmd *cobra.Command,
	kinds []string,
	noSchemaCache bool,
	jobs int,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	// Build options from explicitly set flags
	var populateOpts []config.Option

	if cmd.Flags().Changed("kinds") {
		populateOpts = append(
			populateOpts,
			config.OptPopulateKinds(kinds),
		)
	}

	if cmd.Flags().Changed("no-schema-cache") {
		populateOpts = append(
			populateOpts,
			config.OptPopulateWithSchemaCache(!noSchemaCache),
		)
	}

	if cmd.Flags().Changed("jobs") {
		populateOpts = append(
			populateOpts,
			config.OptJobsNumber(jobs),
		)
	}

	if len(populateOpts) > 0 {
		cfg.Update(populateOpts)
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if !hasTables {
		err = &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'cacourses create'</em> first to initialize the schema.`,
			Err: errors.New("cannot insert data into empty database"),
		}
		return err
	}

	populator := iopopulate.New(cfg, op)

	gn.Info("Starting data population from downloaded agreements...")
	report, err := populator.Populate(ctx)
	if err != nil {
		return err
	}

	if report != nil && !report.Empty() {
		gn.Warn("Some documents failed to process:\n%s", report.String())
	}

	gn.Info(`Next steps:
	 - Database is ready for queries
	 - Re-run '<em>cacourses fetch</em>' and '<em>cacourses populate</em>'
	   when a new academic year is published
`)

	return nil
}
