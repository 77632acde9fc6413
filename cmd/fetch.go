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
	"os/signal"
	"syscall"

	"github.com/akash-pandit/CACourses/internal/iofetch"
	"github.com/akash-pandit/CACourses/internal/ioinstitutions"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getFetchCmd() *cobra.Command {
	var yearKey int

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download articulation agreements from ASSIST",
		Long: `Download articulation agreements from the ASSIST.org API.

This command:
  1. Reads institutions.yaml for the configured community colleges
     and universities
  2. Downloads prefix- and major-scoped agreements for every pair
  3. Saves them under the data directory, one subdirectory per
     university

Agreements already on disk are skipped, so an interrupted run
resumes where it left off. Pairs without an agreement are normal
and reported, not treated as errors.

ASSIST rate-limits requests; a full run over many institution
pairs can take hours. The command pauses automatically when the
API asks it to.

Institution pairs configured in: ~/.config/cacourses/institutions.yaml

Examples:
  cacourses fetch

  # Fetch agreements of another academic year
  cacourses fetch --year-key 74`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd, yearKey)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fetchCmd.Flags().IntVarP(
		&yearKey, "year-key", "y", 0,
		"academic year key, e.g. 75 for 2024-2025",
	)

	return fetchCmd
}

func runFetch(cmd *cobra.Command, yearKey int) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	if cmd.Flags().Changed("year-key") {
		cfg.Update([]config.Option{config.OptFetchYearKey(yearKey)})
	}

	inst := ioinstitutions.New(cfg)
	fetcher := iofetch.New(cfg, inst)

	gn.Info("Downloading agreements to <em>%s</em>",
		cfg.ResolvedDataDir())
	if err := fetcher.Fetch(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>cacourses populate</em>' to load the database
`)

	return nil
}
