package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/tmdb"
)

type nowPlayingRow struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterURL   string  `json:"poster_url,omitempty"`
}

func newNowPlayingCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "now-playing",
		Short: "List the movies currently in theaters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := ctx.browser(cmd)
			if err != nil {
				return err
			}
			list, err := svc.ListNowPlaying(cmd.Context(), resolveLanguage(lang, cfg))
			if err != nil {
				return err
			}

			images := tmdb.NewImageURLs(cfg.TMDB.ImageBaseURL)
			rows := make([]nowPlayingRow, 0, len(list))
			for _, movie := range list {
				rows = append(rows, nowPlayingRow{
					ID:          movie.ID,
					Title:       movie.Title,
					ReleaseDate: movie.ReleaseDate,
					VoteAverage: movie.VoteAverage,
					PosterURL:   images.URL(tmdb.SizeOriginal, movie.PosterPath),
				})
			}

			if asJSON {
				return writeJSON(cmd, rows)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No movies now playing")
				return nil
			}
			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				table = append(table, []string{
					strconv.FormatInt(row.ID, 10),
					row.Title,
					row.ReleaseDate,
					strconv.FormatFloat(row.VoteAverage, 'f', 1, 64),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "Title", "Release", "Rating"},
				table,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "TMDB language tag (defaults to tmdb.language)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
