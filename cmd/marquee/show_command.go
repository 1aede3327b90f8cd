package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/movies"
	"marquee/internal/tmdb"
)

type movieView struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Tagline     string         `json:"tagline,omitempty"`
	Overview    string         `json:"overview"`
	ReleaseDate string         `json:"release_date"`
	Runtime     int            `json:"runtime"`
	VoteAverage float64        `json:"vote_average"`
	Genres      []string       `json:"genres"`
	PosterURL   string         `json:"poster_url,omitempty"`
	Trailer     *trailerView   `json:"trailer,omitempty"`
	Casting     movies.Casting `json:"casting"`
	Degraded    []string       `json:"degraded,omitempty"`
}

type trailerView struct {
	Name     string `json:"name"`
	Site     string `json:"site"`
	Key      string `json:"key"`
	WatchURL string `json:"watch_url,omitempty"`
}

func newMovieView(detail *movies.Detail, images tmdb.ImageURLs) movieView {
	movie := detail.Movie
	view := movieView{
		ID:          movie.ID,
		Title:       movie.Title,
		Tagline:     movie.Tagline,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate,
		Runtime:     movie.Runtime,
		VoteAverage: movie.VoteAverage,
		Genres:      make([]string, 0, len(movie.Genres)),
		PosterURL:   images.URL(tmdb.SizeMedium, movie.PosterPath),
		Casting:     detail.Casting,
		Degraded:    detail.Degraded,
	}
	for _, genre := range movie.Genres {
		view.Genres = append(view.Genres, genre.Name)
	}
	if detail.HasTrailer() {
		view.Trailer = &trailerView{
			Name:     detail.Video.Name,
			Site:     detail.Video.Site,
			Key:      detail.Video.Key,
			WatchURL: detail.Video.WatchURL(),
		}
	}
	return view
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <movie-id>",
		Short: "Display a movie with its trailer and main cast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			svc, cfg, err := ctx.browser(cmd)
			if err != nil {
				return err
			}
			detail, err := svc.GetMovieDetail(cmd.Context(), id, resolveLanguage(lang, cfg))
			if err != nil {
				return err
			}

			view := newMovieView(detail, tmdb.NewImageURLs(cfg.TMDB.ImageBaseURL))
			if asJSON {
				return writeJSON(cmd, view)
			}
			printMovieView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "TMDB language tag (defaults to tmdb.language)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printMovieView(out io.Writer, view movieView) {
	title := view.Title
	if len(view.ReleaseDate) >= 4 {
		title = fmt.Sprintf("%s (%s)", title, view.ReleaseDate[:4])
	}
	fmt.Fprintln(out, title)
	if view.Tagline != "" {
		fmt.Fprintln(out, view.Tagline)
	}
	fmt.Fprintf(out, "Rating: %.1f\n", view.VoteAverage)
	if view.Runtime > 0 {
		fmt.Fprintf(out, "Runtime: %d min\n", view.Runtime)
	}
	if len(view.Genres) > 0 {
		fmt.Fprintf(out, "Genres: %s\n", strings.Join(view.Genres, ", "))
	}
	if len(view.Casting.Directors) > 0 {
		names := make([]string, 0, len(view.Casting.Directors))
		for _, director := range view.Casting.Directors {
			names = append(names, director.Name)
		}
		fmt.Fprintf(out, "Directed by: %s\n", strings.Join(names, ", "))
	}
	if view.Overview != "" {
		fmt.Fprintf(out, "\n%s\n", view.Overview)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Trailer: %s\n", yesNo(view.Trailer != nil))
	if view.Trailer != nil && view.Trailer.WatchURL != "" {
		fmt.Fprintf(out, "  %s\n", view.Trailer.WatchURL)
	}

	if len(view.Casting.MainCast) > 0 {
		rows := make([][]string, 0, len(view.Casting.MainCast))
		for _, member := range view.Casting.MainCast {
			rows = append(rows, []string{member.Name, member.Character})
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(out, []string{"Actor", "Character"}, rows, nil))
	}

	if len(view.Degraded) > 0 {
		fmt.Fprintf(out, "\nPartial data: %s unavailable\n", strings.Join(view.Degraded, ", "))
	}
}
