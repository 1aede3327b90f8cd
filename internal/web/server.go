package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/tmdb"
)

// User-facing flash messages.
const (
	flashListingError = "Une erreur est survenue lors du chargement des films."
	flashDetailError  = "Une erreur est survenue lors du chargement du film."
)

// Browser is the subset of movies.Service the pages need.
type Browser interface {
	ListNowPlaying(ctx context.Context, language string) ([]tmdb.Movie, error)
	GetMovieDetail(ctx context.Context, movieID int64, language string) (*movies.Detail, error)
}

var _ Browser = (*movies.Service)(nil)

// Options configures the front-end.
type Options struct {
	Images          tmdb.ImageURLs
	DefaultLanguage string
	Languages       []string
}

type server struct {
	browser   Browser
	logger    *slog.Logger
	images    tmdb.ImageURLs
	languages *languageNegotiator
	pages     *pageSet
}

// NewServer creates the HTTP handler for the listing and detail pages.
func NewServer(opts Options, browser Browser, logger *slog.Logger) http.Handler {
	logger = logging.NewComponentLogger(logger, "web")
	s := &server{
		browser:   browser,
		logger:    logger,
		images:    opts.Images,
		languages: newLanguageNegotiator(opts.DefaultLanguage, opts.Languages),
		pages:     mustParsePages(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestContext(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/detail/{id:[0-9]+}", s.handleDetail)
	r.Get("/health", HealthHandler().ServeHTTP)
	return r
}

type pageData struct {
	Lang    string
	Flashes []string
	Images  tmdb.ImageURLs
}

type indexPage struct {
	pageData
	Movies []tmdb.Movie
}

type detailPage struct {
	pageData
	Detail *movies.Detail
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	lang := s.languages.resolve(r)
	flashes := popFlashes(w, r)

	list, err := s.browser.ListNowPlaying(r.Context(), lang)
	if err != nil {
		s.log(r).Error("homepage",
			logging.Error(err),
			logging.String(logging.FieldLanguage, lang),
			logging.String(logging.FieldEventType, "upstream_fetch_failed"),
		)
		flashes = append(flashes, flashListingError)
		list = []tmdb.Movie{}
	}

	s.render(w, r, "index.html", indexPage{
		pageData: pageData{Lang: lang, Flashes: flashes, Images: s.images},
		Movies:   list,
	})
}

func (s *server) handleDetail(w http.ResponseWriter, r *http.Request) {
	lang := s.languages.resolve(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err == nil && id <= 0 {
		err = tmdb.ErrInvalidMovieID
	}
	var detail *movies.Detail
	if err == nil {
		detail, err = s.browser.GetMovieDetail(r.Context(), id, lang)
	}
	if err != nil {
		s.log(r).Error("detail page",
			logging.Error(err),
			logging.String("id", chi.URLParam(r, "id")),
			logging.String(logging.FieldLanguage, lang),
			logging.String(logging.FieldEventType, "upstream_fetch_failed"),
		)
		setFlashes(w, flashDetailError)
		http.Redirect(w, r, listingURL(r), http.StatusSeeOther)
		return
	}

	s.render(w, r, "detail.html", detailPage{
		pageData: pageData{Lang: lang, Flashes: popFlashes(w, r), Images: s.images},
		Detail:   detail,
	})
}

func (s *server) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	var buf bytes.Buffer
	if err := s.pages.execute(&buf, page, data); err != nil {
		s.log(r).Error("render page", logging.String("page", page), logging.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *server) log(r *http.Request) *slog.Logger {
	return logging.WithContext(r.Context(), s.logger)
}

// listingURL keeps an explicit language choice across the redirect.
func listingURL(r *http.Request) string {
	if lang, ok := explicitLanguage(r); ok {
		return "/?" + url.Values{langQueryParam: {lang}}.Encode()
	}
	return "/"
}
