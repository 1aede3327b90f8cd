package movies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"marquee/internal/logging"
	"marquee/internal/tmdb"
)

// Enrichment names recorded in Detail.Degraded.
const (
	EnrichmentVideo   = "video"
	EnrichmentCasting = "casting"
)

// Fetcher defines the TMDB operations the service relies on.
type Fetcher interface {
	NowPlaying(ctx context.Context, language string) (*tmdb.NowPlayingResponse, error)
	MovieDetails(ctx context.Context, movieID int64, language string) (*tmdb.MovieDetails, error)
	MovieVideos(ctx context.Context, movieID int64, language string) (*tmdb.VideosResponse, error)
	MovieCredits(ctx context.Context, movieID int64, language string) (*tmdb.Credits, error)
}

var _ Fetcher = (*tmdb.Client)(nil)

// Options tunes detail assembly.
type Options struct {
	// RequireEnrichment fails GetMovieDetail when the trailer or casting
	// lookup fails. Otherwise the detail is returned without them.
	RequireEnrichment bool
	// Sequential issues the detail, videos, and credits calls in order
	// instead of concurrently.
	Sequential   bool
	MainCastSize int
}

// Detail is a movie record enriched with its trailer and casting.
type Detail struct {
	Movie   tmdb.MovieDetails
	Video   *tmdb.Video
	Casting Casting
	// Degraded lists the enrichments that failed and were left empty.
	Degraded []string
}

// HasTrailer reports whether a trailer was found.
func (d *Detail) HasTrailer() bool {
	return d != nil && d.Video != nil
}

// Service fetches and shapes movie data for the listing and detail pages.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
	opts    Options
}

// NewService builds a Service. A nil logger discards output.
func NewService(fetcher Fetcher, logger *slog.Logger, opts Options) *Service {
	if opts.MainCastSize <= 0 {
		opts.MainCastSize = DefaultMainCastSize
	}
	return &Service{
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "movies"),
		opts:    opts,
	}
}

// IsFetchFailure reports whether err came from an upstream call.
func IsFetchFailure(err error) bool {
	return errors.Is(err, tmdb.ErrFetch)
}

// ListNowPlaying returns the now playing movies, or an empty slice when the
// upstream payload has no results.
func (s *Service) ListNowPlaying(ctx context.Context, language string) ([]tmdb.Movie, error) {
	resp, err := s.fetcher.NowPlaying(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("list now playing: %w", err)
	}
	if resp == nil || resp.Results == nil {
		return []tmdb.Movie{}, nil
	}
	s.log(ctx).Debug("now playing fetched",
		logging.String(logging.FieldLanguage, language),
		logging.Int("count", len(resp.Results)),
	)
	return resp.Results, nil
}

// GetTrailer returns the first trailer of a movie, or nil when it has none.
func (s *Service) GetTrailer(ctx context.Context, movieID int64, language string) (*tmdb.Video, error) {
	resp, err := s.fetcher.MovieVideos(ctx, movieID, language)
	if err != nil {
		return nil, fmt.Errorf("movie %d videos: %w", movieID, err)
	}
	if resp == nil {
		return nil, nil
	}
	return FirstTrailer(resp.Results), nil
}

// GetCasting returns the main cast and directors of a movie. Missing cast or
// crew lists yield empty slices.
func (s *Service) GetCasting(ctx context.Context, movieID int64, language string) (Casting, error) {
	resp, err := s.fetcher.MovieCredits(ctx, movieID, language)
	if err != nil {
		return emptyCasting(), fmt.Errorf("movie %d credits: %w", movieID, err)
	}
	if resp == nil {
		return emptyCasting(), nil
	}
	return Casting{
		MainCast:  MainCast(resp.Cast, s.opts.MainCastSize),
		Directors: Directors(resp.Crew),
	}, nil
}

// GetMovieDetail fetches a movie and enriches it with its trailer and casting.
func (s *Service) GetMovieDetail(ctx context.Context, movieID int64, language string) (*Detail, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("movie detail: %w", tmdb.ErrInvalidMovieID)
	}
	var res detailResults
	if s.opts.Sequential {
		res = s.fetchSequential(ctx, movieID, language)
	} else {
		res = s.fetchConcurrent(ctx, movieID, language)
	}
	return s.assemble(ctx, movieID, language, res)
}

type detailResults struct {
	// cause is the failure that stopped a concurrent fetch. Sibling calls
	// cancelled because of it fail with context.Canceled and are ignored.
	cause      error
	movie      *tmdb.MovieDetails
	movieErr   error
	video      *tmdb.Video
	videoErr   error
	casting    Casting
	castingErr error
}

func (s *Service) fetchSequential(ctx context.Context, movieID int64, language string) detailResults {
	var res detailResults
	res.movie, res.movieErr = s.fetchMovie(ctx, movieID, language)
	if res.movieErr != nil {
		return res
	}
	res.video, res.videoErr = s.GetTrailer(ctx, movieID, language)
	if res.videoErr != nil && s.opts.RequireEnrichment {
		return res
	}
	res.casting, res.castingErr = s.GetCasting(ctx, movieID, language)
	return res
}

func (s *Service) fetchConcurrent(ctx context.Context, movieID int64, language string) detailResults {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var res detailResults
	var once sync.Once
	abort := func(err error) {
		once.Do(func() {
			res.cause = err
			cancel()
		})
	}
	var wg sync.WaitGroup
	wg.Go(func() {
		res.movie, res.movieErr = s.fetchMovie(ctx, movieID, language)
		if res.movieErr != nil {
			abort(res.movieErr)
		}
	})
	wg.Go(func() {
		res.video, res.videoErr = s.GetTrailer(ctx, movieID, language)
		if res.videoErr != nil && s.opts.RequireEnrichment {
			abort(res.videoErr)
		}
	})
	wg.Go(func() {
		res.casting, res.castingErr = s.GetCasting(ctx, movieID, language)
		if res.castingErr != nil && s.opts.RequireEnrichment {
			abort(res.castingErr)
		}
	})
	wg.Wait()
	return res
}

func (s *Service) fetchMovie(ctx context.Context, movieID int64, language string) (*tmdb.MovieDetails, error) {
	movie, err := s.fetcher.MovieDetails(ctx, movieID, language)
	if err != nil {
		return nil, fmt.Errorf("movie %d detail: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d detail: %w", movieID, &tmdb.FetchError{
			Endpoint: fmt.Sprintf("/movie/%d", movieID),
			Err:      errors.New("empty response"),
		})
	}
	return movie, nil
}

func (s *Service) assemble(ctx context.Context, movieID int64, language string, res detailResults) (*Detail, error) {
	if res.cause != nil {
		return nil, res.cause
	}
	if res.movieErr != nil {
		return nil, res.movieErr
	}
	if s.opts.RequireEnrichment {
		if res.videoErr != nil {
			return nil, res.videoErr
		}
		if res.castingErr != nil {
			return nil, res.castingErr
		}
	}

	detail := &Detail{Movie: *res.movie, Casting: emptyCasting()}
	logger := s.log(ctx).With(
		logging.Int64(logging.FieldMovieID, movieID),
		logging.String(logging.FieldLanguage, language),
	)

	if res.videoErr != nil {
		detail.Degraded = append(detail.Degraded, EnrichmentVideo)
		logger.Warn("trailer lookup failed; rendering without trailer",
			logging.Error(res.videoErr),
			logging.String(logging.FieldEventType, "enrichment_degraded"),
		)
	} else {
		detail.Video = res.video
	}

	if res.castingErr != nil {
		detail.Degraded = append(detail.Degraded, EnrichmentCasting)
		logger.Warn("credits lookup failed; rendering without casting",
			logging.Error(res.castingErr),
			logging.String(logging.FieldEventType, "enrichment_degraded"),
		)
	} else {
		detail.Casting = res.casting
	}
	return detail, nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.WithContext(ctx, s.logger)
}

func emptyCasting() Casting {
	return Casting{MainCast: []tmdb.CastMember{}, Directors: []tmdb.CrewMember{}}
}
