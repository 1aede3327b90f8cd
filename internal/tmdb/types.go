package tmdb

// Movie is a single entry of a TMDB movie list such as now playing.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// DateRange is the release window reported alongside now playing results.
type DateRange struct {
	Minimum string `json:"minimum"`
	Maximum string `json:"maximum"`
}

// NowPlayingResponse models the paginated /movie/now_playing payload.
type NowPlayingResponse struct {
	Page         int       `json:"page"`
	Results      []Movie   `json:"results"`
	Dates        DateRange `json:"dates"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

type Country struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

type SpokenLanguage struct {
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// MovieDetails is the full /movie/{id} record.
type MovieDetails struct {
	Movie
	Tagline             string           `json:"tagline"`
	Runtime             int              `json:"runtime"`
	Status              string           `json:"status"`
	Homepage            string           `json:"homepage"`
	IMDbID              string           `json:"imdb_id"`
	Budget              int64            `json:"budget"`
	Revenue             int64            `json:"revenue"`
	Genres              []Genre          `json:"genres"`
	ProductionCompanies []Company        `json:"production_companies"`
	ProductionCountries []Country        `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage `json:"spoken_languages"`
}

// Video describes an entry of /movie/{id}/videos.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Size        int    `json:"size"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
	ISO6391     string `json:"iso_639_1"`
	ISO31661    string `json:"iso_3166_1"`
}

// VideoTypeTrailer is the Video.Type value TMDB uses for trailers.
const VideoTypeTrailer = "Trailer"

// WatchURL returns a link to the video on its hosting site, or "" for
// unsupported sites.
func (v Video) WatchURL() string {
	if v.Key == "" {
		return ""
	}
	switch v.Site {
	case "YouTube":
		return "https://www.youtube.com/watch?v=" + v.Key
	case "Vimeo":
		return "https://vimeo.com/" + v.Key
	default:
		return ""
	}
}

// EmbedURL returns an iframe-embeddable player URL, or "" for unsupported sites.
func (v Video) EmbedURL() string {
	if v.Key == "" {
		return ""
	}
	switch v.Site {
	case "YouTube":
		return "https://www.youtube.com/embed/" + v.Key
	case "Vimeo":
		return "https://player.vimeo.com/video/" + v.Key
	default:
		return ""
	}
}

// VideosResponse models the /movie/{id}/videos payload.
type VideosResponse struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// CastMember is a credited actor.
type CastMember struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Character          string  `json:"character"`
	CreditID           string  `json:"credit_id"`
	Order              int     `json:"order"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Gender             int     `json:"gender"`
	Popularity         float64 `json:"popularity"`
}

// CrewMember is a credited crew person.
type CrewMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	CreditID    string  `json:"credit_id"`
	ProfilePath string  `json:"profile_path"`
	Gender      int     `json:"gender"`
	Popularity  float64 `json:"popularity"`
}

// JobDirector is the CrewMember.Job value for directors.
const JobDirector = "Director"

// Credits models the /movie/{id}/credits payload.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}
