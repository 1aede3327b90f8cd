package movies

import "marquee/internal/tmdb"

// DefaultMainCastSize is the number of leading cast members shown on a detail page.
const DefaultMainCastSize = 4

// Casting summarises a movie's credits. Both slices are never nil.
type Casting struct {
	MainCast  []tmdb.CastMember `json:"mainCast"`
	Directors []tmdb.CrewMember `json:"directors"`
}

// FirstTrailer returns the first video typed as a trailer, in list order, or nil.
func FirstTrailer(videos []tmdb.Video) *tmdb.Video {
	for i := range videos {
		if videos[i].Type == tmdb.VideoTypeTrailer {
			video := videos[i]
			return &video
		}
	}
	return nil
}

// MainCast returns a copy of the first n cast members, order preserved.
func MainCast(cast []tmdb.CastMember, n int) []tmdb.CastMember {
	if n < 0 {
		n = 0
	}
	if n > len(cast) {
		n = len(cast)
	}
	out := make([]tmdb.CastMember, n)
	copy(out, cast[:n])
	return out
}

// Directors returns the crew members whose job is Director, order preserved.
func Directors(crew []tmdb.CrewMember) []tmdb.CrewMember {
	out := make([]tmdb.CrewMember, 0, 1)
	for _, person := range crew {
		if person.Job == tmdb.JobDirector {
			out = append(out, person)
		}
	}
	return out
}
