package catalog

import "cinebook-tui/model"

// Demo data standing in for a real content backend.
var sampleMovies = []model.Movie{
	{
		Id:          1,
		Title:       "Avengers: Endgame",
		Genre:       "Action, Adventure",
		Rating:      4.5,
		Languages:   []string{"English", "Hindi"},
		Poster:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description: "After the devastating events of Avengers: Infinity War, the universe is in ruins.",
		Duration:    "181 min",
		ReleaseDate: "2024-01-15",
	},
	{
		Id:          2,
		Title:       "The Dark Knight",
		Genre:       "Action, Crime, Drama",
		Rating:      4.8,
		Languages:   []string{"English"},
		Poster:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description: "Batman faces his greatest challenge yet with the Joker terrorizing Gotham City.",
		Duration:    "152 min",
		ReleaseDate: "2024-01-20",
	},
	{
		Id:          3,
		Title:       "Dangal",
		Genre:       "Biography, Drama, Sport",
		Rating:      4.6,
		Languages:   []string{"Hindi"},
		Poster:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description: "A former wrestler trains his daughters to become world-class wrestlers.",
		Duration:    "161 min",
		ReleaseDate: "2024-01-25",
	},
	{
		Id:          4,
		Title:       "Spider-Man: No Way Home",
		Genre:       "Action, Adventure, Fantasy",
		Rating:      4.7,
		Languages:   []string{"English", "Hindi"},
		Poster:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
		Description: "Spider-Man's identity is revealed and he seeks help from Doctor Strange.",
		Duration:    "148 min",
		ReleaseDate: "2024-02-01",
	},
}

var sampleTheaters = []model.Theater{
	{
		Id:         1,
		Name:       "PVR Cinemas",
		Location:   "Phoenix Mall, Mumbai",
		Facilities: []string{"Dolby Atmos", "IMAX", "Recliner"},
		Image:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		Id:         2,
		Name:       "INOX Multiplex",
		Location:   "R City Mall, Mumbai",
		Facilities: []string{"4DX", "Screen X", "Premium"},
		Image:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
	{
		Id:         3,
		Name:       "Cinepolis",
		Location:   "Palladium Mall, Mumbai",
		Facilities: []string{"VIP", "IMAX", "Gourmet"},
		Image:      "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=400",
	},
}

var defaultShowtimes = []model.Showtime{
	{Theater: "PVR Cinemas", Times: []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM"}, Price: 250},
	{Theater: "INOX Multiplex", Times: []string{"11:00 AM", "2:30 PM", "6:00 PM", "9:30 PM"}, Price: 300},
	{Theater: "Cinepolis", Times: []string{"12:00 PM", "3:30 PM", "7:00 PM", "10:30 PM"}, Price: 350},
}

var sampleShowtimes = map[int][]model.Showtime{
	1: defaultShowtimes,
	2: defaultShowtimes,
	3: defaultShowtimes,
	4: defaultShowtimes,
}
