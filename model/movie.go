package model

type Movie struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Rating      float64  `json:"rating"`
	Languages   []string `json:"languages"`
	Poster      string   `json:"poster"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	ReleaseDate string   `json:"releaseDate"`
}

type Theater struct {
	Id         int      `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Facilities []string `json:"facilities"`
	Image      string   `json:"image"`
}

type Showtime struct {
	Theater string   `json:"theater"`
	Times   []string `json:"times"`
	Price   int      `json:"price"`
}
