package models

// Actor es un miembro del elenco tal como viene en el dataset: [actor_id, actor_name].
type Actor struct {
	ID   string `json:"actorId" bson:"actorId"`
	Name string `json:"actorName" bson:"actorName"`
}

// MovieRecord es una línea del NDJSON ya validada.
// Actors no repite ids y Genres no repite tags (es un conjunto).
type MovieRecord struct {
	IMDBID string   `json:"imdbId,omitempty" bson:"imdbId,omitempty"`
	Title  string   `json:"title,omitempty" bson:"title,omitempty"`
	Year   *int     `json:"year,omitempty" bson:"year,omitempty"`
	Actors []Actor  `json:"actors" bson:"actors"`
	Genres []string `json:"genres" bson:"genres"`
}
