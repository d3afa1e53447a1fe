// Package dataset lee el corpus NDJSON de películas y lo descarga cuando hace falta.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

// Las líneas del dataset real pueden ser largas (elencos grandes + metadata).
const maxLineBytes = 16 << 20

// rawMovie es la forma de una línea tal como viene en el NDJSON.
// Los punteros distinguen "campo ausente" de "lista vacía".
type rawMovie struct {
	IMDBID string          `json:"imdb_id"`
	Title  string          `json:"title"`
	Year   json.RawMessage `json:"year"`
	Actors *[][]string     `json:"actors"`
	Genres *[]string       `json:"genres"`
}

// Records devuelve una secuencia perezosa de registros. Se corta en el primer
// error: el par (registro vacío, *apperr.ParseError o error de lectura) es lo
// último que se entrega.
func Records(r io.Reader) iter.Seq2[models.MovieRecord, error] {
	return func(yield func(models.MovieRecord, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		line := 0
		for sc.Scan() {
			line++
			b := bytes.TrimSpace(sc.Bytes())
			if len(b) == 0 {
				continue
			}
			rec, err := ParseLine(b)
			if err != nil {
				yield(models.MovieRecord{}, &apperr.ParseError{Line: line, Err: err})
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				yield(models.MovieRecord{}, &apperr.ParseError{Line: line + 1, Err: err})
				return
			}
			yield(models.MovieRecord{}, apperr.IO("read dataset", err))
		}
	}
}

// ParseLine valida una línea JSON y la convierte en MovieRecord.
func ParseLine(b []byte) (models.MovieRecord, error) {
	var raw rawMovie
	if err := json.Unmarshal(b, &raw); err != nil {
		return models.MovieRecord{}, fmt.Errorf("invalid json: %w", err)
	}
	if raw.Actors == nil {
		return models.MovieRecord{}, errors.New(`missing field "actors"`)
	}
	if raw.Genres == nil {
		return models.MovieRecord{}, errors.New(`missing field "genres"`)
	}

	rec := models.MovieRecord{
		IMDBID: raw.IMDBID,
		Title:  raw.Title,
		Year:   parseYear(raw.Year),
		Actors: make([]models.Actor, 0, len(*raw.Actors)),
		Genres: make([]string, 0, len(*raw.Genres)),
	}

	// mismo actor dos veces en el elenco: vale la primera aparición
	seenActor := make(map[string]struct{}, len(*raw.Actors))
	for i, pair := range *raw.Actors {
		if len(pair) != 2 {
			return models.MovieRecord{}, fmt.Errorf("actors[%d]: expected [actor_id, actor_name], got %d elements", i, len(pair))
		}
		if pair[0] == "" {
			return models.MovieRecord{}, fmt.Errorf("actors[%d]: empty actor_id", i)
		}
		if _, dup := seenActor[pair[0]]; dup {
			continue
		}
		seenActor[pair[0]] = struct{}{}
		rec.Actors = append(rec.Actors, models.Actor{ID: pair[0], Name: pair[1]})
	}

	seenGenre := make(map[string]struct{}, len(*raw.Genres))
	for _, g := range *raw.Genres {
		if _, dup := seenGenre[g]; dup {
			continue
		}
		seenGenre[g] = struct{}{}
		rec.Genres = append(rec.Genres, g)
	}

	return rec, nil
}

// year viene como número o string según la fuente; cualquier otra cosa se ignora.
func parseYear(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var y int
	if err := json.Unmarshal(raw, &y); err == nil {
		return &y
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if _, err := fmt.Sscanf(s, "%d", &y); err == nil {
			return &y
		}
	}
	return nil
}

// Open abre el archivo del dataset; el error queda clasificado como ErrIO.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.IO("open dataset", err)
	}
	return f, nil
}
