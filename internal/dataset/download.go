package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
)

// DefaultURL es el dataset público de IMDb 2000-2022 (actores prolíficos).
const DefaultURL = "https://github.com/cbuntain/umd.inst414/blob/main/data/imdb_movies_2000to2022.prolific.json?raw=true"

// Download hace un GET a url y guarda el cuerpo tal cual en path.
// Escribe primero a un temporal en el mismo directorio y solo renombra si
// todo salió bien, así una descarga fallida no deja un archivo a medias.
func Download(ctx context.Context, client *http.Client, url, path string) (int64, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, apperr.IO("build request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, apperr.IO("download dataset", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, apperr.IO("download dataset", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, apperr.IO("create data dir", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.part")
	if err != nil {
		return 0, apperr.IO("create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op después del rename

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return 0, apperr.IO("write dataset", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, apperr.IO("write dataset", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, apperr.IO("move dataset into place", err)
	}

	log.Info().Str("component", "dataset").Str("path", path).Int64("bytes", n).Msg("dataset descargado")
	return n, nil
}

// Ensure deja un dataset válido en path antes de correr cualquier pipeline.
// Con fetch=true siempre descarga y un fallo aborta (nada de analizar datos
// viejos). Con fetch=false exige que el archivo ya exista y no esté vacío.
func Ensure(ctx context.Context, client *http.Client, url, path string, fetch bool) error {
	if fetch {
		_, err := Download(ctx, client, url, path)
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return apperr.IO("stat dataset", err)
	}
	if st.IsDir() {
		return apperr.IO("stat dataset", fmt.Errorf("%s is a directory", path))
	}
	if st.Size() == 0 {
		return apperr.IO("stat dataset", fmt.Errorf("%s is empty", path))
	}
	log.Debug().Str("component", "dataset").Str("path", path).Msg("usando dataset local existente")
	return nil
}
