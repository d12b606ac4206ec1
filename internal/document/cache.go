package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/database"
	"github.com/jask/hypertabs/internal/database/repository"
	"github.com/jask/hypertabs/internal/markup"
)

// Fetcher returns raw document bytes.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// CachedLoader stores every successfully parsed document and serves the
// cached copy when a fetch fails.
type CachedLoader struct {
	Fetcher   Fetcher
	Documents *repository.DocumentRepo
	Log       zerolog.Logger
}

func (l *CachedLoader) Load(ctx context.Context, url string) (*markup.Node, error) {
	body, fetchErr := l.Fetcher.Fetch(ctx, url)
	if fetchErr == nil {
		doc, err := markup.Parse(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		rev := ulid.Make().String()
		if err := l.Documents.Put(ctx, repository.Document{URL: url, Revision: rev, Body: body, FetchedAt: database.Now()}); err != nil {
			l.Log.Warn().Err(err).Str("url", url).Msg("cache document")
		}
		return doc, nil
	}

	cached, err := l.Documents.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w (cache: %v)", fetchErr, err)
	}
	if cached == nil {
		return nil, fetchErr
	}
	l.Log.Warn().Err(fetchErr).Str("url", url).Str("revision", cached.Revision).Msg("serving cached document")
	return markup.Parse(bytes.NewReader(cached.Body))
}
