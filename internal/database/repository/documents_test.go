package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/hypertabs/internal/database"
	"github.com/jask/hypertabs/internal/database/repository"
)

func TestDocumentRepoRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.RunMigrations(db), "migrations are idempotent")

	repo := repository.NewDocumentRepo(db)
	missing, err := repo.Get(ctx, "http://example.test/home.xml")
	require.NoError(t, err)
	require.Nil(t, missing)

	now := database.Now()
	require.NoError(t, repo.Put(ctx, repository.Document{URL: "http://example.test/home.xml", Revision: "r1", Body: []byte("<doc/>"), FetchedAt: now}))
	require.NoError(t, repo.Put(ctx, repository.Document{URL: "http://example.test/home.xml", Revision: "r2", Body: []byte("<doc><x/></doc>"), FetchedAt: now}))
	require.NoError(t, repo.Put(ctx, repository.Document{URL: "http://example.test/a.xml", Revision: "r3", Body: []byte("<a/>"), FetchedAt: now}))

	got, err := repo.Get(ctx, "http://example.test/home.xml")
	require.NoError(t, err)
	require.Equal(t, "r2", got.Revision)
	require.Equal(t, "<doc><x/></doc>", string(got.Body))
	require.True(t, now.Equal(got.FetchedAt))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "http://example.test/a.xml", all[0].URL)
}
