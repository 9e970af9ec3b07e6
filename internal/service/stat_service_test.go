package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhnkumar/faculty-econtent/pkg/storage"
)

func TestStatsOnEmptyStore(t *testing.T) {
	svc := NewStatService(newTestStore(t))
	ctx := context.Background()

	public, err := svc.Public(ctx)
	require.NoError(t, err)
	assert.Equal(t, &PublicStats{}, public)

	admin, err := svc.Admin(ctx)
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{}, admin)
}

func TestStatsAggregateCountsAndTotals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	search := NewSearchService(nil, st)
	videos := NewVideoService(st, search)
	contacts := NewContactService(st)
	stats := NewStatService(st)

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	materials := NewMaterialService(st, files, search)

	v1, err := videos.Create(ctx, CreateVideoInput{Title: "A", Subject: "S", YoutubeID: "a"})
	require.NoError(t, err)
	_, err = videos.Create(ctx, CreateVideoInput{Title: "B", Subject: "S", YoutubeID: "b"})
	require.NoError(t, err)

	m1, err := materials.Upload(ctx, UploadMaterialInput{
		Title:    "Notes",
		Category: "DBMS",
		File:     &UploadFile{Reader: strings.NewReader("x"), FileName: "n.pdf", Size: 1},
	})
	require.NoError(t, err)

	// 3 views on the first video, 2 downloads of the material.
	for i := 0; i < 3; i++ {
		_, err = videos.GetByID(ctx, v1.ID)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, _, err = materials.Download(ctx, m1.ID)
		require.NoError(t, err)
	}

	c1, err := contacts.Submit(ctx, SubmitContactInput{Name: "A", Email: "a@x.com", Message: "m"})
	require.NoError(t, err)
	_, err = contacts.Submit(ctx, SubmitContactInput{Name: "B", Email: "b@x.com", Message: "m"})
	require.NoError(t, err)
	_, err = contacts.MarkRead(ctx, c1.ID)
	require.NoError(t, err)

	public, err := stats.Public(ctx)
	require.NoError(t, err)
	assert.Equal(t, &PublicStats{Videos: 2, Materials: 1, Views: 3, Downloads: 2}, public)

	admin, err := stats.Admin(ctx)
	require.NoError(t, err)
	assert.Equal(t, &AdminStats{
		Counts: AdminCounts{Videos: 2, Materials: 1, Messages: 2, UnreadMessages: 1},
		Totals: AdminTotals{Views: 3, Downloads: 2},
	}, admin)
}
