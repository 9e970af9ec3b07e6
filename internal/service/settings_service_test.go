package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdhnkumar/faculty-econtent/internal/store"
)

func TestGetProfileReturnsDefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Madhankumar C", profile["name"])
	assert.Equal(t, "Assistant Professor", profile["title"])
}

func TestUpdateProfileMergesPartially(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, store.Document{
		"name":  "Dr. X",
		"about": "Researcher",
	})
	require.NoError(t, err)

	merged, err := svc.UpdateProfile(ctx, store.Document{"about": "Teacher"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. X", merged["name"])
	assert.Equal(t, "Teacher", merged["about"])

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged, got)
}

func TestUpdateProfileNestedSocialMerge(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, store.Document{
		"social": map[string]any{"github": "mdhn", "twitter": "mdhn_c"},
	})
	require.NoError(t, err)

	merged, err := svc.UpdateProfile(ctx, store.Document{
		"social": map[string]any{"twitter": "mdhnkumar"},
	})
	require.NoError(t, err)

	social, ok := merged["social"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mdhn", social["github"])
	assert.Equal(t, "mdhnkumar", social["twitter"])
}

func TestGetContentReturnsDefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	content, err := svc.GetContent(context.Background())
	require.NoError(t, err)

	branding, ok := content["branding"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "E-Content", branding["title"])

	hero, ok := content["hero"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, hero["title"])
}

func TestUpdateContentNestedHeroMerge(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.UpdateContent(ctx, store.Document{
		"hero": map[string]any{"title": "Welcome", "ctaPrimary": "Explore"},
	})
	require.NoError(t, err)

	merged, err := svc.UpdateContent(ctx, store.Document{
		"hero": map[string]any{"title": "New Welcome"},
	})
	require.NoError(t, err)

	hero, ok := merged["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New Welcome", hero["title"])
	assert.Equal(t, "Explore", hero["ctaPrimary"])
}
