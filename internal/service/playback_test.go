package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmcdole/gmes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay_Success(t *testing.T) {
	h := newHarness(t)
	h.lib.LoadCatalog(context.Background())

	require.NoError(t, h.lib.Play(context.Background(), "a", "Foo"))

	assert.Equal(t, domain.ViewerPlaying, h.lib.State())
	url, title := h.lib.Current()
	assert.Equal(t, "a", url)
	assert.Equal(t, "Foo", title)
	assert.Equal(t, "<p>foo</p>", h.lib.Markup())
	assert.Equal(t, []string{"<p>foo</p>"}, h.view.loads)
	assert.Equal(t, []string{"http://sandbox.test/play/1"}, h.launcher.opened)
	assert.Equal(t, LabelFavorite, h.lib.FavoriteLabel())
	assert.Empty(t, h.notes.notes)
}

func TestPlay_NetworkFailureStaysOnGrid(t *testing.T) {
	h := newHarness(t)
	h.lib.LoadCatalog(context.Background())
	h.src.contentErr = errNetwork

	err := h.lib.Play(context.Background(), "a", "Foo")

	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
	assert.Equal(t, domain.ViewerGrid, h.lib.State())
	require.Len(t, h.notes.notes, 1)
	assert.Contains(t, h.notes.notes[0].Message, "Foo")
	assert.Equal(t, domain.NotifyWarning, h.notes.notes[0].Level)
	assert.Empty(t, h.view.loads)
	assert.Empty(t, h.launcher.opened)
}

func TestPlay_MissingURL(t *testing.T) {
	h := newHarness(t)

	err := h.lib.Play(context.Background(), "", "Foo")
	assert.ErrorIs(t, err, domain.ErrMissingURL)
	require.Len(t, h.notes.notes, 1)
	assert.Equal(t, "Foo - files missing!", h.notes.notes[0].Message)

	_ = h.lib.Play(context.Background(), "", "")
	assert.Equal(t, "Gme - files missing!", h.notes.notes[1].Message)
	assert.Equal(t, domain.ViewerGrid, h.lib.State())
}

func TestPlay_EmptyNameUsesDefaultTitle(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.lib.Play(context.Background(), "a", ""))

	_, title := h.lib.Current()
	assert.Equal(t, "Unnamed Gme", title)
}

func TestPlay_ViewLoadFailure(t *testing.T) {
	h := newHarness(t)
	h.view.loadErr = errors.New("not started")

	assert.Error(t, h.lib.Play(context.Background(), "a", "Foo"))
	assert.Equal(t, domain.ViewerGrid, h.lib.State())
	assert.Len(t, h.notes.notes, 1)
}

func TestPlay_OverlappingLoadsKeepLatest(t *testing.T) {
	h := newHarness(t)

	first, err := h.lib.BeginPlay("a", "Foo")
	require.NoError(t, err)
	second, err := h.lib.BeginPlay("b", "Bar")
	require.NoError(t, err)
	assert.Greater(t, second, first)

	require.NoError(t, h.lib.FinishPlay(second, "b", "Bar", "<p>bar</p>", nil))
	err = h.lib.FinishPlay(first, "a", "Foo", "<p>foo</p>", nil)
	assert.ErrorIs(t, err, domain.ErrStaleRequest)

	url, _ := h.lib.Current()
	assert.Equal(t, "b", url)
	assert.Equal(t, []string{"<p>bar</p>"}, h.view.loads)
}

func TestPlay_StaleFailureIsSilent(t *testing.T) {
	h := newHarness(t)

	first, _ := h.lib.BeginPlay("a", "Foo")
	_, _ = h.lib.BeginPlay("b", "Bar")

	assert.ErrorIs(t, h.lib.FinishPlay(first, "a", "Foo", "", errNetwork), domain.ErrStaleRequest)
	assert.Empty(t, h.notes.notes)
}

func TestClose_ReturnsToGridAndClears(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.lib.Play(context.Background(), "a", "Foo"))

	h.lib.Close()

	assert.Equal(t, domain.ViewerGrid, h.lib.State())
	url, title := h.lib.Current()
	assert.Empty(t, url)
	assert.Empty(t, title)
	assert.Empty(t, h.lib.Markup())
	assert.Empty(t, h.lib.ViewURL())
	assert.Equal(t, 1, h.view.cleared)
	assert.Empty(t, h.lib.FavoriteLabel())
}

func TestClose_InvalidatesInFlightLoad(t *testing.T) {
	h := newHarness(t)
	token, err := h.lib.BeginPlay("a", "Foo")
	require.NoError(t, err)

	h.lib.Close()

	assert.ErrorIs(t, h.lib.FinishPlay(token, "a", "Foo", "<p>foo</p>", nil), domain.ErrStaleRequest)
	assert.Equal(t, domain.ViewerGrid, h.lib.State())
}

func TestRefresh_ReappliesSameMarkup(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.lib.Play(context.Background(), "a", "Foo"))

	// Content changes upstream must not be picked up by refresh
	h.src.content["a"] = "<p>changed</p>"

	require.NoError(t, h.lib.Refresh())

	assert.Equal(t, domain.ViewerPlaying, h.lib.State())
	assert.Equal(t, []string{"<p>foo</p>", "<p>foo</p>"}, h.view.loads)
	assert.Equal(t, "http://sandbox.test/play/2", h.lib.ViewURL())
	assert.Len(t, h.launcher.opened, 2)
}

func TestRefresh_RequiresOpenItem(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.lib.Refresh(), domain.ErrNoContent)
	assert.ErrorIs(t, h.lib.Fullscreen(), domain.ErrNoContent)
}

func TestFullscreen(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.lib.Play(context.Background(), "a", "Foo"))

	require.NoError(t, h.lib.Fullscreen())
	assert.Equal(t, []string{h.lib.ViewURL()}, h.launcher.fullscreened)

	h.launcher.fullscreenErr = errors.New("none")
	assert.Error(t, h.lib.Fullscreen())
	assert.Equal(t, "Fullscreen is not available", h.notes.notes[len(h.notes.notes)-1].Message)
}

func TestToggleCurrentFavorite_SyncsLabel(t *testing.T) {
	h := newHarness(t)
	h.lib.LoadCatalog(context.Background())

	_, err := h.lib.ToggleCurrentFavorite()
	assert.ErrorIs(t, err, domain.ErrNoContent)

	require.NoError(t, h.lib.Play(context.Background(), "b", "Bar"))
	added, err := h.lib.ToggleCurrentFavorite()
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, LabelFavorited, h.lib.FavoriteLabel())
	assert.Equal(t, []domain.FavoriteEntry{{URL: "b", Title: "Bar"}}, h.store.entries)

	_, err = h.lib.ToggleCurrentFavorite()
	require.NoError(t, err)
	assert.Equal(t, LabelFavorite, h.lib.FavoriteLabel())
}

func TestOpenView(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.lib.OpenView(), domain.ErrNoContent)

	require.NoError(t, h.lib.Play(context.Background(), "a", "Foo"))
	require.NoError(t, h.lib.OpenView())
	assert.Len(t, h.launcher.opened, 2)
}
