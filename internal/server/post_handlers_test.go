package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_ListsPosts(t *testing.T) {
	app, srv, _ := setupTestApp(t)
	ctx := context.Background()

	require.NoError(t, srv.postRepo.Create(ctx, &models.Post{Title: "Hello", Content: "first"}))
	require.NoError(t, srv.postRepo.Create(ctx, &models.Post{Title: "World", Content: "second"}))

	resp := newBrowser(t, app).get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	html := body(t, resp)
	assert.Contains(t, html, "Hello")
	assert.Contains(t, html, "World")
}

func TestIndex_Empty(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp := newBrowser(t, app).get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "No posts yet.")
}

func TestShowPost(t *testing.T) {
	app, srv, _ := setupTestApp(t)
	ctx := context.Background()

	post := &models.Post{Title: "Visible", Content: "post body"}
	require.NoError(t, srv.postRepo.Create(ctx, post))
	require.NoError(t, srv.commentRepo.Create(ctx, &models.Comment{PostID: post.ID, Text: "a remark"}))

	b := newBrowser(t, app)

	t.Run("renders post with comments", func(t *testing.T) {
		resp := b.get("/post/1")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		html := body(t, resp)
		assert.Contains(t, html, "Visible")
		assert.Contains(t, html, "post body")
		assert.Contains(t, html, "a remark")
	})

	t.Run("missing post", func(t *testing.T) {
		resp := b.get("/post/99")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := b.get("/post/abc")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAddComment_DuplicateSubmissionAppendsTwice(t *testing.T) {
	app, srv, db := setupTestApp(t)
	ctx := context.Background()

	post := &models.Post{Title: "Commented", Content: "c"}
	require.NoError(t, srv.postRepo.Create(ctx, post))

	b := newBrowser(t, app)
	form := url.Values{"comment": {"nice"}}

	resp := b.postForm("/post/1", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "nice")

	// Same POST again: the comment is appended a second time, not deduplicated.
	resp = b.postForm("/post/1", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, strings.Count(body(t, resp), "<li>nice</li>"))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddComment_EmptyComment(t *testing.T) {
	app, srv, db := setupTestApp(t)
	ctx := context.Background()

	require.NoError(t, srv.postRepo.Create(ctx, &models.Post{Title: "T", Content: "C"}))

	resp := newBrowser(t, app).postForm("/post/1", url.Values{"comment": {""}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Comment text is required")

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddComment_MissingPost(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp := newBrowser(t, app).postForm("/post/42", url.Values{"comment": {"into the void"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
