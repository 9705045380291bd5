package services

import (
	"strings"
	"testing"

	"devconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostRequest() models.PostRequest {
	return models.PostRequest{
		Title:     "Ищем фронтендера",
		Content:   "Описание вакансии",
		Type:      models.PostTypeVacancy,
		Direction: "Frontend Developer",
	}
}

func TestCreatePostValidation(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	tests := []struct {
		name   string
		mutate func(*models.PostRequest)
	}{
		{"missing title", func(r *models.PostRequest) { r.Title = "" }},
		{"missing content", func(r *models.PostRequest) { r.Content = "" }},
		{"missing direction", func(r *models.PostRequest) { r.Direction = "" }},
		{"title too long", func(r *models.PostRequest) { r.Title = strings.Repeat("a", 101) }},
		{"content too long", func(r *models.PostRequest) { r.Content = strings.Repeat("a", 20001) }},
		{"unknown type", func(r *models.PostRequest) { r.Type = "Реклама" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPostRequest()
			tt.mutate(&req)

			_, err := service.CreatePost(1, req)
			assert.IsType(t, models.ErrorValidation{}, err)
		})
	}
}

func TestCreateAndGetPost(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	created, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.AuthorID)
	assert.Zero(t, created.Likes)

	got, err := service.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestUpdatePostOwnership(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	post, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	_, err = service.UpdatePost(2, post.ID, validPostRequest())
	assert.IsType(t, models.ErrorForbidden{}, err)

	updated := validPostRequest()
	updated.Title = "Вакансия закрыта"
	result, err := service.UpdatePost(1, post.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, "Вакансия закрыта", result.Title)
}

func TestDeletePostOwnership(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	post, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	err = service.DeletePost(2, post.ID)
	assert.IsType(t, models.ErrorForbidden{}, err)

	require.NoError(t, service.DeletePost(1, post.ID))

	_, err = service.GetPost(post.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestLikeTwiceConflicts(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	post, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	likes, err := service.LikePost(2, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)

	_, err = service.LikePost(2, post.ID)
	require.IsType(t, models.ErrorConflict{}, err)
	assert.Equal(t, "Already liked", err.Error())
}

func TestLikesCountEqualsSetSize(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	post, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	_, err = service.LikePost(2, post.ID)
	require.NoError(t, err)
	_, err = service.LikePost(3, post.ID)
	require.NoError(t, err)

	got, err := service.GetPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, len(got.LikedBy), got.Likes)
	assert.ElementsMatch(t, []uint{2, 3}, got.LikedBy)
}

func TestUnlikeIsIdempotent(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	post, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	_, err = service.LikePost(2, post.ID)
	require.NoError(t, err)

	likes, err := service.UnlikePost(2, post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)

	// Removing an absent like is not an error.
	likes, err = service.UnlikePost(2, post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)

	// The like can come back after an unlike.
	likes, err = service.LikePost(2, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, likes)
}

func TestLikeMissingPost(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	_, err := service.LikePost(1, 99)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestGetPostsFilters(t *testing.T) {
	service := NewPostService(newFakePostRepo())

	_, err := service.CreatePost(1, validPostRequest())
	require.NoError(t, err)

	contentPost := validPostRequest()
	contentPost.Type = models.PostTypeContent
	contentPost.Direction = "Designer"
	_, err = service.CreatePost(1, contentPost)
	require.NoError(t, err)

	posts, err := service.GetPosts(models.PostListParams{Type: string(models.PostTypeVacancy)})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, models.PostTypeVacancy, posts[0].Type)

	posts, err = service.GetPosts(models.PostListParams{Direction: "Designer"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Designer", posts[0].Direction)

	// Newest first when unfiltered.
	posts, err = service.GetPosts(models.PostListParams{})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, models.PostTypeContent, posts[0].Type)
}
