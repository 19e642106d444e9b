package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/socialgraph/models"
	"gorm.io/gorm"
)

func TestMediaTypes(t *testing.T) {
	g := newTestDB(t)
	repo := NewMediaRepo(g)

	video, err := repo.FindMediaTypeByName(models.MediaTypeVideo)
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeVideo, video.Name)

	gif := &models.MediaType{Name: "gif"}
	require.NoError(t, repo.CreateMediaType(gif))
	assert.NotZero(t, gif.ID)

	err = repo.CreateMediaType(&models.MediaType{Name: "gif"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	_, err = repo.FindMediaTypeByName("hologram")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSaveMedia(t *testing.T) {
	g := newTestDB(t)
	a := createUser(t, g, "a@x.com", "A")
	post := createPost(t, g, a.ID, "hi")
	repo := NewMediaRepo(g)
	audio, err := repo.FindMediaTypeByName(models.MediaTypeAudio)
	require.NoError(t, err)

	media := &models.Media{PostID: post.ID, MediaTypeID: &audio.ID, URL: "https://cdn/a.mp3"}
	require.NoError(t, repo.SaveMedia(media))

	loaded, err := repo.FindMediaByID(media.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Post)
	require.NotNil(t, loaded.MediaType)
	assert.Equal(t, post.ID, loaded.Post.ID)
	assert.Equal(t, models.MediaTypeAudio, loaded.MediaType.Name)

	err = repo.SaveMedia(&models.Media{PostID: post.ID + 100, URL: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	missing := uint(999)
	err = repo.SaveMedia(&models.Media{PostID: post.ID, MediaTypeID: &missing, URL: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestDeleteMediaTypeNullsReference(t *testing.T) {
	g := newTestDB(t)
	a := createUser(t, g, "a@x.com", "A")
	post := createPost(t, g, a.ID, "hi")
	repo := NewMediaRepo(g)

	gif := &models.MediaType{Name: "gif"}
	require.NoError(t, repo.CreateMediaType(gif))
	media := &models.Media{PostID: post.ID, MediaTypeID: &gif.ID, URL: "https://cdn/a.gif"}
	require.NoError(t, repo.SaveMedia(media))

	require.NoError(t, repo.DeleteMediaType(gif.ID))

	loaded, err := repo.FindMediaByID(media.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.MediaTypeID)
	assert.Nil(t, loaded.MediaType)
	assert.Nil(t, loaded.Serialize()["media_type_id"])
}
