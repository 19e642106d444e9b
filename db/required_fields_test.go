package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/socialgraph/models"
)

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	g := newTestDB(t)
	owner := createUser(t, g, "owner@x.com", "Owner")
	post := createPost(t, g, owner.ID, "hi")

	tests := []struct {
		name   string
		column string
		create func() error
	}{
		{
			name:   "user without email",
			column: "user.email",
			create: func() error {
				_, err := NewUserRepo(g).CreateUser(&models.User{FirstName: "A"})
				return err
			},
		},
		{
			name:   "user without first name",
			column: "user.first_name",
			create: func() error {
				_, err := NewUserRepo(g).CreateUser(&models.User{Email: "a@x.com"})
				return err
			},
		},
		{
			name:   "post without caption",
			column: "post.caption",
			create: func() error {
				return NewPostRepo(g).CreatePost(&models.Post{UserID: owner.ID, Image: "img.png"})
			},
		},
		{
			name:   "post without image",
			column: "post.image",
			create: func() error {
				return NewPostRepo(g).CreatePost(&models.Post{UserID: owner.ID, Caption: "hi"})
			},
		},
		{
			name:   "comment without text",
			column: "comment.comment_text",
			create: func() error {
				return NewCommentRepo(g).CreateComment(&models.Comment{AuthorID: owner.ID, PostID: post.ID})
			},
		},
		{
			name:   "media without url",
			column: "media.url",
			create: func() error {
				return NewMediaRepo(g).SaveMedia(&models.Media{PostID: post.ID})
			},
		},
		{
			name:   "media type without name",
			column: "mediatype.name",
			create: func() error {
				return NewMediaRepo(g).CreateMediaType(&models.MediaType{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "NOT NULL constraint failed: "+tt.column)
		})
	}

	var users, posts int64
	require.NoError(t, g.DB.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, g.DB.Model(&models.Post{}).Count(&posts).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), posts)
}
