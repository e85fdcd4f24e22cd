package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"blogapi/internal/model"
	appErr "blogapi/internal/pkg/errors"
	"blogapi/internal/repo"
	"blogapi/test/testutil"
)

func TestBlogRepoCRUD(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	blogs, err := repo.NewBlogRepo(db)
	require.NoError(t, err)

	blog := &model.Blog{
		Title:       "T",
		Content:     "C",
		Author:      "Alice",
		AuthorEmail: "a@x.com",
		CreatedAt:   time.Now().Truncate(time.Millisecond),
	}
	require.NoError(t, blogs.Create(context.Background(), blog))
	require.False(t, blog.ID.IsZero())

	fetched, err := blogs.GetByID(context.Background(), blog.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "T", fetched.Title)
	require.Equal(t, "a@x.com", fetched.AuthorEmail)

	fetched.Title = "T2"
	fetched.Content = "C2"
	fetched.CreatedAt = time.Now().Truncate(time.Millisecond)
	updated, err := blogs.Update(context.Background(), fetched)
	require.NoError(t, err)
	require.Equal(t, "T2", updated.Title)
	require.Equal(t, "a@x.com", updated.AuthorEmail)

	require.NoError(t, blogs.Delete(context.Background(), blog.ID.Hex()))
	err = blogs.Delete(context.Background(), blog.ID.Hex())
	require.ErrorIs(t, err, appErr.ErrNotFound)
	_, err = blogs.GetByID(context.Background(), blog.ID.Hex())
	require.ErrorIs(t, err, appErr.ErrNotFound)
	_, err = blogs.GetByID(context.Background(), "bogus")
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestBlogRepoListAndCount(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	blogs, err := repo.NewBlogRepo(db)
	require.NoError(t, err)

	base := time.Now().Truncate(time.Millisecond)
	for i := 0; i < 25; i++ {
		author := "a@x.com"
		if i%2 == 1 {
			author = "b@x.com"
		}
		require.NoError(t, blogs.Create(context.Background(), &model.Blog{
			Title:       fmt.Sprintf("post %d", i),
			Content:     "c",
			AuthorEmail: author,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	total, err := blogs.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(25), total)

	page, err := blogs.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	require.Equal(t, "post 24", page[0].Title)

	last, err := blogs.List(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, last, 5)

	mine, err := blogs.ListByAuthorEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 13)
	for _, item := range mine {
		require.Equal(t, "a@x.com", item.AuthorEmail)
	}
}
