package listutil

import (
	"testing"

	"bloglist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBlogs = []domain.Blog{
	{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: 4, Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: 6, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	assert.Equal(t, 0, TotalLikes(nil))
	assert.Equal(t, 36, TotalLikes(testBlogs))

	single := testBlogs[:1]
	assert.Equal(t, 7, TotalLikes(single))
}

func TestFavouriteBlog(t *testing.T) {
	assert.Nil(t, FavouriteBlog(nil))

	favourite := FavouriteBlog(testBlogs)
	require.NotNil(t, favourite)
	assert.Equal(t, BlogSummary{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12}, *favourite)
}

func TestFavouriteBlog_TieTakesFirst(t *testing.T) {
	blogs := []domain.Blog{
		{Title: "First", Author: "A", Likes: 3},
		{Title: "Second", Author: "B", Likes: 3},
	}
	favourite := FavouriteBlog(blogs)
	require.NotNil(t, favourite)
	assert.Equal(t, "First", favourite.Title)
}

func TestMostBlogs(t *testing.T) {
	assert.Nil(t, MostBlogs(nil))

	most := MostBlogs(testBlogs)
	require.NotNil(t, most)
	assert.Equal(t, AuthorCount{Author: "Robert C. Martin", Count: 3}, *most)
}

func TestMostLikes(t *testing.T) {
	assert.Nil(t, MostLikes(nil))

	most := MostLikes(testBlogs)
	require.NotNil(t, most)
	assert.Equal(t, AuthorCount{Author: "Edsger W. Dijkstra", Count: 17}, *most)
}
