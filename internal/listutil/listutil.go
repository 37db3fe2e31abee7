// Package listutil computes aggregate statistics over a list of blogs.
package listutil

import (
	"bloglist/internal/domain"
)

// BlogSummary is the subset of a blog reported by FavouriteBlog
type BlogSummary struct {
	Title  string `json:"title"`  // Blog title
	Author string `json:"author"` // Blog author
	Likes  int    `json:"likes"`  // Like count
}

// AuthorCount pairs an author with a tally
type AuthorCount struct {
	Author string `json:"author"` // Author name
	Count  int    `json:"count"`  // Tally: blogs or likes
}

// TotalLikes sums the like counts of all blogs
func TotalLikes(blogs []domain.Blog) int {
	total := 0
	for i := range blogs {
		total += blogs[i].Likes
	}
	return total
}

// FavouriteBlog returns the first blog with the highest like count,
// or nil for an empty list
func FavouriteBlog(blogs []domain.Blog) *BlogSummary {
	if len(blogs) == 0 {
		return nil
	}
	favourite := &blogs[0]
	for i := range blogs {
		if blogs[i].Likes > favourite.Likes {
			favourite = &blogs[i]
		}
	}
	return &BlogSummary{Title: favourite.Title, Author: favourite.Author, Likes: favourite.Likes}
}

// MostBlogs returns the author with the most blogs and the count,
// or nil for an empty list
func MostBlogs(blogs []domain.Blog) *AuthorCount {
	counts := map[string]int{}
	for i := range blogs {
		counts[blogs[i].Author]++
	}
	return topAuthor(blogs, counts)
}

// MostLikes returns the author with the most accumulated likes,
// or nil for an empty list
func MostLikes(blogs []domain.Blog) *AuthorCount {
	likes := map[string]int{}
	for i := range blogs {
		likes[blogs[i].Author] += blogs[i].Likes
	}
	return topAuthor(blogs, likes)
}

// topAuthor picks the highest-tallied author, breaking ties by first
// appearance in the list
func topAuthor(blogs []domain.Blog, tally map[string]int) *AuthorCount {
	if len(blogs) == 0 {
		return nil
	}
	var best *AuthorCount
	seen := map[string]bool{}
	for i := range blogs {
		author := blogs[i].Author
		if seen[author] {
			continue
		}
		seen[author] = true
		if best == nil || tally[author] > best.Count {
			best = &AuthorCount{Author: author, Count: tally[author]}
		}
	}
	return best
}
