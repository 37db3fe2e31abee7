package validation

import (
	"bloglist/internal/domain"
)

// Minimum lengths for user credentials
const (
	MinUsernameLen = 3 // Minimum username length
	MinPasswordLen = 3 // Minimum password length
)

// CheckNewBlog enforces the creation constraints on a blog payload and
// returns the normalized like count. The first violated rule is reported.
func CheckNewBlog(b *domain.NewBlog) (int, error) {
	if b.Title == "" {
		return 0, MissingField("title")
	}
	if b.URL == "" {
		return 0, MissingField("url")
	}
	likes, err := normalizeLikes(b.Likes)
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// CheckBlogUpdate enforces the update constraints on a blog payload.
// Absent fields pass; supplied fields must satisfy the creation rules.
func CheckBlogUpdate(u *domain.BlogUpdate) error {
	if u.Title != nil && *u.Title == "" {
		return MissingField("title")
	}
	if u.URL != nil && *u.URL == "" {
		return MissingField("url")
	}
	if u.Likes != nil && *u.Likes < 0 {
		return InvalidValue("likes")
	}
	return nil
}

// CheckNewUser enforces the creation constraints on a user payload.
// Uniqueness of the username is checked separately against storage.
func CheckNewUser(u *domain.NewUser) error {
	if u.Username == "" {
		return MissingField("username")
	}
	if len(u.Username) < MinUsernameLen {
		return TooShort("username", MinUsernameLen)
	}
	if len(u.Password) < MinPasswordLen {
		return TooShort("password", MinPasswordLen)
	}
	return nil
}

// normalizeLikes defaults an absent like count to 0 and rejects negatives
func normalizeLikes(likes *int) (int, error) {
	if likes == nil {
		return 0, nil
	}
	if *likes < 0 {
		return 0, InvalidValue("likes")
	}
	return *likes, nil
}
