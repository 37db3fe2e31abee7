package domain

// User Model
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username     string `gorm:"unique;not null" json:"username"` // Unique username
	Name         string `json:"name"`                            // Optional display name
	PasswordHash string `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
	BlogIDs      []uint `gorm:"serializer:json" json:"-"`        // Owned blog ids in creation order
}

// NewUser is the inbound payload for user creation
type NewUser struct {
	Username string `json:"username"` // Desired username
	Name     string `json:"name"`     // Optional display name
	Password string `json:"password"` // Plaintext password, hashed before storage
}

// BlogRef is the subset of a Blog embedded in a user representation
type BlogRef struct {
	ID     uint   `json:"id"`     // Blog ID
	Title  string `json:"title"`  // Blog title
	Author string `json:"author"` // Blog author
	URL    string `json:"url"`    // Blog URL
	Likes  int    `json:"likes"`  // Like count
}

// UserView is the outward representation of a User with its blogs expanded
type UserView struct {
	ID       uint      `json:"id"`       // User ID
	Username string    `json:"username"` // Username
	Name     string    `json:"name"`     // Display name
	Blogs    []BlogRef `json:"blogs"`    // Owned blogs
}

// View builds the outward representation for a user and its blogs.
// The password hash is excluded by construction.
func (u *User) View(blogs []Blog) UserView {
	refs := make([]BlogRef, 0, len(blogs))
	for _, b := range blogs {
		refs = append(refs, BlogRef{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes})
	}
	return UserView{ID: u.ID, Username: u.Username, Name: u.Name, Blogs: refs}
}
