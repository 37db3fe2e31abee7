package domain

// Blog Model
type Blog struct {
	ID     uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Title  string `gorm:"not null" json:"title"`           // Blog title
	Author string `json:"author"`                          // Optional author name
	URL    string `gorm:"not null" json:"url"`             // Blog URL
	Likes  int    `gorm:"not null;default:0" json:"likes"` // Like count, never negative
	UserID uint   `gorm:"index;not null" json:"-"`         // Foreign key to the owning User
	User   User   `json:"-"`                               // Owning user, loaded on demand
}

// NewBlog is the inbound payload for blog creation
type NewBlog struct {
	Title  string `json:"title"`  // Required title
	Author string `json:"author"` // Optional author
	URL    string `json:"url"`    // Required URL
	Likes  *int   `json:"likes"`  // Optional like count, defaults to 0
}

// BlogUpdate is the inbound payload for a field-level blog update.
// Nil fields are left untouched; the owner is never reassignable here.
type BlogUpdate struct {
	Title  *string `json:"title"`  // New title, if set
	Author *string `json:"author"` // New author, if set
	URL    *string `json:"url"`    // New URL, if set
	Likes  *int    `json:"likes"`  // New like count, if set
}

// OwnerRef is the subset of a User embedded in a blog representation
type OwnerRef struct {
	ID       uint   `json:"id"`       // User ID
	Username string `json:"username"` // Username
	Name     string `json:"name"`     // Display name
}

// BlogView is the outward representation of a Blog with its owner expanded
type BlogView struct {
	ID     uint     `json:"id"`     // Blog ID
	Title  string   `json:"title"`  // Blog title
	Author string   `json:"author"` // Author name
	URL    string   `json:"url"`    // Blog URL
	Likes  int      `json:"likes"`  // Like count
	User   OwnerRef `json:"user"`   // Owning user subset
}

// View builds the outward representation with the owner expanded
func (b *Blog) View() BlogView {
	return BlogView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User:   OwnerRef{ID: b.User.ID, Username: b.User.Username, Name: b.User.Name},
	}
}
