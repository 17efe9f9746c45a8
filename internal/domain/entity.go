package domain

import "time"

// Post is the domain record for a blog post or a page. A page is a post
// whose category is in the configured page-category list; there is no
// separate type. Relationship fields are nil unless a relationship-aware
// query filled them, one level deep.
type Post struct {
	ID          int        `json:"id"`
	PageTitle   string     `json:"pagetitle"`
	Alias       string     `json:"alias"`
	Content     string     `json:"content"`
	CreatedOn   time.Time  `json:"createdon"`
	PublishedOn *time.Time `json:"publishedon,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	UserID      *int       `json:"userId,omitempty"`

	Category *Category `json:"category,omitempty"`
	User     *User     `json:"user,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
}

// Published reports whether the post has been published. A nil PublishedOn
// means draft.
func (p *Post) Published() bool {
	return p.PublishedOn != nil
}

type Category struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Alias    string  `json:"alias"`
	Template *string `json:"template,omitempty"`
	IsPage   bool    `json:"isPage"`

	Posts []Post `json:"posts,omitempty"`
}

type Tag struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Alias string `json:"alias"`

	Posts []Post `json:"posts,omitempty"`
}

// User carries the password as an opaque hash. Hashing happens at the
// persistence boundary, never here.
type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Password      string    `json:"-"`
	Authenticated bool      `json:"authenticated"`
	CreatedOn     time.Time `json:"createdon"`

	Posts []Post `json:"posts,omitempty"`
}

func (u *User) String() string {
	return u.Name
}

type Icon struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}
