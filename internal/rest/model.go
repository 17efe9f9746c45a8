package rest

import "time"

type Category struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Alias    string  `json:"alias"`
	Template *string `json:"template,omitempty"`
	IsPage   bool    `json:"isPage"`
}

type Tag struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Alias string `json:"alias"`
}

type Icon struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

type Post struct {
	ID          int        `json:"id"`
	PageTitle   string     `json:"pagetitle"`
	Alias       string     `json:"alias"`
	Content     string     `json:"content"`
	HTML        string     `json:"html"`
	CreatedOn   time.Time  `json:"createdon"`
	PublishedOn *time.Time `json:"publishedon,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`
}

// PostSummary is a post without its content, used by list endpoints.
type PostSummary struct {
	ID          int        `json:"id"`
	PageTitle   string     `json:"pagetitle"`
	Alias       string     `json:"alias"`
	CreatedOn   time.Time  `json:"createdon"`
	PublishedOn *time.Time `json:"publishedon,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
