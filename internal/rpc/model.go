package rpc

import (
	"time"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

type Post struct {
	PostID      int        `json:"postId"`
	PageTitle   string     `json:"pageTitle"`
	Alias       string     `json:"alias"`
	Content     string     `json:"content"`
	CreatedOn   time.Time  `json:"createdOn"`
	PublishedOn *time.Time `json:"publishedOn,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	UserID      *int       `json:"userId,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`
}

type PostSummary struct {
	PostID      int        `json:"postId"`
	PageTitle   string     `json:"pageTitle"`
	Alias       string     `json:"alias"`
	CreatedOn   time.Time  `json:"createdOn"`
	PublishedOn *time.Time `json:"publishedOn,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	UserID      *int       `json:"userId,omitempty"`
}

type Category struct {
	CategoryID int     `json:"categoryId"`
	Title      string  `json:"title"`
	Alias      string  `json:"alias"`
	Template   *string `json:"template,omitempty"`
	IsPage     bool    `json:"isPage"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Title string `json:"title"`
	Alias string `json:"alias"`
}

type User struct {
	UserID        int       `json:"userId"`
	Name          string    `json:"name"`
	Authenticated bool      `json:"authenticated"`
	CreatedOn     time.Time `json:"createdOn"`
}

type Icon struct {
	IconID  int    `json:"iconId"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type PostAddRequest struct {
	//pageTitle post title
	PageTitle string `json:"pageTitle"`
	//alias unique URL slug
	Alias string `json:"alias"`
	//content markdown body
	Content string `json:"content"`
	//publishedOn publication time, empty means draft
	PublishedOn *time.Time `json:"publishedOn,omitempty"`
	//categoryId optional category
	CategoryID *int `json:"categoryId,omitempty"`
	//userId optional author
	UserID *int `json:"userId,omitempty"`
}

func (r PostAddRequest) ToModel() *domain.Post {
	return &domain.Post{
		PageTitle:   r.PageTitle,
		Alias:       r.Alias,
		Content:     r.Content,
		PublishedOn: r.PublishedOn,
		CategoryID:  r.CategoryID,
		UserID:      r.UserID,
	}
}

type PostUpdateRequest struct {
	//id post numeric ID
	ID int `json:"id"`
	//pageTitle post title
	PageTitle string `json:"pageTitle"`
	//alias unique URL slug
	Alias string `json:"alias"`
	//content markdown body
	Content string `json:"content"`
	//publishedOn publication time, empty clears it back to draft
	PublishedOn *time.Time `json:"publishedOn,omitempty"`
	//categoryId optional category, empty clears it
	CategoryID *int `json:"categoryId,omitempty"`
	//userId optional author, empty clears it
	UserID *int `json:"userId,omitempty"`
}

func (r PostUpdateRequest) ToModel() *domain.Post {
	return &domain.Post{
		ID:          r.ID,
		PageTitle:   r.PageTitle,
		Alias:       r.Alias,
		Content:     r.Content,
		PublishedOn: r.PublishedOn,
		CategoryID:  r.CategoryID,
		UserID:      r.UserID,
	}
}

type PostTagRequest struct {
	//postId post numeric ID
	PostID int `json:"postId"`
	//tagId tag numeric ID
	TagID int `json:"tagId"`
}

type CategoryAddRequest struct {
	//title category title
	Title string `json:"title"`
	//alias unique URL slug
	Alias string `json:"alias"`
	//template optional render template name
	Template *string `json:"template,omitempty"`
	//isPage marks the category posts as standalone pages
	IsPage bool `json:"isPage"`
}

func (r CategoryAddRequest) ToModel() *domain.Category {
	return &domain.Category{
		Title:    r.Title,
		Alias:    r.Alias,
		Template: r.Template,
		IsPage:   r.IsPage,
	}
}

type CategoryUpdateRequest struct {
	//id category numeric ID
	ID int `json:"id"`
	//title category title
	Title string `json:"title"`
	//alias unique URL slug
	Alias string `json:"alias"`
	//template optional render template name, empty clears it
	Template *string `json:"template,omitempty"`
	//isPage marks the category posts as standalone pages
	IsPage bool `json:"isPage"`
}

func (r CategoryUpdateRequest) ToModel() *domain.Category {
	return &domain.Category{
		ID:       r.ID,
		Title:    r.Title,
		Alias:    r.Alias,
		Template: r.Template,
		IsPage:   r.IsPage,
	}
}

type TagAddRequest struct {
	//title tag title
	Title string `json:"title"`
	//alias unique URL slug
	Alias string `json:"alias"`
}

func (r TagAddRequest) ToModel() *domain.Tag {
	return &domain.Tag{Title: r.Title, Alias: r.Alias}
}

type TagUpdateRequest struct {
	//id tag numeric ID
	ID int `json:"id"`
	//title tag title
	Title string `json:"title"`
	//alias unique URL slug
	Alias string `json:"alias"`
}

func (r TagUpdateRequest) ToModel() *domain.Tag {
	return &domain.Tag{ID: r.ID, Title: r.Title, Alias: r.Alias}
}

type UserAddRequest struct {
	//name unique login name
	Name string `json:"name"`
	//password plain password, hashed before storage
	Password string `json:"password"`
}

func (r UserAddRequest) ToModel() *domain.User {
	return &domain.User{Name: r.Name, Password: r.Password}
}

type UserUpdateRequest struct {
	//id user numeric ID
	ID int `json:"id"`
	//name unique login name
	Name string `json:"name"`
	//password new plain password, hashed before storage
	Password string `json:"password"`
	//authenticated session flag
	Authenticated bool `json:"authenticated"`
}

func (r UserUpdateRequest) ToModel() *domain.User {
	return &domain.User{
		ID:            r.ID,
		Name:          r.Name,
		Password:      r.Password,
		Authenticated: r.Authenticated,
	}
}

type IconAddRequest struct {
	//title unique icon title
	Title string `json:"title"`
	//url unique link target
	URL string `json:"url"`
	//content inline SVG or markup
	Content string `json:"content"`
}

func (r IconAddRequest) ToModel() *domain.Icon {
	return &domain.Icon{Title: r.Title, URL: r.URL, Content: r.Content}
}

type IconUpdateRequest struct {
	//id icon numeric ID
	ID int `json:"id"`
	//title unique icon title
	Title string `json:"title"`
	//url unique link target
	URL string `json:"url"`
	//content inline SVG or markup
	Content string `json:"content"`
}

func (r IconUpdateRequest) ToModel() *domain.Icon {
	return &domain.Icon{ID: r.ID, Title: r.Title, URL: r.URL, Content: r.Content}
}

type IDRequest struct {
	//id numeric ID
	ID int `json:"id"`
}
