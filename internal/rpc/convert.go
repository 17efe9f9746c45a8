package rpc

import "github.com/gunlinux/gunlinux.ru/internal/domain"

func NewPost(p domain.Post) Post {
	post := Post{
		PostID:      p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		Content:     p.Content,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
		UserID:      p.UserID,
		Tags:        NewTags(p.Tags),
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	return post
}

func NewPostSummary(p domain.Post) PostSummary {
	return PostSummary{
		PostID:      p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
		UserID:      p.UserID,
	}
}

func NewPostSummaries(posts []domain.Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, NewPostSummary(posts[i]))
	}

	return summaries
}

func NewCategory(c domain.Category) Category {
	return Category{
		CategoryID: c.ID,
		Title:      c.Title,
		Alias:      c.Alias,
		Template:   c.Template,
		IsPage:     c.IsPage,
	}
}

func NewCategories(categories []domain.Category) []Category {
	out := make([]Category, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategory(categories[i]))
	}

	return out
}

func NewTag(t domain.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Title: t.Title,
		Alias: t.Alias,
	}
}

func NewTags(tags []domain.Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for i := range tags {
		out = append(out, NewTag(tags[i]))
	}

	return out
}

func NewUser(u domain.User) User {
	return User{
		UserID:        u.ID,
		Name:          u.Name,
		Authenticated: u.Authenticated,
		CreatedOn:     u.CreatedOn,
	}
}

func NewUsers(users []domain.User) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, NewUser(users[i]))
	}

	return out
}

func NewIcon(i domain.Icon) Icon {
	return Icon{
		IconID:  i.ID,
		Title:   i.Title,
		URL:     i.URL,
		Content: i.Content,
	}
}

func NewIcons(icons []domain.Icon) []Icon {
	out := make([]Icon, 0, len(icons))
	for i := range icons {
		out = append(out, NewIcon(icons[i]))
	}

	return out
}
