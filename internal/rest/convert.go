package rest

import "github.com/gunlinux/gunlinux.ru/internal/domain"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p domain.Post) Post {
	html, err := p.HTML()
	if err != nil {
		html = ""
	}

	post := Post{
		ID:          p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		Content:     p.Content,
		HTML:        html,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
	}

	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}

	if len(p.Tags) > 0 {
		post.Tags = Map(p.Tags, NewTag)
	}

	return post
}

func NewPostSummary(p domain.Post) PostSummary {
	return PostSummary{
		ID:          p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
	}
}

func NewCategory(c domain.Category) Category {
	return Category{
		ID:       c.ID,
		Title:    c.Title,
		Alias:    c.Alias,
		Template: c.Template,
		IsPage:   c.IsPage,
	}
}

func NewTag(t domain.Tag) Tag {
	return Tag{
		ID:    t.ID,
		Title: t.Title,
		Alias: t.Alias,
	}
}

func NewIcon(i domain.Icon) Icon {
	return Icon{
		ID:      i.ID,
		Title:   i.Title,
		URL:     i.URL,
		Content: i.Content,
	}
}
