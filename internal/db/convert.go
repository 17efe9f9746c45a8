package db

import "github.com/gunlinux/gunlinux.ru/internal/domain"

// Record-to-domain mapping. NULL text coerces to "", NULL bool to false.
// Relationship fields stay nil unless the query eagerly loaded them, and
// nested entities come back flattened: a post's tags never carry their own
// posts back-reference.

func (p *Post) toDomain() domain.Post {
	post := domain.Post{
		ID:          p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
		UserID:      p.UserID,
	}

	if p.Content != nil {
		post.Content = *p.Content
	}

	if p.Category != nil {
		category := p.Category.toDomain()
		post.Category = &category
	}

	if p.User != nil {
		user := p.User.toDomain()
		post.User = &user
	}

	if len(p.Tags) > 0 {
		post.Tags = make([]domain.Tag, len(p.Tags))
		for i := range p.Tags {
			post.Tags[i] = p.Tags[i].toDomain()
		}
	}

	return post
}

func (c *Category) toDomain() domain.Category {
	category := domain.Category{
		ID:       c.ID,
		Title:    c.Title,
		Alias:    c.Alias,
		Template: c.Template,
		IsPage:   c.IsPage,
	}

	if len(c.Posts) > 0 {
		category.Posts = make([]domain.Post, len(c.Posts))
		for i := range c.Posts {
			category.Posts[i] = c.Posts[i].toDomain()
		}
	}

	return category
}

func (t *Tag) toDomain() domain.Tag {
	tag := domain.Tag{
		ID:    t.ID,
		Title: t.Title,
		Alias: t.Alias,
	}

	if len(t.Posts) > 0 {
		tag.Posts = make([]domain.Post, len(t.Posts))
		for i := range t.Posts {
			tag.Posts[i] = t.Posts[i].toDomain()
		}
	}

	return tag
}

func (u *User) toDomain() domain.User {
	user := domain.User{
		ID:        u.ID,
		Name:      u.Name,
		CreatedOn: u.CreatedOn,
	}

	// the stored hash stays behind the persistence boundary, the domain
	// Password field only ever carries inbound plaintext
	if u.Authenticated != nil {
		user.Authenticated = *u.Authenticated
	}

	if len(u.Posts) > 0 {
		user.Posts = make([]domain.Post, len(u.Posts))
		for i := range u.Posts {
			user.Posts[i] = u.Posts[i].toDomain()
		}
	}

	return user
}

func (i *Icon) toDomain() domain.Icon {
	icon := domain.Icon{
		ID:    i.ID,
		Title: i.Title,
		URL:   i.URL,
	}

	if i.Content != nil {
		icon.Content = *i.Content
	}

	return icon
}

// Domain-to-record mapping, used by create and update. The record carries
// every domain field; optional fields map straight onto nullable columns so
// a nil on the domain object clears the stored value.

func newPostRecord(p *domain.Post) *Post {
	content := p.Content
	return &Post{
		ID:          p.ID,
		PageTitle:   p.PageTitle,
		Alias:       p.Alias,
		Content:     &content,
		CreatedOn:   p.CreatedOn,
		PublishedOn: p.PublishedOn,
		CategoryID:  p.CategoryID,
		UserID:      p.UserID,
	}
}

func newCategoryRecord(c *domain.Category) *Category {
	return &Category{
		ID:       c.ID,
		Title:    c.Title,
		Alias:    c.Alias,
		Template: c.Template,
		IsPage:   c.IsPage,
	}
}

func newTagRecord(t *domain.Tag) *Tag {
	return &Tag{
		ID:    t.ID,
		Title: t.Title,
		Alias: t.Alias,
	}
}

func newUserRecord(u *domain.User) *User {
	// the password is deliberately left out: plaintext never reaches a
	// record, the repository hashes it via SetPassword
	return &User{
		ID:            u.ID,
		Name:          u.Name,
		Authenticated: &u.Authenticated,
		CreatedOn:     u.CreatedOn,
	}
}

func newIconRecord(i *domain.Icon) *Icon {
	rec := &Icon{
		ID:    i.ID,
		Title: i.Title,
		URL:   i.URL,
	}

	if i.Content != "" {
		content := i.Content
		rec.Content = &content
	}

	return rec
}
