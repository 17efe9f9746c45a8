package blog

import (
	"log/slog"

	"github.com/go-pg/pg/v10"

	"github.com/gunlinux/gunlinux.ru/internal/db"
)

// Factory wires a repository into each service over one session handle.
// Passing a pg.Tx scopes every service it builds to that transaction.
type Factory struct {
	db  pg.DBI
	log *slog.Logger
}

func NewFactory(db pg.DBI, log *slog.Logger) *Factory {
	return &Factory{
		db:  db,
		log: log,
	}
}

func (f *Factory) Posts() *PostService {
	return NewPostService(db.NewPostRepo(f.db), f.log)
}

func (f *Factory) Categories() *CategoryService {
	return NewCategoryService(db.NewCategoryRepo(f.db), f.log)
}

func (f *Factory) Tags() *TagService {
	return NewTagService(db.NewTagRepo(f.db), f.log)
}

func (f *Factory) Users() *UserService {
	return NewUserService(db.NewUserRepo(f.db), f.log)
}

func (f *Factory) Icons() *IconService {
	return NewIconService(db.NewIconRepo(f.db), f.log)
}
