package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	orm.RegisterTable((*PostTag)(nil))
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int        `pg:"id,pk"`
	PageTitle   string     `pg:"pagetitle,use_zero"`
	Alias       string     `pg:"alias,use_zero"`
	Content     *string    `pg:"content"`
	CreatedOn   time.Time  `pg:"createdon,use_zero"`
	PublishedOn *time.Time `pg:"publishedon"`
	CategoryID  *int       `pg:"category_id"`
	UserID      *int       `pg:"user_id"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	User     *User     `pg:"fk:user_id,rel:has-one"`
	Tags     []Tag     `pg:"many2many:posts_tags"`
}

type PostTag struct {
	tableName struct{} `pg:"posts_tags,alias:pt"`

	PostID int `pg:"post_id,pk"`
	TagID  int `pg:"tag_id,pk"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID       int     `pg:"id,pk"`
	Title    string  `pg:"title,use_zero"`
	Alias    string  `pg:"alias,use_zero"`
	Template *string `pg:"template"`
	IsPage   bool    `pg:"is_page,use_zero"`

	Posts []Post `pg:"rel:has-many,join_fk:category_id"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID    int    `pg:"id,pk"`
	Title string `pg:"title,use_zero"`
	Alias string `pg:"alias,use_zero"`

	Posts []Post `pg:"many2many:posts_tags"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	Name          string    `pg:"name,use_zero"`
	Password      *string   `pg:"password"`
	Authenticated *bool     `pg:"authenticated"`
	CreatedOn     time.Time `pg:"createdon,use_zero"`

	Posts []Post `pg:"rel:has-many,join_fk:user_id"`
}

// SetPassword stores a bcrypt hash of the plaintext on the record.
func (u *User) SetPassword(plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = &hash
	return nil
}

// CheckPassword verifies the plaintext against the stored hash. A record
// without a password never matches.
func (u *User) CheckPassword(plain string) bool {
	if u.Password == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(plain)) == nil
}

// HashPassword is the single place plaintext passwords turn into hashes.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type Icon struct {
	tableName struct{} `pg:"icons,alias:t,discard_unknown_columns"`

	ID      int     `pg:"id,pk"`
	Title   string  `pg:"title,use_zero"`
	URL     string  `pg:"url,use_zero"`
	Content *string `pg:"content"`
}
