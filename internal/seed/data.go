package seed

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"
)

//go:embed data/*/*.json
var dataFS embed.FS

type TopicRow struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

type UserRow struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleRow is an article as stored in the data files. CreatedAt is in
// milliseconds since the Unix epoch.
type ArticleRow struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	CreatedAt     int64  `json:"created_at"`
	Votes         int    `json:"votes"`
	ArticleImgURL string `json:"article_img_url"`
}

// CommentRow refers to its article by title; ids are only known once the
// articles are inserted.
type CommentRow struct {
	Body         string `json:"body"`
	Votes        int    `json:"votes"`
	Author       string `json:"author"`
	ArticleTitle string `json:"article_title"`
	CreatedAt    int64  `json:"created_at"`
}

type Data struct {
	Topics   []TopicRow
	Users    []UserRow
	Articles []ArticleRow
	Comments []CommentRow
}

// Dataset returns one of the bundled data sets ("test" or "development").
func Dataset(name string) (*Data, error) {
	return LoadData(dataFS, path.Join("data", name))
}

// LoadData reads topics.json, users.json, articles.json and comments.json
// from dir.
func LoadData(fsys fs.FS, dir string) (*Data, error) {
	var d Data
	files := []struct {
		name string
		dst  interface{}
	}{
		{"topics.json", &d.Topics},
		{"users.json", &d.Users},
		{"articles.json", &d.Articles},
		{"comments.json", &d.Comments},
	}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, path.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return &d, nil
}

// Check reports every reference in d that points at a missing row, and
// duplicate article titles since comments resolve their article by title.
func (d *Data) Check() error {
	topics := make(map[string]bool, len(d.Topics))
	for _, t := range d.Topics {
		topics[t.Slug] = true
	}
	users := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		users[u.Username] = true
	}
	titles := make(map[string]bool, len(d.Articles))

	var errs []error
	for _, a := range d.Articles {
		if titles[a.Title] {
			errs = append(errs, fmt.Errorf("article %q: duplicate title", a.Title))
		}
		titles[a.Title] = true
		if !topics[a.Topic] {
			errs = append(errs, fmt.Errorf("article %q: unknown topic %q", a.Title, a.Topic))
		}
		if !users[a.Author] {
			errs = append(errs, fmt.Errorf("article %q: unknown author %q", a.Title, a.Author))
		}
	}
	for i, c := range d.Comments {
		if !titles[c.ArticleTitle] {
			errs = append(errs, fmt.Errorf("comment %d: unknown article %q", i, c.ArticleTitle))
		}
		if !users[c.Author] {
			errs = append(errs, fmt.Errorf("comment %d: unknown author %q", i, c.Author))
		}
	}
	return errors.Join(errs...)
}

// ConvertTimestamp turns a millisecond epoch value into a UTC time.
func ConvertTimestamp(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ArticleRef maps article titles to the ids the store assigned them.
type ArticleRef map[string]int64
