package repository

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

// SortField is a client-facing sort key that maps onto a fixed column of the
// articles table. Only the values below ever reach the ORDER BY clause.
type SortField string

const (
	SortByArticleID     SortField = "article_id"
	SortByTitle         SortField = "title"
	SortByTopic         SortField = "topic"
	SortByAuthor        SortField = "author"
	SortByCreatedAt     SortField = "created_at"
	SortByBody          SortField = "body"
	SortByVotes         SortField = "votes"
	SortByArticleImgURL SortField = "article_img_url"

	DefaultSortField = SortByCreatedAt
)

var sortColumns = map[SortField]pgx.Identifier{
	SortByArticleID:     {"a", "article_id"},
	SortByTitle:         {"a", "title"},
	SortByTopic:         {"a", "topic"},
	SortByAuthor:        {"a", "author"},
	SortByCreatedAt:     {"a", "created_at"},
	SortByBody:          {"a", "body"},
	SortByVotes:         {"a", "votes"},
	SortByArticleImgURL: {"a", "article_img_url"},
}

// ParseSortField reports whether s names an allow-listed sort column.
// Matching is exact: column names are lower case.
func ParseSortField(s string) (SortField, bool) {
	f := SortField(strings.TrimSpace(s))
	_, ok := sortColumns[f]
	return f, ok
}

type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"

	DefaultSortOrder = OrderDesc
)

// ParseSortOrder accepts asc/desc in any letter case.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch o := SortOrder(strings.ToUpper(strings.TrimSpace(s))); o {
	case OrderAsc, OrderDesc:
		return o, true
	default:
		return "", false
	}
}

// ArticleQuery is a validated list request. Topic == "" means no filter.
type ArticleQuery struct {
	Sort  SortField
	Order SortOrder
	Topic string
}

// orderBy renders the ORDER BY clause. Values outside the allow-list fall back
// to the defaults so a hand-built ArticleQuery can never inject SQL.
func (q ArticleQuery) orderBy() string {
	col, ok := sortColumns[q.Sort]
	if !ok {
		q.Sort = DefaultSortField
		col = sortColumns[DefaultSortField]
	}
	dir := q.Order
	if dir != OrderAsc && dir != OrderDesc {
		dir = DefaultSortOrder
	}

	clause := " ORDER BY " + col.Sanitize() + " " + string(dir)
	if q.Sort != SortByArticleID {
		clause += ", " + sortColumns[SortByArticleID].Sanitize() + " " + string(dir)
	}
	return clause
}
