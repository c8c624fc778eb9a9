package models

type Topic struct {
	Slug        string `db:"slug"        json:"slug"`
	Description string `db:"description" json:"description"`
	ImgURL      string `db:"img_url"     json:"img_url"`
}
