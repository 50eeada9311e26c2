package models

import "time"

// TOCEntry is one heading anchor in a post's table of contents.
// Level follows heading depth (2 for h2, 3 for h3).
type TOCEntry struct {
	Anchor string `json:"anchor"`
	Title  string `json:"title"`
	Level  int    `json:"level"`
}

// BlogPost represents a published article
type BlogPost struct {
	ID          string     `json:"id" db:"post_id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	Image       string     `json:"image,omitempty" db:"image"`
	PublishedAt time.Time  `json:"published_at" db:"published_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	AuthorID    string     `json:"author_id" db:"author_id"`
	ReviewerID  string     `json:"reviewer_id,omitempty" db:"reviewer_id"`
	CategoryID  string     `json:"category_id" db:"category_id"`
	TagIDs      []string   `json:"tag_ids,omitempty"`
	ReadTime    int        `json:"read_time" db:"read_time"`
	TOC         []TOCEntry `json:"toc,omitempty"`
}

// BlogAuthor writes or reviews posts; the same record serves both roles.
type BlogAuthor struct {
	ID           string   `json:"id" db:"author_id"`
	Name         string   `json:"name" db:"name"`
	Role         string   `json:"role,omitempty" db:"role"`
	Image        string   `json:"image,omitempty" db:"image"`
	Bio          string   `json:"bio,omitempty" db:"bio"`
	Certificates []string `json:"certificates,omitempty"`
}

// BlogCategory groups posts by topic
type BlogCategory struct {
	ID          string `json:"id" db:"category_id"`
	Slug        string `json:"slug" db:"slug"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
}

// BlogTag is a free-form label attached to posts
type BlogTag struct {
	ID   string `json:"id" db:"tag_id"`
	Slug string `json:"slug" db:"slug"`
	Name string `json:"name" db:"name"`
}
