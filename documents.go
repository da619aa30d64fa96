package main

type Header struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

type Link struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type CodeBlocks struct {
	Total     int            `json:"total"`
	Languages map[string]int `json:"languages"`
}

type ListCounts struct {
	Bullet   int `json:"bullet"`
	Numbered int `json:"numbered"`
}

// Document is everything the analyzer learns about a single markdown file.
// It is built once by scan and never modified afterwards.
type Document struct {
	Path         string
	Name         string
	Size         int
	Content      string
	Title        string
	Headers      []Header
	Links        []Link
	CodeBlocks   CodeBlocks
	Lists        ListCounts
	Keywords     []string
	Hash         string
	Category     string
	QualityScore int
}
