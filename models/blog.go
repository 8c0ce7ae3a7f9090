package models

// Blog represents a single entry in the blog list.
type Blog struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Title  string `bson:"title" json:"title"`
	Author string `bson:"author,omitempty" json:"author,omitempty"`
	URL    string `bson:"url" json:"url"`
	Likes  int    `bson:"likes" json:"likes"`
}
