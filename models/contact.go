package models

// Contact is a phonebook entry. Name acts as a natural key: the form client
// decides between create and update by matching on it.
type Contact struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Name   string `bson:"name" json:"name"`
	Number string `bson:"number" json:"number"`
}
