package models

// User represents a registered user. The password hash is stored but must
// never appear in a serialized response.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Username     string `bson:"username" json:"username"`
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
}
