package user

// User is one record held by the Store. ID is caller-assigned and immutable
// after creation; Name and Email may be rewritten in place.
type User struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Updates names the fields Update is allowed to rewrite. A nil field is left
// untouched.
type Updates struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
