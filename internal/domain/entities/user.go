package entities

// User is an account document in the users table. Account lifecycle
// (sign-up, credentials) is owned by the identity platform; this service
// only reads it to resolve the calling principal.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// Principal is the resolved caller of a request: the submitting customer
// or an administrator.
type Principal struct {
	UserID  string
	IsAdmin bool
}
