package user

// User is one registered account. Accounts are created at registration and
// read back at login; there is no password-change flow.
type User struct {
	Login        string
	PasswordHash string
}

// StoredUser is the durable shape of an account inside the shared user
// mapping, keyed by login.
type StoredUser struct {
	SenhaHash string `json:"senha_hash"`
}
