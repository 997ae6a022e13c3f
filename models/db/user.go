package dbmodels

type User struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // md5 hash, never returned by the API
}
