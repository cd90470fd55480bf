package model

// AccessToken is the payload carried by pass-through bearer tokens. It is
// parsed best-effort for logging; no endpoint enforces it yet.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
