package response_models

type LoginPending struct {
	Email string `json:"email"`
	// Code is only populated when no mail transport is configured, so the
	// prototype flow stays usable without SMTP.
	Code string `json:"code,omitempty"`
}

type LoginResult struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

type Account struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Avatar  string   `json:"avatar"`
	Friends []string `json:"friends"`
}

type Friend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Status string `json:"status"`
}
