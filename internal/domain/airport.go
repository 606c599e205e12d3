package domain

type Airport struct {
	Code    string `json:"airport_code"`
	Name    string `json:"airport_name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
