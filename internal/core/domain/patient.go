package domain

type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
