package entity

type Theater struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
