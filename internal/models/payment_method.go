package models

type PaymentMethod struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Status string `json:"estado"`
}
