package models

// Statistics is the flat count summary of every domain collection.
type Statistics struct {
	Messages     int `json:"messages"`
	Orders       int `json:"orders"`
	MenuItems    int `json:"menuItems"`
	Categories   int `json:"categories"`
	Reservations int `json:"reservations"`
}
