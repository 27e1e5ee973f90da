package models

import "time"

type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type AdminProfile struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Site Admin"`
	Email string `json:"email" example:"admin@example.com"`
}

func (a *Admin) Profile() AdminProfile {
	return AdminProfile{ID: a.ID, Name: a.Name, Email: a.Email}
}
