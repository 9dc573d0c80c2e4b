package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")

type Book struct {
	ID        int64
	Title     string
	Author    string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
