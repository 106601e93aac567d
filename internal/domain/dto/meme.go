package dto

import (
	"time"

	"memes/internal/domain/model"
)

type Meme struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModel(m *model.Meme) Meme {
	out := Meme{
		ID:        m.ID,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
	if m.Description != nil {
		out.Description = *m.Description
	}

	return out
}

type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}
