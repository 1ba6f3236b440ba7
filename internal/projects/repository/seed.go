package repository

import "github.com/webprojects/webprojects/internal/projects/domain"

// Seed returns the sample projects every fresh process starts with.
func Seed() []domain.Project {
	return []domain.Project{
		{
			ID:          1,
			Title:       domain.Text("Hangman Game"),
			Description: domain.Text("Hangman game created using Create React app."),
			URL:         domain.Text("https://github.com/ZamNkombisa/My-Hangman"),
		},
		{
			ID:          2,
			Title:       domain.Text("Spotify-clone"),
			Description: domain.Text("Spotify-clone created using Create React app."),
			URL:         domain.Text("https://github.com/ZamNkombisa/spotify-clone"),
		},
	}
}
