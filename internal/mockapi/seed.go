package mockapi

import (
	"log"

	"mindfulreader/internal/api"
)

// Seed credentials for local development.
const (
	SeedAdminEmail    = "admin@mindfulreader.app"
	SeedAdminPassword = "mindful-admin"
)

// seed fills the store with a small catalogue so `mindful browse` has
// something to show against a fresh mock server.
func (s *Server) seed() {
	hash, err := hashPassword(SeedAdminPassword)
	if err != nil {
		log.Printf("mockapi: seed admin skipped: %v", err)
	} else if _, err := s.store.createUser("Mindful Admin", SeedAdminEmail, "", hash, "ADMIN"); err != nil {
		log.Printf("mockapi: seed admin skipped: %v", err)
	}

	authors := []api.Author{
		{FullName: "Mary Oliver", Nationality: "American", Bio: "Poet of attention and the natural world."},
		{FullName: "Thich Nhat Hanh", Nationality: "Vietnamese", Bio: "Zen teacher and writer on mindful living."},
		{FullName: "Robin Wall Kimmerer", Nationality: "American"},
		{FullName: "Hermann Hesse", Nationality: "German", ProfilePictureURL: "https://example.com/hesse.jpg"},
	}
	ids := make([]string, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, s.store.createAuthor(a).AuthorID)
	}

	books := []api.Book{
		{Title: "Devotions", AuthorID: ids[0], Genre: "Poetry", Mood: "Stillness", Language: "English"},
		{Title: "Upstream", AuthorID: ids[0], Genre: "Essays", Mood: "Reflection", Language: "English"},
		{Title: "The Miracle of Mindfulness", AuthorID: ids[1], Genre: "Philosophy", Mood: "Stillness", Language: "English"},
		{Title: "Peace Is Every Step", AuthorID: ids[1], Genre: "Philosophy", Mood: "Healing", Language: "English"},
		{Title: "Braiding Sweetgrass", AuthorID: ids[2], Genre: "Nature", Mood: "Growth", Language: "English"},
		{Title: "Siddhartha", AuthorID: ids[3], Genre: "Fiction", Mood: "Reflection", Language: "German",
			CoverImageURL: "https://example.com/siddhartha.jpg"},
		{Title: "The Glass Bead Game", AuthorID: ids[3], Genre: "Fiction", Mood: "Adventure", Language: "German"},
	}
	for _, b := range books {
		s.store.createBook(b)
	}
}
