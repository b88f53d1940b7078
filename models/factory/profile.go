package factory

import (
	"time"

	"github.com/genemuffin/genemuffind/models"
)

func NewProfile(id string) *models.Profile {
	return &models.Profile{
		ID:   id,
		Name: models.ProfileName{First: "Emma", Last: "Thompson"},
		Picture: models.ProfilePicture{
			Large:     "https://randomuser.me/api/portraits/women/44.jpg",
			Medium:    "https://randomuser.me/api/portraits/med/women/44.jpg",
			Thumbnail: "https://randomuser.me/api/portraits/thumb/women/44.jpg",
		},
		Location: models.ProfileLocation{
			City:    "New York",
			State:   "NY",
			Country: "United States",
			Street:  models.ProfileStreet{Number: 123, Name: "Main Street"},
		},
		Email:            "emma.thompson@example.com",
		Age:              28,
		Gender:           "female",
		Nat:              "US",
		Dob:              models.ProfileDob{Date: time.Date(1997, 3, 14, 0, 0, 0, 0, time.UTC).Format(time.RFC3339), Age: 28},
		DNACompatibility: 92,
		Interests:        []string{"Genetics", "Research", "Innovation"},
		Bio:              "Genetic researcher with a passion for understanding DNA.",
	}
}
