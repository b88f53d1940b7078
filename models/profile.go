package models

import (
	"encoding/json"
	"time"
)

// ProfileName holds the name parts of a profile.
type ProfileName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// ProfileStreet is the street part of a profile location.
type ProfileStreet struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// ProfileLocation is the location part of a profile.
type ProfileLocation struct {
	City    string        `json:"city"`
	State   string        `json:"state"`
	Country string        `json:"country"`
	Street  ProfileStreet `json:"street"`
}

// ProfilePicture holds the picture URLs for a profile.
type ProfilePicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// ProfileDob holds the date of birth of a profile.
type ProfileDob struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

// Profile is a user profile record in the shape returned by the
// randomuser API, extended with the fields the client apps render.
// The compatibility score is a mock value and carries no meaning.
type Profile struct {
	ID               string          `json:"id"`
	Name             ProfileName     `json:"name"`
	Picture          ProfilePicture  `json:"picture"`
	Location         ProfileLocation `json:"location"`
	Email            string          `json:"email"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	Nat              string          `json:"nat"`
	Dob              ProfileDob      `json:"dob"`
	DNACompatibility int             `json:"dnaCompatibility"`
	Interests        []string        `json:"interests"`
	Bio              string          `json:"bio"`
}

// CachedProfilesRecord holds a serialized page of profiles fetched from
// the remote API along with the time it was fetched. Pages are keyed by
// their query string.
type CachedProfilesRecord struct {
	Key        string          `gorm:"primary_key"`
	Serialized json.RawMessage
	Timestamp  time.Time
}
