// Package fixtures holds the static datasets served by the mock endpoints.
// Accessors return fresh copies; callers may modify what they get back.
package fixtures

import "time"

var seededAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// GalleryItem is an image shown in the stream gallery.
type GalleryItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	GroupID   string     `json:"groupId,omitempty"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// GalleryGroup clusters gallery items.
type GalleryGroup struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ItemCount   int        `json:"itemCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Setlist is the planned song list for one stream.
type Setlist struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	StreamDate string        `json:"streamDate,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	Items      []SetlistItem `json:"items"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  *time.Time    `json:"updatedAt,omitempty"`
}

// SetlistItem is one song in a setlist.
type SetlistItem struct {
	ID          string `json:"id"`
	SetlistID   string `json:"setlistId"`
	Title       string `json:"title"`
	Artist      string `json:"artist,omitempty"`
	DurationSec int    `json:"durationSec,omitempty"`
	Position    int    `json:"position"`
}

// OCRResult is what the extraction endpoint reports for a result screenshot.
type OCRResult struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	Results    []OCREntry `json:"results"`
}

// OCREntry is one ranked row read from a result screen.
type OCREntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// User is the profile the OAuth stub signs in as.
type User struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Provider    string `json:"provider"`
}

// GalleryItems returns the gallery dataset.
func GalleryItems() []GalleryItem {
	return []GalleryItem{
		{ID: "img-1", Title: "Opening scene", ImageURL: "/uploads/1740830400000-opening.png", GroupID: "grp-1", Tags: []string{"overlay", "intro"}, CreatedAt: seededAt},
		{ID: "img-2", Title: "Break screen", ImageURL: "/uploads/1740830460000-break.png", GroupID: "grp-1", Tags: []string{"overlay"}, CreatedAt: seededAt.Add(time.Minute)},
		{ID: "img-3", Title: "Fan art: neon cat", ImageURL: "/uploads/1740830520000-neon-cat.webp", GroupID: "grp-2", Tags: []string{"fanart"}, CreatedAt: seededAt.Add(2 * time.Minute)},
		{ID: "img-4", Title: "Highlight clip thumbnail", ImageURL: "/uploads/1740830580000-highlight.jpg", Tags: []string{}, CreatedAt: seededAt.Add(3 * time.Minute)},
	}
}

// GalleryGroups returns the gallery group dataset.
func GalleryGroups() []GalleryGroup {
	return []GalleryGroup{
		{ID: "grp-1", Name: "Stream scenes", Description: "Overlays used on stream", ItemCount: 2, CreatedAt: seededAt},
		{ID: "grp-2", Name: "Fan art", Description: "Community submissions", ItemCount: 1, CreatedAt: seededAt.Add(time.Hour)},
	}
}

// Setlists returns the setlist dataset with items ordered by position.
func Setlists() []Setlist {
	return []Setlist{
		{
			ID:         "set-1",
			Title:      "Friday karaoke",
			StreamDate: "2025-03-07",
			Notes:      "Acoustic first half",
			CreatedAt:  seededAt,
			Items: []SetlistItem{
				{ID: "item-1", SetlistID: "set-1", Title: "Blue Bird", Artist: "Ikimono-gakari", DurationSec: 217, Position: 1},
				{ID: "item-2", SetlistID: "set-1", Title: "Idol", Artist: "YOASOBI", DurationSec: 213, Position: 2},
				{ID: "item-3", SetlistID: "set-1", Title: "Lemon", Artist: "Kenshi Yonezu", DurationSec: 255, Position: 3},
			},
		},
		{
			ID:         "set-2",
			Title:      "Sunday chill",
			StreamDate: "2025-03-09",
			CreatedAt:  seededAt.Add(24 * time.Hour),
			Items: []SetlistItem{
				{ID: "item-4", SetlistID: "set-2", Title: "Plastic Love", Artist: "Mariya Takeuchi", DurationSec: 474, Position: 1},
			},
		},
	}
}

// OCR returns the canned extraction result.
func OCR() OCRResult {
	return OCRResult{
		Text:       "1 StreamerOne 12850\n2 ChatChamp 11020\n3 NightOwl 9875",
		Confidence: 0.94,
		Results: []OCREntry{
			{Rank: 1, Player: "StreamerOne", Score: 12850},
			{Rank: 2, Player: "ChatChamp", Score: 11020},
			{Rank: 3, Player: "NightOwl", Score: 9875},
		},
	}
}

// StubUser returns the profile used by the OAuth stub.
func StubUser() User {
	return User{
		ID:          "twitch:100000001",
		Login:       "demo_streamer",
		DisplayName: "Demo Streamer",
		AvatarURL:   "https://static-cdn.jtvnw.net/user-default-pictures-uv/default-profile_image-300x300.png",
		Provider:    "twitch",
	}
}
