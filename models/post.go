package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Organizer identifies the user who published a post. The email is the
// key used by the "my posts" query.
type Organizer struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Post is a volunteer-need campaign. Deadline is an ISO date string
// (YYYY-MM-DD); lexicographic order equals chronological order, which
// is what the upcoming-posts sort relies on. RequestCount is absent
// until the first application and is never clamped at zero.
type Post struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Thumbnail        string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	VolunteersNeeded int                `bson:"volunteersNeeded,omitempty" json:"volunteersNeeded,omitempty"`
	Deadline         string             `bson:"deadline" json:"deadline"`
	Organizer        Organizer          `bson:"organizer" json:"organizer"`
	RequestCount     int64              `bson:"request_count,omitempty" json:"request_count,omitempty"`
}
