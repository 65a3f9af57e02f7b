package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Request is a volunteer's application to a post. PostID is the raw hex
// id of the parent post, stored as a plain string rather than an
// ObjectID, matching what clients send and query by.
type Request struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostID        string             `bson:"postId" json:"postId"`
	Email         string             `bson:"email" json:"email"`
	VolunteerName string             `bson:"volunteerName,omitempty" json:"volunteerName,omitempty"`
	Suggestion    string             `bson:"suggestion,omitempty" json:"suggestion,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
