package models

// CinemaHall is a venue with a fixed number of seats.
type CinemaHall struct {
	ID       string `bson:"id" json:"id"`
	HallName string `bson:"hallName" json:"hallName"`
	HallSize int    `bson:"hallSize" json:"hallSize"`
}

// HallRequest is the create/update payload for a hall.
type HallRequest struct {
	HallName string `json:"hallName" binding:"required,max=100"`
	HallSize int    `json:"hallSize" binding:"required,gt=0,lte=32767"`
}
