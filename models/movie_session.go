package models

import "time"

// MovieSession is one screening in a hall. Qyt is the number of seats still on sale.
type MovieSession struct {
	ID            string    `bson:"id" json:"id"`
	HallID        string    `bson:"hallId" json:"hallId"`
	Movie         string    `bson:"movie" json:"movie"`
	Qyt           int       `bson:"qyt" json:"qyt"`
	StartDatetime time.Time `bson:"startDatetime" json:"startDatetime"`
	EndDatetime   time.Time `bson:"endDatetime" json:"endDatetime"`
	Price         int       `bson:"price" json:"price"`
}

// MovieSessionRequest creates one session per day between StartDatetime and EndDatetime.
type MovieSessionRequest struct {
	HallID        string    `json:"hallId" binding:"required"`
	Movie         string    `json:"movie" binding:"required,max=20"`
	StartDatetime time.Time `json:"startDatetime" binding:"required"`
	EndDatetime   time.Time `json:"endDatetime" binding:"required"`
	Price         int       `json:"price" binding:"required,gt=0,lte=32767"`
}

// MovieSessionUpdate carries the editable fields of a single session.
type MovieSessionUpdate struct {
	Movie         *string    `json:"movie,omitempty" binding:"omitempty,max=20"`
	StartDatetime *time.Time `json:"startDatetime,omitempty"`
	EndDatetime   *time.Time `json:"endDatetime,omitempty"`
	Price         *int       `json:"price,omitempty" binding:"omitempty,gt=0,lte=32767"`
}

// SessionListFilter narrows the public session listing.
type SessionListFilter struct {
	// EndsAfter hides sessions that already finished.
	EndsAfter time.Time
	// Day, when set, keeps only sessions starting on that calendar day.
	Day *time.Time
	// SortField is a bson field name; SortDesc flips the order.
	SortField string
	SortDesc  bool
}
