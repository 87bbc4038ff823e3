package repository

import (
	customerRepo "kino/database/repository/customer"
	hallRepo "kino/database/repository/hall"
	sessionRepo "kino/database/repository/moviesession"
	ticketRepo "kino/database/repository/ticket"
)

// Re-export the repository interfaces and constructors.
type CustomerRepository = customerRepo.CustomerRepository

var NewMongoCustomerRepo = customerRepo.NewMongoCustomerRepo

type HallRepository = hallRepo.HallRepository

var NewMongoHallRepo = hallRepo.NewMongoHallRepo

type MovieSessionRepository = sessionRepo.MovieSessionRepository

var NewMongoSessionRepo = sessionRepo.NewMongoSessionRepo

type TicketRepository = ticketRepo.TicketRepository

var NewMongoTicketRepo = ticketRepo.NewMongoTicketRepo

// Repositories bundles one of each repository over the same database.
type Repositories struct {
	Customers CustomerRepository
	Halls     HallRepository
	Sessions  MovieSessionRepository
	Tickets   TicketRepository
}

// NewMongoRepositories requires database.InitDB to have run.
func NewMongoRepositories() Repositories {
	return Repositories{
		Customers: NewMongoCustomerRepo(),
		Halls:     NewMongoHallRepo(),
		Sessions:  NewMongoSessionRepo(),
		Tickets:   NewMongoTicketRepo(),
	}
}
