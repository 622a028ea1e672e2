package repository

import (
	"context"

	domainrepo "gardenspace/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repository instances, letting tests
// bind mocks into transactional code paths.
type StubRepositoryFactory struct {
	Users    domainrepo.UserRepository
	Gardens  domainrepo.GardenRepository
	Bookings domainrepo.BookingRepository
}

func (f *StubRepositoryFactory) UserRepo() domainrepo.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) GardenRepo() domainrepo.GardenRepository {
	return f.Gardens
}

func (f *StubRepositoryFactory) BookingRepo() domainrepo.BookingRepository {
	return f.Bookings
}

// StubTransactionManager executes the callback inline with the stub factory.
// There is no real transaction underneath; tests assert on the repositories.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (tm *StubTransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
