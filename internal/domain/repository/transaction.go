package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions, so the use case layer can run multi-step writes atomically
// without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	// All repository operations obtained through the factory use the same
	// transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewBusinessRepository returns a BusinessRepository bound to the
	// current transaction.
	NewBusinessRepository() BusinessRepository

	// NewAddressRepository returns an AddressRepository bound to the
	// current transaction.
	NewAddressRepository() AddressRepository
}
