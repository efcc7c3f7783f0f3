package repository

import "errors"

// ErrNotFound is returned by lookups when no record matches. Backends map
// their own no-rows signals to this sentinel so services can errors.Is it.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned by UserRepository.Save when another user
// already holds the email. The service checks ExistsByEmail up front, but the
// store enforces uniqueness itself so concurrent registrations cannot slip
// past that check.
var ErrDuplicateEmail = errors.New("email already registered")
