// Package resource implements the access and mutation rules of the three
// foodStation collections on top of store.Collection.
//
//   - Accounts: list and create, duplicates allowed
//   - Foods: list by optional owner email, get, create, partial update, delete
//   - Requests: list, find by donator email, create, delete
//
// Lists use an explicit EmptyPolicy: food and account lists return an empty
// slice, while FindByDonatorEmail reports ErrNoRequestsForEmail. Malformed ids
// behave like unknown ones: get and update return ErrNotFound, delete reports
// zero deletions.
package resource
