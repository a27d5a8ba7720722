// Package customer provides the Customer aggregate and the partial update it accepts.
//
// Key business rules:
//   - full name is non-empty, email address is syntactically valid, phone number matches
//     a leading "+", a country code and a 9-15 digit national number
//   - the identifier is assigned by the record store exactly once
//   - created_at is set at creation and never changes; updated_at is stamped by every write
//
// Email uniqueness across customers is enforced by the application workflow and, ultimately,
// by a unique index in the record store.
package customer
