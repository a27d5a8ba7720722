// Package order provides the Order aggregate, its status enumeration and the partial
// update it accepts.
//
// Key business rules:
//   - item is non-empty and price is strictly greater than zero
//   - customer_id refers to a customer that existed when the order was created; the
//     reference is not kept consistent afterwards
//   - status is absent until set and then one of pending, completed or cancelled;
//     any status may replace any other
//   - created_at is set at creation, updated_at on creation and on every write
package order
