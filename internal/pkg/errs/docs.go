// Package errs provides standardized error types for the customer order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a uniqueness constraint would be violated
//   - DeliveryFailedError: For when a notification could not be handed to the carrier
//   - StoreFailureError: For when the record store fails unexpectedly
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The first five kinds describe caller mistakes and are reported by IsClientError.
// Anything else is treated as an internal failure by the transport layer.
package errs
