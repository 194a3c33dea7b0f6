// Package timezone provides timezone and calendar date utilities for the application.
//
// Usage Examples:
//
//  1. Current time and calendar date in the app timezone:
//     now := timezone.Now()
//     today := timezone.Today()
//
//  2. Normalising caller supplied dates ("2025-12-01" or "2025-12-01T10:00:00Z"):
//     day, err := timezone.ParseDate(value)
//
//  3. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
// Calendar dates are represented as midnight UTC so they compare and serialise
// identically to PostgreSQL DATE values.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone
