// Package timezone provides timezone utilities for the application.
//
// All appointment dates and slot times are interpreted in the practice's
// configured timezone; storage and comparison always go through this package
// so that "today" and the booking horizon mean the same thing everywhere.
//
//  1. Basic usage:
//     now := timezone.Now()                    // Current time in app timezone
//     day := timezone.Today()                  // Current day at midnight
//
//  2. Formatting and parsing in the app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02")
//     parsed, err := timezone.Parse("2006-01-02", "2025-06-10")
package timezone
