// Package developer provides the Developer aggregate: a bookable freelancer with a
// profile, an hourly rate, a set of skills and a denormalized bookings counter.
//
// Invariants, checked whenever a developer is created or updated:
//   - first_name, last_name and github_username are present (not blank)
//   - at least one skill is attached
//   - bio is present and at least MinBioLength characters long
//
// A failed check is reported as a validation failure built from the errs package:
// every broken rule is joined into one error and errs.FailedAttributes lists the
// attribute names. Developers restored from storage are not re-checked until they
// are saved again.
//
// Skills belong to the aggregate through the developer_skills join rows and keep
// the order they were attached in. Bookings are a separate aggregate; the developer
// only derives its unavailable dates from them.
package developer
