// Package pathtemplate expands user-authored path templates against resolved
// game fields.
//
// Templates mix literal segments with {field} placeholders drawn from the
// closed metadata field set. Validation happens once at startup so a typo in
// the template aborts the batch before any game is touched. Expansion splits
// on the template's literal slashes before substituting, which keeps a
// separator smuggled in a field value from creating an extra directory level.
package pathtemplate
