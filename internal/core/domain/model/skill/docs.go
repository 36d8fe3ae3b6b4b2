// Package skill provides the Skill entity developers are tagged with.
//
// Skills are shared between developers through the developer_skills join table.
// Deleting a developer removes its join rows; the skills themselves stay.
//
// Display names are title-cased with English casing rules
// (golang.org/x/text/cases) so that output does not depend on the host locale.
package skill
