// Package account contains the user Profile aggregate and its role model.
// A profile belongs to the marketplace's identity: a person or business that
// may act as cargo owner (dador), carrier (operador), broker, or any
// combination of the three. Roles are not mutually exclusive; legacy data
// stores them as a comma-joined string, which ParseRoles normalizes into the
// closed Role enumeration.
package account
