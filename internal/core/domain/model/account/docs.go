// Package account contains the User entity for the credential store.
//
// Users register as either a Customer or a Driver; the role decides which
// side of the marketplace they act on. Passwords are stored only as bcrypt
// hashes, produced and verified outside this package.
package account
