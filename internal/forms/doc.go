// Package forms holds the login and sign-up form state and the client-side
// validation rules. Nothing here renders or performs I/O.
package forms
