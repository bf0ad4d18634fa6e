// Package page drives the portfolio's single page in the browser: project
// cards, navigation, scroll effects, the hero typing animation, the contact
// form and notifications.
//
// The package never touches the DOM directly. Elements are reached through
// the small interfaces in dom.go so the same code runs under GOOS=js and in
// plain tests. A nil element turns the corresponding operation into a no-op.
package page
