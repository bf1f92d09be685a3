// Package main provides the entry point for the festa-admin application.
// It initializes and runs a web server using the Fiber framework that serves
// the JSON API behind a family-event promotional site: site text settings,
// a photo gallery, guest RSVP submissions and image uploads through an
// external media host. The application uses gorm for data persistence.
package main
