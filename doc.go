// Package main provides the entry point for the BrightPage application.
// It initializes and runs a web server using the Fiber framework that serves
// the public content API of a marketing website together with an
// authenticated admin API for content sections, media uploads, contact
// submissions and site settings. The application uses gorm for data
// persistence and supports local and OIDC authentication.
package main
