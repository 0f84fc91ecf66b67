// Package domain contains the core business entities of the application,
// independent of any specific infrastructure or delivery mechanism. For this
// service that is the User record and its construction rules.
package domain
