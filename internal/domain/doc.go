// Package domain holds the core model types and the interfaces between the
// application layer and its collaborators. It has no dependencies on other
// internal packages.
package domain
