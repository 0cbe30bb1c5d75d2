// Package domain contains the core domain entities and types used by the
// gateway. These types represent the business concepts (feeds, earth reports,
// tutoring exchanges and pilot profiles) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
