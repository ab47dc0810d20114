// Package services contains stateless domain services that operate across
// aggregates. The pricing calculator lives here: it is pure computation over
// catalog-resolved cart lines and a restaurant fee schedule, producing the
// monetary breakdown that gets frozen onto a new order.
package services
